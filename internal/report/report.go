// Package report assembles and renders the analysis output.
package report

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/analysis"
)

// Language selects which bullet translations a rendered report carries.
type Language string

const (
	LangEN   Language = "en"
	LangFA   Language = "fa"
	LangBoth Language = "both"
)

// Format selects the output encoding.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatText     Format = "text"
	FormatJSON     Format = "json"
)

// Report is one complete analysis run over a dataset.
type Report struct {
	RunID       string    `json:"runId"`
	GeneratedAt time.Time `json:"generatedAt"`

	Source      string `json:"source"`
	RowCount    int    `json:"rowCount"`
	SkippedRows int    `json:"skippedRows,omitempty"`

	Sections []analysis.SectionResult `json:"sections"`
}

// New stamps a report with a fresh run ID and the current time.
func New(source string, rowCount, skipped int, sections []analysis.SectionResult) *Report {
	return &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Source:      source,
		RowCount:    rowCount,
		SkippedRows: skipped,
		Sections:    sections,
	}
}

// Render encodes the report in the requested format and language.
func (r *Report) Render(format Format, lang Language) ([]byte, error) {
	switch format {
	case FormatMarkdown:
		return renderMarkdown(r, lang)
	case FormatText:
		return renderText(r, lang)
	case FormatJSON:
		return renderJSON(r)
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// ParseLanguage validates a --lang flag value.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case LangEN, LangFA, LangBoth:
		return Language(s), nil
	default:
		return "", fmt.Errorf("unsupported language %q (want en, fa or both)", s)
	}
}

// ParseFormat validates a --format flag value.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatMarkdown, FormatText, FormatJSON:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unsupported format %q (want markdown, text or json)", s)
	}
}
