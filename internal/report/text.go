package report

import (
	"fmt"
	"strings"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/analysis"
)

// renderText produces the plain-text edition of the report, one numbered
// section per block with indented bullets.
func renderText(r *Report, lang Language) ([]byte, error) {
	var b strings.Builder

	switch lang {
	case LangFA:
		b.WriteString("گزارش بازار کار جاب‌ویژن\n")
	default:
		b.WriteString("JobVision Job Market Report\n")
	}
	b.WriteString(strings.Repeat("=", 40) + "\n")
	fmt.Fprintf(&b, "Source:  %s\n", r.Source)
	fmt.Fprintf(&b, "Rows:    %d", r.RowCount)
	if r.SkippedRows > 0 {
		fmt.Fprintf(&b, " (%d skipped)", r.SkippedRows)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Run:     %s @ %s\n\n", r.RunID, r.GeneratedAt.Format("2006-01-02 15:04 MST"))

	for i, s := range r.Sections {
		writeTextSection(&b, i+1, s, lang)
	}

	return []byte(b.String()), nil
}

func writeTextSection(b *strings.Builder, n int, s analysis.SectionResult, lang Language) {
	switch lang {
	case LangEN:
		fmt.Fprintf(b, "%d. %s\n", n, s.TitleEN)
	case LangFA:
		fmt.Fprintf(b, "%d. %s\n", n, s.TitleFA)
	default:
		fmt.Fprintf(b, "%d. %s — %s\n", n, s.TitleEN, s.TitleFA)
	}

	for _, bullet := range s.Bullets {
		if lang == LangEN || lang == LangBoth {
			fmt.Fprintf(b, "   • %s\n", bullet.EN)
		}
		if lang == LangFA || lang == LangBoth {
			fmt.Fprintf(b, "   • %s\n", bullet.FA)
		}
	}

	for _, g := range s.Groups {
		if g.Share != 0 {
			fmt.Fprintf(b, "     %-40s %8d  %5.1f%%\n", g.Key, g.Count, g.Share)
		} else if s.ValueKind != analysis.ValueNone {
			fmt.Fprintf(b, "     %-40s %8d  %12.1f\n", g.Key, g.Count, g.Value)
		} else {
			fmt.Fprintf(b, "     %-40s %8d\n", g.Key, g.Count)
		}
	}
	for _, p := range s.Series {
		if p.Value != 0 {
			fmt.Fprintf(b, "     %s  %6d  %5.1f%%\n", p.Month, p.Count, p.Value)
		} else {
			fmt.Fprintf(b, "     %s  %6d\n", p.Month, p.Count)
		}
	}
	b.WriteString("\n")
}
