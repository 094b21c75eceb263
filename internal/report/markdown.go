package report

import (
	"fmt"
	"strings"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/analysis"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/stats"
)

// renderMarkdown produces the Markdown edition of the report.
func renderMarkdown(r *Report, lang Language) ([]byte, error) {
	var b strings.Builder

	switch lang {
	case LangFA:
		b.WriteString("# گزارش بازار کار جاب‌ویژن\n\n")
	default:
		b.WriteString("# JobVision Job Market Report\n\n")
	}
	fmt.Fprintf(&b, "- Source: `%s`\n", r.Source)
	fmt.Fprintf(&b, "- Rows analyzed: %d\n", r.RowCount)
	if r.SkippedRows > 0 {
		fmt.Fprintf(&b, "- Rows skipped: %d\n", r.SkippedRows)
	}
	fmt.Fprintf(&b, "- Generated: %s\n", r.GeneratedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "- Run ID: %s\n\n", r.RunID)

	for i, s := range r.Sections {
		writeMarkdownSection(&b, i+1, s, lang)
	}

	return []byte(b.String()), nil
}

func writeMarkdownSection(b *strings.Builder, n int, s analysis.SectionResult, lang Language) {
	switch lang {
	case LangEN:
		fmt.Fprintf(b, "## %d. %s\n\n", n, s.TitleEN)
	case LangFA:
		fmt.Fprintf(b, "## %d. %s\n\n", n, s.TitleFA)
	default:
		fmt.Fprintf(b, "## %d. %s — %s\n\n", n, s.TitleEN, s.TitleFA)
	}

	for _, bullet := range s.Bullets {
		if lang == LangEN || lang == LangBoth {
			fmt.Fprintf(b, "- %s\n", bullet.EN)
		}
		if lang == LangFA || lang == LangBoth {
			fmt.Fprintf(b, "- %s\n", bullet.FA)
		}
	}
	b.WriteString("\n")

	if len(s.Groups) > 0 {
		writeGroupTable(b, s.Groups, s.ValueKind)
	}
	if len(s.Series) > 0 {
		writeSeriesTable(b, s.Series)
	}
	if s.Pivot != nil {
		writePivotTable(b, s.Pivot)
	}
	if s.Matrix != nil {
		writeMatrixTable(b, s.Matrix)
	}
}

func writeGroupTable(b *strings.Builder, groups []stats.Group, kind analysis.ValueKind) {
	header := "| Group | Count |"
	rule := "| --- | ---: |"
	if valueColumn(kind) != "" {
		header += fmt.Sprintf(" %s |", valueColumn(kind))
		rule += " ---: |"
	}
	if hasShares(groups) {
		header += " Share |"
		rule += " ---: |"
	}
	b.WriteString(header + "\n" + rule + "\n")

	for _, g := range groups {
		fmt.Fprintf(b, "| %s | %d |", g.Key, g.Count)
		if valueColumn(kind) != "" {
			fmt.Fprintf(b, " %.1f |", g.Value)
		}
		if hasShares(groups) {
			fmt.Fprintf(b, " %.1f%% |", g.Share)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeSeriesTable(b *strings.Builder, points []stats.MonthPoint) {
	withValues := false
	for _, p := range points {
		if p.Value != 0 {
			withValues = true
			break
		}
	}

	if withValues {
		b.WriteString("| Month | Count | Share |\n| --- | ---: | ---: |\n")
	} else {
		b.WriteString("| Month | Count |\n| --- | ---: |\n")
	}
	for _, p := range points {
		if withValues {
			fmt.Fprintf(b, "| %s | %d | %.1f%% |\n", p.Month, p.Count, p.Value)
		} else {
			fmt.Fprintf(b, "| %s | %d |\n", p.Month, p.Count)
		}
	}
	b.WriteString("\n")
}

func writePivotTable(b *strings.Builder, p *stats.Pivot) {
	b.WriteString("| |")
	for _, c := range p.ColKeys {
		fmt.Fprintf(b, " %s |", c)
	}
	b.WriteString("\n| --- |")
	for range p.ColKeys {
		b.WriteString(" ---: |")
	}
	b.WriteString("\n")

	for r, key := range p.RowKeys {
		fmt.Fprintf(b, "| %s |", key)
		for c := range p.ColKeys {
			fmt.Fprintf(b, " %d |", p.Counts[r][c])
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func writeMatrixTable(b *strings.Builder, m *stats.CorrelationMatrix) {
	b.WriteString("| |")
	for _, l := range m.Labels {
		fmt.Fprintf(b, " %s |", l)
	}
	b.WriteString("\n| --- |")
	for range m.Labels {
		b.WriteString(" ---: |")
	}
	b.WriteString("\n")

	for i, l := range m.Labels {
		fmt.Fprintf(b, "| %s |", l)
		for j := range m.Labels {
			fmt.Fprintf(b, " %.2f |", m.Values[i][j])
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
}

func valueColumn(kind analysis.ValueKind) string {
	switch kind {
	case analysis.ValueSalary:
		return "Mean Salary (Toman)"
	case analysis.ValuePercent:
		return "Share"
	case analysis.ValueYears:
		return "Years"
	default:
		return ""
	}
}

func hasShares(groups []stats.Group) bool {
	for _, g := range groups {
		if g.Share != 0 {
			return true
		}
	}
	return false
}
