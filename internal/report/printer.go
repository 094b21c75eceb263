package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/analysis"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted console output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintDatasetSummary outputs a human-readable summary of the loaded dataset.
func (p *Printer) PrintDatasetSummary(source string, rows, skipped int) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Source:   %s\n", source))
	sb.WriteString(fmt.Sprintf("Rows:     %d\n", rows))
	if skipped > 0 {
		sb.WriteString(fmt.Sprintf("Skipped:  %d malformed rows", skipped))
	} else {
		sb.WriteString("Skipped:  none")
	}

	p.printBox("LOADED DATASET", sb.String())
}

// PrintSectionSummary outputs the computed sections with their finding counts.
func (p *Printer) PrintSectionSummary(sections []analysis.SectionResult) {
	if len(sections) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Computed %d sections:\n\n", len(sections)))

	count := min(len(sections), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := sections[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, s.Slug))
		sb.WriteString(fmt.Sprintf("    Findings: %d", len(s.Bullets)))
		if len(s.Groups) > 0 {
			sb.WriteString(fmt.Sprintf(", groups: %d", len(s.Groups)))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(sections) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more sections", len(sections)-maxItemsToShow))
	}

	p.printBox("ANALYSIS SECTIONS", sb.String())
}
