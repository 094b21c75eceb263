package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/analysis"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the available report sections",
	Long:  "Lists every report section slug with its English and Persian titles, in report order.",
	RunE:  runSections,
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

func runSections(_ *cobra.Command, _ []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "SLUG\tTITLE\tعنوان")
	for _, s := range analysis.Catalog() {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", s.Slug, s.TitleEN, s.TitleFA)
	}
	return w.Flush()
}
