package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/cleaning"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/observability"
)

var preprocessCmd = &cobra.Command{
	Use:   "preprocess",
	Short: "Clean the raw JobVision CSV export",
	Long: `Cleans the raw JobVision export: renames columns, drops the English
duplicate columns, fills missing categorical values and normalizes the
mixed-language terminology so every analysis works on one vocabulary.`,
	RunE: runPreprocess,
}

var (
	preprocessInputFile  string
	preprocessOutputFile string
	preprocessVerbose    bool
)

func init() {
	preprocessCmd.Flags().StringVarP(&preprocessInputFile, "in", "i", "", "Path to the raw CSV export")
	preprocessCmd.Flags().StringVarP(&preprocessOutputFile, "out", "o", "", "Path to write the cleaned CSV")
	preprocessCmd.Flags().BoolVarP(&preprocessVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = preprocessCmd.MarkFlagRequired("in")
	_ = preprocessCmd.MarkFlagRequired("out")

	rootCmd.AddCommand(preprocessCmd)
}

func runPreprocess(_ *cobra.Command, _ []string) error {
	logger, err := observability.NewLogger(preprocessVerbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	logger.Debug("preprocessing raw export",
		zap.String("in", preprocessInputFile),
		zap.String("out", preprocessOutputFile))

	stats, err := cleaning.PreprocessFile(preprocessInputFile, preprocessOutputFile)
	if err != nil {
		return fmt.Errorf("failed to preprocess dataset: %w", err)
	}

	logger.Debug("preprocessing finished",
		zap.Int("rows", stats.Rows),
		zap.Int("dropped_columns", stats.DroppedColumns),
		zap.Int("renamed_columns", stats.RenamedColumns))

	_, _ = fmt.Fprintf(os.Stdout, "Cleaned %d rows (%d columns dropped, %d renamed)\n",
		stats.Rows, stats.DroppedColumns, stats.RenamedColumns)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", preprocessOutputFile)

	return nil
}
