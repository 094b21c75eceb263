package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/analysis"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/config"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/dataset"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/observability"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/report"
	"github.com/mehdikiani/jobvision-exploratory-data-analysis/internal/schemas"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Compute the job market report from a cleaned dataset",
	Long: `Loads a cleaned JobVision CSV, runs the analysis sections and renders the
report in English, Persian or both.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runReport,
}

var (
	reportConfigPath  string
	reportData        string
	reportOut         string
	reportLang        string
	reportFormat      string
	reportSections    []string
	reportOptionsFile string
	reportVerbose     bool
)

func init() {
	// Config file flag (processed first)
	reportCmd.Flags().StringVar(&reportConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	reportCmd.Flags().StringVarP(&reportData, "data", "d", "", "Path to the cleaned CSV (defaults to JOBVISION_DATA env var)")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", `Output path, "-" for stdout`)
	reportCmd.Flags().StringVarP(&reportLang, "lang", "l", "", "Report language: en, fa or both")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "", "Output format: markdown, text or json")
	reportCmd.Flags().StringSliceVarP(&reportSections, "sections", "s", nil, "Section slugs to run (default: all)")
	reportCmd.Flags().StringVar(&reportOptionsFile, "options", "", "Path to an analysis options JSON file")
	reportCmd.Flags().BoolVarP(&reportVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	// Step 1: Load config file if provided
	var cfg config.Config
	if reportConfigPath != "" {
		loadedCfg, err := config.LoadConfig(reportConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("data") {
		cfg.Data = reportData
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = reportOut
	}
	if cmd.Flags().Changed("lang") {
		cfg.Lang = reportLang
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = reportFormat
	}
	if cmd.Flags().Changed("sections") {
		cfg.Sections = reportSections
	}
	if cmd.Flags().Changed("options") {
		cfg.OptionsFile = reportOptionsFile
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = reportVerbose
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		Out:    "-",
		Lang:   "both",
		Format: "markdown",
	})

	// Step 4: Validate required fields
	if cfg.Data == "" {
		cfg.Data = os.Getenv("JOBVISION_DATA")
	}
	if cfg.Data == "" {
		return fmt.Errorf("--data is required (via flag, config or JOBVISION_DATA env var)")
	}

	lang, err := report.ParseLanguage(cfg.Lang)
	if err != nil {
		return err
	}
	format, err := report.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Step 5: Analysis options, defaults overridden by the options file
	opts := analysis.DefaultOptions()
	if cfg.OptionsFile != "" {
		override, err := schemas.LoadOptionsFile(cfg.OptionsFile)
		if err != nil {
			return err
		}
		opts = opts.Merge(override)
		logger.Debug("applied analysis options", zap.String("file", cfg.OptionsFile))
	}

	// Step 6: Load the dataset
	loaded, err := dataset.LoadFile(cfg.Data)
	if err != nil {
		return err
	}
	logger.Debug("loaded dataset",
		zap.String("source", cfg.Data),
		zap.Int("rows", loaded.RowCount),
		zap.Int("skipped", loaded.SkippedRows))

	printer := report.NewPrinter(os.Stderr)
	if cfg.Verbose {
		printer.PrintDatasetSummary(cfg.Data, loaded.RowCount, loaded.SkippedRows)
	}

	// Step 7: Run the sections and render
	sections, err := analysis.Run(loaded.Postings, opts, cfg.Sections)
	if err != nil {
		return err
	}
	if cfg.Verbose {
		printer.PrintSectionSummary(sections)
	}

	rep := report.New(cfg.Data, loaded.RowCount, loaded.SkippedRows, sections)
	rendered, err := rep.Render(format, lang)
	if err != nil {
		return err
	}

	if cfg.Out == "-" {
		_, err = os.Stdout.Write(rendered)
		return err
	}
	if err := os.WriteFile(cfg.Out, rendered, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	_, _ = fmt.Fprintf(os.Stdout, "Report written to %s (%d sections)\n", cfg.Out, len(sections))

	return nil
}
