// Package main provides the entry point for the JobVision job market analysis CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jobvision-eda",
	Short: "JobVision job market analysis CLI",
	Long:  "jobvision-eda cleans the JobVision job-postings export and produces a bilingual descriptive report of the Iranian job market.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
