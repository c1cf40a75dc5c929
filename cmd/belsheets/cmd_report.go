package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"belsheets/internal/format"
	"belsheets/internal/repository"
)

var reportFlags struct {
	markdown bool
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print the curation summary and error-type tables",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().BoolVar(&reportFlags.markdown, "markdown", false, "Render tables as Markdown")
}

func runReport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	summary, err := repository.New(cfg).CurationSummary()
	if err != nil {
		return fmt.Errorf("curation summary: %w", err)
	}

	mode := format.ASCII
	if reportFlags.markdown {
		mode = format.Markdown
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Curation summary")
	fmt.Fprintln(out, summary.ClassificationTable(mode))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Error types")
	fmt.Fprintln(out, summary.ErrorTypesTable(mode))
	return nil
}
