package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"belsheets/internal/repository"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Build or load the graph and print its summary",
	RunE:  runGraph,
}

func runGraph(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	g, err := repository.New(cfg).Graph(!rootFlags.rebuild)
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}

	out := cmd.OutOrStdout()
	info := g.Summary()
	fmt.Fprintln(out, info.String())
	if info.Warnings > 0 {
		fmt.Fprintln(out, warningSummaryLine(info))
	}
	return nil
}
