package main

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"belsheets/internal/graph"
)

// formatWarnings renders one warning per line for the pager, in the
// accumulation order of the scan.
func formatWarnings(warnings []graph.Warning) string {
	var b strings.Builder
	for _, w := range warnings {
		fmt.Fprintf(&b, "%s:%d: %s\n", w.Path, w.Line, w.Reason)
	}
	return b.String()
}

// warningSummaryLine is the one-line count printed before paging.
func warningSummaryLine(info graph.SummaryInfo) string {
	return fmt.Sprintf("Graph had %d warnings in %d documents",
		info.Warnings, info.ErroredDocuments)
}

// showPager pipes text through $PAGER (default less). When no pager is
// available the text is written to fallback directly.
func showPager(text string, fallback io.Writer) error {
	pager := os.Getenv("PAGER")
	if pager == "" {
		pager = "less"
	}

	path, err := exec.LookPath(pager)
	if err != nil {
		_, err := io.WriteString(fallback, text)
		return err
	}

	cmd := exec.Command(path)
	cmd.Stdin = strings.NewReader(text)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("pager %s: %w", pager, err)
	}
	return nil
}
