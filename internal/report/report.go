// Package report assembles per-sheet classification and error-type
// tallies into the two summary tables and writes them as CSV files.
package report

import (
	"fmt"
	"os"
	"sort"

	"belsheets/internal/classify"
	"belsheets/internal/format"
)

// Summary aggregates per-symbol tallies across all sheets of a run.
type Summary struct {
	classification map[string]classify.Tally
	errorTags      map[string]map[string]int
	curators       map[string]string
}

// NewSummary returns an empty summary.
func NewSummary() *Summary {
	return &Summary{
		classification: make(map[string]classify.Tally),
		errorTags:      make(map[string]map[string]int),
		curators:       make(map[string]string),
	}
}

// Add records one sheet's tallies under its group key (gene symbol).
func (s *Summary) Add(symbol string, tally classify.Tally, tags map[string]int, curator string) {
	s.classification[symbol] = tally
	s.errorTags[symbol] = tags
	s.curators[symbol] = curator
}

// Symbols returns the group keys in sorted order.
func (s *Summary) Symbols() []string {
	symbols := make([]string, 0, len(s.classification))
	for sym := range s.classification {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)
	return symbols
}

// Curator returns the report label curator for a symbol.
func (s *Summary) Curator(symbol string) string {
	return s.curators[symbol]
}

// TagColumns returns the union of discovered error tags, sorted for
// deterministic output.
func (s *Summary) TagColumns() []string {
	seen := make(map[string]struct{})
	for _, tags := range s.errorTags {
		for tag := range tags {
			seen[tag] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen))
	for tag := range seen {
		cols = append(cols, tag)
	}
	sort.Strings(cols)
	return cols
}

// ClassificationTable renders the classification summary: one row per
// symbol, the fixed outcome column order, and a Total column. Non-CSV
// modes get a grand-total footer.
func (s *Summary) ClassificationTable(mode format.Mode) string {
	tb := format.NewTable(mode)

	header := []string{"Symbol"}
	for _, o := range classify.ReportOrder {
		header = append(header, o.Label())
	}
	header = append(header, "Total")
	tb.Header(header...)

	cfgs := make([]format.ColumnConfig, 0, len(header)-1)
	for i := 2; i <= len(header); i++ {
		cfgs = append(cfgs, format.ColumnConfig{Number: i, Align: format.AlignRight})
	}
	tb.Columns(cfgs...)

	totals := make([]int, len(classify.ReportOrder)+1)
	for _, symbol := range s.Symbols() {
		tally := s.classification[symbol]
		row := []any{symbol}
		for i, o := range classify.ReportOrder {
			n := tally.Get(o)
			totals[i] += n
			row = append(row, n)
		}
		totals[len(totals)-1] += tally.Total
		row = append(row, tally.Total)
		tb.Row(row...)
	}

	footer := []any{"TOTAL"}
	for _, n := range totals {
		footer = append(footer, n)
	}
	tb.Footer(footer...)

	return tb.String()
}

// ErrorTypesTable renders the sparse error-tag table: one row per
// symbol, one column per discovered tag, empty cells where a symbol has
// no occurrences of a tag.
func (s *Summary) ErrorTypesTable(mode format.Mode) string {
	tb := format.NewTable(mode)

	cols := s.TagColumns()
	header := append([]string{"Symbol"}, cols...)
	tb.Header(header...)

	for _, symbol := range s.Symbols() {
		tags := s.errorTags[symbol]
		row := []any{symbol}
		for _, tag := range cols {
			if n, ok := tags[tag]; ok {
				row = append(row, n)
			} else {
				row = append(row, "")
			}
		}
		tb.Row(row...)
	}

	return tb.String()
}

// WriteCSV writes both report files.
func (s *Summary) WriteCSV(summaryPath, errorTypesPath string) error {
	if err := writeFile(summaryPath, s.ClassificationTable(format.CSV)); err != nil {
		return err
	}
	return writeFile(errorTypesPath, s.ErrorTypesTable(format.CSV))
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content+"\n"), 0o644); err != nil {
		return fmt.Errorf("report: write %q: %w", path, err)
	}
	return nil
}
