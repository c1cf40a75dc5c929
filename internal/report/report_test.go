package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"belsheets/internal/classify"
	"belsheets/internal/format"
)

func testSummary() *Summary {
	s := NewSummary()
	s.Add("MAPT",
		classify.Tally{
			Counts: map[classify.Outcome]int{
				classify.Correct:    5,
				classify.Error:      2,
				classify.NotCurated: 1,
			},
			Total: 8,
		},
		map[string]int{"wrong polarity": 2, "missing namespace": 1},
		"Esther Wollert",
	)
	s.Add("GSK3B",
		classify.Tally{
			Counts: map[classify.Outcome]int{
				classify.Correct:           3,
				classify.ModifiedByCurator: 4,
			},
			Total: 7,
		},
		map[string]int{"wrong polarity": 1},
		"Lingling Xu",
	)
	return s
}

func TestSymbols_Sorted(t *testing.T) {
	s := testSummary()
	if diff := cmp.Diff([]string{"GSK3B", "MAPT"}, s.Symbols()); diff != "" {
		t.Errorf("Symbols mismatch (-want +got):\n%s", diff)
	}
}

func TestClassificationTable_CSV(t *testing.T) {
	out := testSummary().ClassificationTable(format.CSV)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), out)
	}

	wantHeader := "Symbol,Correct,Error,Error but other statement was identified,Modified by curator,Not curated,Total"
	if lines[0] != wantHeader {
		t.Errorf("header = %q, want %q", lines[0], wantHeader)
	}
	if lines[1] != "GSK3B,3,0,0,4,0,7" {
		t.Errorf("GSK3B row = %q", lines[1])
	}
	if lines[2] != "MAPT,5,2,0,0,1,8" {
		t.Errorf("MAPT row = %q", lines[2])
	}
	if strings.Contains(out, "TOTAL") {
		t.Error("CSV must not carry the grand-total footer")
	}
}

func TestClassificationTable_ASCIIFooter(t *testing.T) {
	out := testSummary().ClassificationTable(format.ASCII)
	if !strings.Contains(out, "TOTAL") {
		t.Errorf("ASCII table should have a grand-total footer:\n%s", out)
	}
	if !strings.Contains(out, "15") { // 8 + 7
		t.Errorf("expected grand total 15 in footer:\n%s", out)
	}
}

func TestErrorTypesTable_Sparse(t *testing.T) {
	out := testSummary().ErrorTypesTable(format.CSV)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header + 2 rows, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "Symbol,missing namespace,wrong polarity" {
		t.Errorf("header = %q", lines[0])
	}
	// GSK3B has no "missing namespace" occurrences: empty cell, not zero.
	if lines[1] != "GSK3B,,1" {
		t.Errorf("GSK3B row = %q", lines[1])
	}
	if lines[2] != "MAPT,1,2" {
		t.Errorf("MAPT row = %q", lines[2])
	}
}

func TestCurator(t *testing.T) {
	s := testSummary()
	if got := s.Curator("MAPT"); got != "Esther Wollert" {
		t.Errorf("Curator(MAPT) = %q", got)
	}
	if got := s.Curator("UNKNOWN"); got != "" {
		t.Errorf("Curator(UNKNOWN) = %q, want empty", got)
	}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	summaryPath := filepath.Join(dir, "curation_summary.csv")
	errorsPath := filepath.Join(dir, "error_types.csv")

	if err := testSummary().WriteCSV(summaryPath, errorsPath); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	data, err := os.ReadFile(summaryPath)
	if err != nil {
		t.Fatalf("read summary: %v", err)
	}
	if !strings.HasPrefix(string(data), "Symbol,Correct,") {
		t.Errorf("summary file starts with %q", string(data[:20]))
	}

	data, err = os.ReadFile(errorsPath)
	if err != nil {
		t.Fatalf("read error types: %v", err)
	}
	if !strings.Contains(string(data), "wrong polarity") {
		t.Errorf("error types file missing tag column:\n%s", data)
	}
}
