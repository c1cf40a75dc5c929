package classify

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"belsheets/internal/sheets"
)

func row(line int, checked, correct, changed bool) sheets.CurationRow {
	return sheets.CurationRow{
		Line:     line,
		Checked:  checked,
		Correct:  correct,
		Changed:  changed,
		Evidence: "real evidence",
	}
}

func TestTallySheet(t *testing.T) {
	rows := []sheets.CurationRow{
		row(0, false, false, false), // not curated
		row(1, true, false, false),  // error
		row(2, true, true, false),   // correct
		row(3, true, false, true),   // modified
		row(4, false, false, true),  // error but other statement
		row(5, true, true, false),   // correct
	}
	got := TallySheet(rows, "x.xlsx")

	if got.Total != 6 {
		t.Errorf("Total = %d, want 6", got.Total)
	}
	want := map[Outcome]int{
		NotCurated:                       1,
		Error:                            1,
		Correct:                          2,
		ModifiedByCurator:                1,
		ErrorButOtherStatementIdentified: 1,
	}
	if diff := cmp.Diff(want, got.Counts); diff != "" {
		t.Errorf("Counts mismatch (-want +got):\n%s", diff)
	}
}

func TestTallySheet_ConflictCountsTowardTotalOnly(t *testing.T) {
	rows := []sheets.CurationRow{
		row(0, false, true, true), // conflict
		row(1, true, true, false), // correct
	}
	got := TallySheet(rows, "x.xlsx")

	if got.Total != 2 {
		t.Errorf("Total = %d, want 2 (conflict still increments Total)", got.Total)
	}
	sum := 0
	for _, n := range got.Counts {
		sum += n
	}
	if sum != 1 {
		t.Errorf("bucket sum = %d, want 1 (conflict lands in no bucket)", sum)
	}
}

func TestTallySheet_SentinelSkip(t *testing.T) {
	noEvidence := row(0, true, true, false)
	noEvidence.Evidence = NoEvidenceSentinel

	nearMiss := row(1, true, true, false)
	nearMiss.Evidence = "no evidence text." // not an exact match

	got := TallySheet([]sheets.CurationRow{noEvidence, nearMiss}, "x.xlsx")
	if got.Total != 1 {
		t.Errorf("Total = %d, want 1 (exact sentinel rows excluded)", got.Total)
	}
	if got.Get(Correct) != 1 {
		t.Errorf("Correct = %d, want 1", got.Get(Correct))
	}
}

func TestTallySheet_Idempotent(t *testing.T) {
	rows := []sheets.CurationRow{
		row(0, true, true, false),
		row(1, false, false, false),
		row(2, false, true, true),
	}
	first := TallySheet(rows, "x.xlsx")
	second := TallySheet(rows, "x.xlsx")
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("tallies differ between runs (-first +second):\n%s", diff)
	}
}

func TestTallyErrorTypes(t *testing.T) {
	rows := []sheets.CurationRow{
		{Line: 0, Curator: "Sandra Spalek", ErrorType: "Wrong Polarity"},
		{Line: 1, ErrorType: " wrong polarity , missing namespace"},
		{Line: 2, ErrorType: "WRONG POLARITY"},
		{Line: 3, ErrorType: ""},
		{Line: 4, Curator: "Someone Else"},
	}
	tags, curator := TallyErrorTypes(rows)

	if curator != "Sandra Spalek" {
		t.Errorf("curator = %q, want first-row curator", curator)
	}
	want := map[string]int{
		"wrong polarity":    3,
		"missing namespace": 1,
	}
	if diff := cmp.Diff(want, tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
}

func TestTallyErrorTypes_EmptySheet(t *testing.T) {
	tags, curator := TallyErrorTypes(nil)
	if len(tags) != 0 || curator != "" {
		t.Errorf("got tags=%v curator=%q for empty sheet", tags, curator)
	}
}
