package sheets

import "testing"

func TestRowFromRecord_FlagDerivation(t *testing.T) {
	cases := []struct {
		name    string
		cell    string
		wantSet bool
	}{
		{"x mark", "x", true},
		{"arbitrary text", "yes, reviewed", true},
		{"empty", "", false},
		{"whitespace only", "   ", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			row := RowFromRecord(0, Record{ColChecked: tc.cell})
			if row.Checked != tc.wantSet {
				t.Errorf("Checked = %v for cell %q, want %v", row.Checked, tc.cell, tc.wantSet)
			}
		})
	}
}

func TestRowFromRecord_Fields(t *testing.T) {
	rec := Record{
		ColCurator:           "Esther Wollert",
		ColChecked:           "x",
		ColSubject:           "p(HGNC:MAPT)",
		ColPredicate:         "increases",
		ColObject:            "bp(GO:apoptosis)",
		ColEvidence:          "Tau induces apoptosis.",
		ColCitationReference: "12345",
		ColPMID:              "67890",
		ColSourceID:          "uuid-1",
		ColErrorType:         "wrong polarity",
	}
	row := RowFromRecord(7, rec)
	if row.Line != 7 {
		t.Errorf("Line = %d, want 7", row.Line)
	}
	if row.Curator != "Esther Wollert" || row.Subject != "p(HGNC:MAPT)" ||
		row.CitationReference != "12345" || row.PMID != "67890" ||
		row.SourceID != "uuid-1" || row.ErrorType != "wrong polarity" {
		t.Errorf("unexpected field mapping: %+v", row)
	}
}

func TestEligible(t *testing.T) {
	cases := []struct {
		checked, correct, changed bool
		want                      bool
	}{
		{false, false, false, false},
		{false, true, false, false}, // unchecked material is never used
		{true, false, false, false},
		{true, true, false, true},
		{true, false, true, true},
		{true, true, true, true},
	}
	for _, tc := range cases {
		row := CurationRow{Checked: tc.checked, Correct: tc.correct, Changed: tc.changed}
		if got := row.Eligible(); got != tc.want {
			t.Errorf("Eligible(checked=%v correct=%v changed=%v) = %v, want %v",
				tc.checked, tc.correct, tc.changed, got, tc.want)
		}
	}
}
