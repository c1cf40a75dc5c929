package sheets

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSchemaCheck_CompleteHeader(t *testing.T) {
	header := []string{
		ColCurator, ColChecked, ColCorrect, ColChanged,
		ColSubject, ColPredicate, ColObject, ColEvidence,
	}
	res := TemplateSchema().Check(header)
	if !res.OK {
		t.Errorf("Check = %+v, want OK", res)
	}
}

func TestSchemaCheck_MissingColumns(t *testing.T) {
	cases := []struct {
		name    string
		header  []string
		missing []string
	}{
		{
			name:    "no checked",
			header:  []string{ColCurator, ColCorrect, ColChanged},
			missing: []string{ColChecked},
		},
		{
			name:    "no curator",
			header:  []string{ColChecked, ColCorrect, ColChanged},
			missing: []string{ColCurator},
		},
		{
			name:    "empty header",
			header:  nil,
			missing: []string{ColCurator, ColChecked, ColCorrect, ColChanged},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := TemplateSchema().Check(tc.header)
			if res.OK {
				t.Fatal("Check reported OK for incomplete header")
			}
			if diff := cmp.Diff(tc.missing, res.Missing); diff != "" {
				t.Errorf("Missing mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSchemaCheck_OptionalColumnsNotRequired(t *testing.T) {
	// Subject/Predicate/Object etc. are optional; their absence alone
	// must not reject a sheet.
	header := []string{ColCurator, ColChecked, ColCorrect, ColChanged}
	if res := TemplateSchema().Check(header); !res.OK {
		t.Errorf("Check = %+v, want OK", res)
	}
}
