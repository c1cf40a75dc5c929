// Package sheets discovers and loads curation spreadsheets: the
// two-level enrichment directory layout, the curation template column
// schema, and the typed row view the translator and classifier consume.
package sheets

import "strings"

// Column names of the curation template.
const (
	ColCurator           = "Curator"
	ColChecked           = "Checked"
	ColCorrect           = "Correct"
	ColChanged           = "Changed"
	ColSubject           = "Subject"
	ColPredicate         = "Predicate"
	ColObject            = "Object"
	ColEvidence          = "Evidence"
	ColCitationReference = "Citation Reference"
	ColPMID              = "PMID"
	ColErrorType         = "Error Type"
	ColSourceID          = "INDRA UUID"
)

// Record is one raw spreadsheet row keyed by column name. Cells are the
// formatted string values; absent columns are absent keys.
type Record map[string]string

// CurationRow is the typed view over one Record.
//
// Checked/Correct/Changed derive from cell presence: curators mark these
// columns with arbitrary text (usually "x"), so a flag is set iff the
// trimmed cell is non-empty.
type CurationRow struct {
	Line int // 0-based row index within the sheet, header excluded

	Checked bool
	Correct bool
	Changed bool

	Curator           string
	Subject           string
	Predicate         string
	Object            string
	Evidence          string
	CitationReference string
	PMID              string
	SourceID          string
	ErrorType         string
}

// RowFromRecord builds the typed row for the record at the given line.
func RowFromRecord(line int, rec Record) CurationRow {
	return CurationRow{
		Line:              line,
		Checked:           flagSet(rec[ColChecked]),
		Correct:           flagSet(rec[ColCorrect]),
		Changed:           flagSet(rec[ColChanged]),
		Curator:           rec[ColCurator],
		Subject:           rec[ColSubject],
		Predicate:         rec[ColPredicate],
		Object:            rec[ColObject],
		Evidence:          rec[ColEvidence],
		CitationReference: rec[ColCitationReference],
		PMID:              rec[ColPMID],
		SourceID:          rec[ColSourceID],
		ErrorType:         rec[ColErrorType],
	}
}

// Eligible reports whether the row may be translated into a statement:
// it must be checked, and either confirmed correct or changed by the
// curator. Ineligible rows are inert for graph-building but still count
// for classification.
func (r CurationRow) Eligible() bool {
	return r.Checked && (r.Correct || r.Changed)
}

func flagSet(cell string) bool {
	return strings.TrimSpace(cell) != ""
}
