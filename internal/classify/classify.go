// Package classify scores curation rows into quality outcomes and
// tallies error-type tags per sheet.
package classify

// Outcome is the curation-quality category of one row.
type Outcome int

const (
	// NotCurated: none of checked/correct/changed is set.
	NotCurated Outcome = iota
	// Error: checked, but neither correct nor changed. The extracted
	// statement was wrong and nothing replaced it.
	Error
	// Correct: the extracted statement was confirmed as-is.
	Correct
	// ModifiedByCurator: the original statement was fixed by the curator.
	ModifiedByCurator
	// ErrorButOtherStatementIdentified: the statement was wrong but the
	// curator extracted a different one from the same evidence.
	ErrorButOtherStatementIdentified
	// Conflict: correct and changed both set without checked; logged,
	// never counted into a visible bucket.
	Conflict
)

// Label returns the report column header for the outcome.
func (o Outcome) Label() string {
	switch o {
	case NotCurated:
		return "Not curated"
	case Error:
		return "Error"
	case Correct:
		return "Correct"
	case ModifiedByCurator:
		return "Modified by curator"
	case ErrorButOtherStatementIdentified:
		return "Error but other statement was identified"
	case Conflict:
		return "Conflict"
	}
	return "Unknown"
}

// ReportOrder is the fixed column order of the classification summary.
// Conflict is deliberately absent: it never appears as a column.
var ReportOrder = []Outcome{
	Correct,
	Error,
	ErrorButOtherStatementIdentified,
	ModifiedByCurator,
	NotCurated,
}

// NoEvidenceSentinel marks rows whose source extraction carried no
// evidence text; such rows are excluded from classification entirely.
const NoEvidenceSentinel = "No evidence text."

// Classify maps the three curator flags to an outcome. The cases are
// evaluated in fixed priority order; each case assumes the previous
// ones did not match.
func Classify(checked, correct, changed bool) Outcome {
	switch {
	case !checked && !correct && !changed:
		return NotCurated
	case checked && !correct && !changed:
		return Error
	case correct && !changed:
		return Correct
	case checked && changed:
		return ModifiedByCurator
	case changed && correct:
		return Conflict
	case changed:
		return ErrorButOtherStatementIdentified
	}
	// All eight flag combinations are covered above.
	return NotCurated
}
