package classify

import (
	"log/slog"
	"strings"

	"belsheets/internal/logging"
	"belsheets/internal/sheets"
)

// Tally is the classification count of one sheet.
//
// Total is incremented for every non-skipped row, including conflicts,
// which never land in a visible bucket, so Total may exceed the sum of
// the bucket counts. This mirrors the historical report semantics.
type Tally struct {
	Counts map[Outcome]int
	Total  int
}

// Get returns the count for an outcome (zero when absent).
func (t Tally) Get(o Outcome) int {
	return t.Counts[o]
}

// TallySheet classifies every row of a sheet. Rows whose evidence is
// the no-evidence sentinel are skipped entirely: no bucket, no Total.
// Conflicts are logged with their row line and counted only in Total.
func TallySheet(rows []sheets.CurationRow, path string) Tally {
	log := logging.New("classify")
	t := Tally{Counts: make(map[Outcome]int)}

	for _, row := range rows {
		if row.Evidence == NoEvidenceSentinel {
			log.Debug("no evidence text, skipping row",
				slog.Int("line", row.Line),
				slog.String("path", path),
			)
			continue
		}

		outcome := Classify(row.Checked, row.Correct, row.Changed)
		if outcome == Conflict {
			log.Warn("conflicting curation flags",
				slog.Int("line", row.Line),
				slog.String("path", path),
			)
		} else {
			t.Counts[outcome]++
		}
		t.Total++
	}
	return t
}

// NormalizeTag canonicalizes one error-type tag.
func NormalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// TallyErrorTypes counts normalized error-type tags across all rows of
// a sheet. A row's comma-separated Error Type cell contributes one
// count per tag. The returned curator name is taken from the sheet's
// first row only, regardless of that row's classification.
func TallyErrorTypes(rows []sheets.CurationRow) (map[string]int, string) {
	tags := make(map[string]int)
	var curator string

	for _, row := range rows {
		if row.Line == 0 {
			curator = row.Curator
		}
		if strings.TrimSpace(row.ErrorType) == "" {
			continue
		}
		for _, tag := range strings.Split(row.ErrorType, ",") {
			normalized := NormalizeTag(tag)
			if normalized == "" {
				continue
			}
			tags[normalized]++
		}
	}
	return tags, curator
}
