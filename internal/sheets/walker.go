package sheets

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BatchPrefix marks the directories inside the rounds directory that
// hold one enrichment batch each.
const BatchPrefix = "enrichment-"

// Entry is one discovered curation sheet: the target symbol it curates
// (the subdirectory name) and the sheet file path.
type Entry struct {
	Symbol string
	Path   string
}

// Walk scans roundsDir for curation sheets. Directories named
// "enrichment-*" are batches; each subdirectory <SYMBOL> contributes
// <SYMBOL>_curated.xlsx when that file exists. Entries are returned in
// lexical order so scans are deterministic.
func Walk(roundsDir string) ([]Entry, error) {
	batches, err := os.ReadDir(roundsDir)
	if err != nil {
		return nil, fmt.Errorf("sheets: read rounds dir %q: %w", roundsDir, err)
	}

	var entries []Entry
	for _, batch := range batches {
		if !batch.IsDir() || !strings.HasPrefix(batch.Name(), BatchPrefix) {
			continue
		}
		batchDir := filepath.Join(roundsDir, batch.Name())
		subs, err := os.ReadDir(batchDir)
		if err != nil {
			return nil, fmt.Errorf("sheets: read batch dir %q: %w", batchDir, err)
		}
		for _, sub := range subs {
			if !sub.IsDir() {
				continue
			}
			path := filepath.Join(batchDir, sub.Name(), sub.Name()+"_curated.xlsx")
			if _, err := os.Stat(path); err != nil {
				continue
			}
			entries = append(entries, Entry{Symbol: sub.Name(), Path: path})
		}
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Path < entries[j].Path })
	return entries, nil
}
