// Package repository drives the full pipeline over a rounds directory:
// discover curation sheets, translate their rows into one cumulative
// graph-with-warnings, classify their rows into per-sheet tallies, and
// persist the cache and report files.
package repository

import (
	"errors"
	"fmt"
	"log/slog"

	"belsheets/internal/bel"
	"belsheets/internal/classify"
	"belsheets/internal/config"
	"belsheets/internal/graph"
	"belsheets/internal/logging"
	"belsheets/internal/report"
	"belsheets/internal/sheets"
	"belsheets/internal/store"
	"belsheets/internal/translate"
)

// SheetsRepository scans one rounds directory. Processing is fully
// sequential: sheets in lexical order, rows in file order.
type SheetsRepository struct {
	cfg config.Config
	log *slog.Logger
}

// New returns a repository for the given configuration.
func New(cfg config.Config) *SheetsRepository {
	return &SheetsRepository{
		cfg: cfg,
		log: logging.New("repository"),
	}
}

// Graph returns the cumulative graph built from all sheets. When
// useCached is true and a cached graph exists, the scan is skipped
// entirely; any cache miss falls back to a full rescan. The freshly
// built graph is saved back to the cache.
func (r *SheetsRepository) Graph(useCached bool) (*graph.Graph, error) {
	if useCached {
		if g, err := r.loadCached(); err == nil {
			r.log.Info("using cached graph",
				slog.Int("nodes", len(g.Nodes)),
				slog.Int("edges", len(g.Edges)),
			)
			return g, nil
		} else if !errors.Is(err, store.ErrNoCache) {
			r.log.Warn("cache unavailable, rescanning", slog.String("error", err.Error()))
		}
	}

	md := r.cfg.Metadata
	g := graph.New(graph.Metadata{
		Name:    md.Name,
		Version: md.Version,
		Authors: md.AuthorString(),
		Contact: md.Contact,
	})
	translator := translate.New(bel.NewParser(g))

	entries, err := sheets.Walk(r.cfg.RoundsDir)
	if err != nil {
		return nil, err
	}

	for _, entry := range entries {
		sheet, ok := r.loadChecked(entry)
		if !ok {
			continue
		}
		for _, row := range sheet.Rows() {
			out := translator.Translate(row, entry.Path)
			if out.Kind == translate.Failed {
				g.AddWarning(out.Line, out.Path, out.Reason)
			}
		}
	}

	if err := r.saveCache(g); err != nil {
		return nil, err
	}
	return g, nil
}

// CurationSummary classifies every sheet and assembles the two summary
// tables keyed by gene symbol.
func (r *SheetsRepository) CurationSummary() (*report.Summary, error) {
	entries, err := sheets.Walk(r.cfg.RoundsDir)
	if err != nil {
		return nil, err
	}

	summary := report.NewSummary()
	for _, entry := range entries {
		sheet, ok := r.loadChecked(entry)
		if !ok {
			continue
		}
		rows := sheet.Rows()
		tally := classify.TallySheet(rows, entry.Path)
		tags, curator := classify.TallyErrorTypes(rows)
		summary.Add(entry.Symbol, tally, tags, curator)
	}
	return summary, nil
}

// GenerateCurationSummary builds the summary and writes both report
// CSVs into the cache directory.
func (r *SheetsRepository) GenerateCurationSummary() (*report.Summary, error) {
	summary, err := r.CurationSummary()
	if err != nil {
		return nil, err
	}
	if err := summary.WriteCSV(r.cfg.SummaryCSVPath(), r.cfg.ErrorTypesCSVPath()); err != nil {
		return nil, err
	}
	r.log.Info("curation summary written",
		slog.String("summary", r.cfg.SummaryCSVPath()),
		slog.String("error_types", r.cfg.ErrorTypesCSVPath()),
	)
	return summary, nil
}

// loadChecked loads one sheet and runs the single up-front schema
// check. A sheet that fails to load or is missing a required column is
// excluded whole, with one logged warning.
func (r *SheetsRepository) loadChecked(entry sheets.Entry) (*sheets.Sheet, bool) {
	sheet, err := sheets.Load(entry.Path, entry.Symbol)
	if err != nil {
		r.log.Warn("failed to load sheet", slog.String("error", err.Error()))
		return nil, false
	}
	if result := sheets.TemplateSchema().Check(sheet.Header); !result.OK {
		r.log.Warn("sheet is missing a required column",
			slog.String("path", entry.Path),
			slog.String("column", result.Missing[0]),
		)
		return nil, false
	}
	return sheet, true
}

func (r *SheetsRepository) loadCached() (*graph.Graph, error) {
	s, err := store.Open(r.cfg.GraphCachePath())
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.LoadGraph()
}

func (r *SheetsRepository) saveCache(g *graph.Graph) error {
	s, err := store.Open(r.cfg.GraphCachePath())
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.SaveGraph(g); err != nil {
		return fmt.Errorf("cache graph: %w", err)
	}
	return nil
}
