// Package translate turns eligible curation rows into BEL statements
// fed to the grammar parser, and records per-row failures without ever
// aborting a scan.
package translate

import (
	"log/slog"
	"strings"

	"belsheets/internal/bel"
	"belsheets/internal/logging"
	"belsheets/internal/sheets"
)

// Kind is the coarse outcome of translating one row.
type Kind int

const (
	// Skipped means the row was ineligible (unchecked, or neither
	// correct nor changed) and is inert for graph-building.
	Skipped Kind = iota
	// Parsed means the statement was added to the graph.
	Parsed
	// Failed means the row produced a warning; see FailureKind.
	Failed
)

// FailureKind distinguishes the two failure modes so callers need not
// string-match the reason payload.
type FailureKind int

const (
	FailureNone FailureKind = iota
	// MissingReference: the row has neither a citation reference nor a PMID.
	MissingReference
	// GrammarRejection: the parser rejected the assembled statement.
	GrammarRejection
)

// Outcome is the result of translating one row.
type Outcome struct {
	Kind    Kind
	Failure FailureKind
	// Reason is the warning payload: "missing reference", or the
	// assembled statement text on grammar rejection.
	Reason string
	Line   int
	Path   string
}

// Annotation keys and values set on every translated statement.
const (
	annotationCurator    = "Curator"
	annotationSourceID   = "INDRA_UUID"
	annotationConfidence = "Confidence"

	// confidenceMedium marks statements as needing re-curation.
	confidenceMedium = "Medium"
)

const actBPPrefix = "act(bp("

// Translator translates rows through a parser bound to the cumulative graph.
type Translator struct {
	parser *bel.Parser
	log    *slog.Logger
}

// New returns a translator feeding the given parser.
func New(parser *bel.Parser) *Translator {
	return &Translator{
		parser: parser,
		log:    logging.New("translate"),
	}
}

// Translate processes one curation row from the sheet at path.
//
// The warning payload for grammar rejections is the assembled statement
// text, not the parser's own message; the parser error is only logged
// at debug level.
func (t *Translator) Translate(row sheets.CurationRow, path string) Outcome {
	if !row.Eligible() {
		return Outcome{Kind: Skipped}
	}

	reference := strings.TrimSpace(row.CitationReference)
	if reference == "" {
		reference = strings.TrimSpace(row.PMID)
	}
	if reference == "" {
		return Outcome{
			Kind:    Failed,
			Failure: MissingReference,
			Reason:  "missing reference",
			Line:    row.Line,
			Path:    path,
		}
	}

	ctx := bel.Context{
		Citation: bel.Citation{Type: bel.CitationTypePubMed, Reference: reference},
		Evidence: row.Evidence,
		Annotations: map[string][]string{
			annotationCurator:    {row.Curator},
			annotationSourceID:   {row.SourceID},
			annotationConfidence: {confidenceMedium},
		},
	}

	subject := rewriteActBP(row.Subject)
	object := rewriteActBP(row.Object)
	statement := subject + " " + row.Predicate + " " + object

	if _, err := t.parser.Parse(statement, ctx); err != nil {
		t.log.Debug("statement rejected",
			slog.String("path", path),
			slog.Int("line", row.Line),
			slog.String("error", err.Error()),
		)
		return Outcome{
			Kind:    Failed,
			Failure: GrammarRejection,
			Reason:  statement,
			Line:    row.Line,
			Path:    path,
		}
	}

	return Outcome{Kind: Parsed}
}

// rewriteActBP fixes the deprecated act(bp(...)) form by dropping the
// inner bp( wrapper while keeping the outer activity. Textual rewrite
// only; the result is validated by the parser like any other term.
func rewriteActBP(expr string) string {
	if strings.HasPrefix(expr, actBPPrefix) && strings.HasSuffix(expr, ")") {
		return "act(" + expr[len(actBPPrefix):len(expr)-1]
	}
	return expr
}
