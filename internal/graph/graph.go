// Package graph holds the cumulative statement graph assembled from
// curation sheets, together with the per-row warnings collected while
// scanning. Nodes are keyed by canonical term text; edges carry the
// citation, evidence, and annotation context of the row they came from.
package graph

import (
	"belsheets/internal/bel"
)

// Metadata describes the graph as a whole.
type Metadata struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Authors string `json:"authors"`
	Contact string `json:"contact"`
}

// Node is one vertex: a BEL term, keyed by its canonical text.
type Node struct {
	Key      string `json:"key"`
	Function string `json:"function"`
}

// Edge is one statement instance with its curation context.
type Edge struct {
	Subject     string              `json:"subject"`
	Relation    string              `json:"relation"`
	Object      string              `json:"object"`
	Citation    bel.Citation        `json:"citation"`
	Evidence    string              `json:"evidence"`
	Annotations map[string][]string `json:"annotations,omitempty"`
}

// Warning is one row-level translation failure.
type Warning struct {
	Line   int    `json:"line"`
	Path   string `json:"path"`
	Reason string `json:"reason"`
}

// Graph is the graph-with-warnings. It is owned by the single scanning
// routine; nothing writes it concurrently.
type Graph struct {
	Metadata Metadata
	Nodes    map[string]Node
	Edges    []Edge
	Warnings []Warning
}

// New returns an empty graph with the given metadata.
func New(md Metadata) *Graph {
	return &Graph{
		Metadata: md,
		Nodes:    make(map[string]Node),
	}
}

// AddStatement records a parsed statement and its context as two nodes
// and one edge. The context is deep-copied so later rows cannot mutate
// the stored annotations. Implements bel.Sink.
func (g *Graph) AddStatement(st bel.Statement, ctx bel.Context) {
	subject := g.addNode(st.Subject)
	object := g.addNode(st.Object)

	ctx = ctx.Clone()
	g.Edges = append(g.Edges, Edge{
		Subject:     subject,
		Relation:    st.Relation,
		Object:      object,
		Citation:    ctx.Citation,
		Evidence:    ctx.Evidence,
		Annotations: ctx.Annotations,
	})
}

func (g *Graph) addNode(t bel.Term) string {
	key := t.String()
	if _, ok := g.Nodes[key]; !ok {
		g.Nodes[key] = Node{Key: key, Function: t.Function}
	}
	return key
}

// AddWarning records one row-level failure.
func (g *Graph) AddWarning(line int, path, reason string) {
	g.Warnings = append(g.Warnings, Warning{Line: line, Path: path, Reason: reason})
}

var _ bel.Sink = (*Graph)(nil)
