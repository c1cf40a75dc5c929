package graph

import "fmt"

// SummaryInfo aggregates graph counts for display.
type SummaryInfo struct {
	Name             string
	Version          string
	Nodes            int
	Edges            int
	Warnings         int
	ErroredDocuments int
}

// Summary computes display counts. ErroredDocuments is the number of
// distinct sheet paths that produced at least one warning.
func (g *Graph) Summary() SummaryInfo {
	docs := make(map[string]struct{})
	for _, w := range g.Warnings {
		docs[w.Path] = struct{}{}
	}
	return SummaryInfo{
		Name:             g.Metadata.Name,
		Version:          g.Metadata.Version,
		Nodes:            len(g.Nodes),
		Edges:            len(g.Edges),
		Warnings:         len(g.Warnings),
		ErroredDocuments: len(docs),
	}
}

// String renders the summary block printed by the CLI.
func (s SummaryInfo) String() string {
	return fmt.Sprintf("%s v%s\nNodes:    %d\nEdges:    %d\nWarnings: %d",
		s.Name, s.Version, s.Nodes, s.Edges, s.Warnings)
}
