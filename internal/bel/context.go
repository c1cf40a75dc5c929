package bel

// CitationTypePubMed is the citation type for PubMed-referenced evidence.
const CitationTypePubMed = "PubMed"

// Citation identifies the publication a statement was extracted from.
type Citation struct {
	Type      string `json:"type"`
	Reference string `json:"reference"`
}

// Context carries the curation context attached to one parse call:
// citation, evidence text, and the annotation set. It is a plain value
// built fresh per row and passed into Parse, so there is no ambient
// parser state to reset between rows.
type Context struct {
	Citation    Citation            `json:"citation"`
	Evidence    string              `json:"evidence"`
	Annotations map[string][]string `json:"annotations,omitempty"`
}

// Clone returns a deep copy of the context. Graph edges keep their own
// copy so later rows cannot alias an earlier edge's annotations.
func (c Context) Clone() Context {
	out := c
	if c.Annotations != nil {
		out.Annotations = make(map[string][]string, len(c.Annotations))
		for k, vs := range c.Annotations {
			out.Annotations[k] = append([]string(nil), vs...)
		}
	}
	return out
}
