// Package bel implements the subset of the Biological Expression
// Language grammar that appears in curation sheets: namespaced entity
// terms wrapped in abundance/process/activity functions, connected by a
// causal or correlative relation.
package bel

import "strings"

// Entity is a namespaced identifier, e.g. HGNC:MAPT. Namespace may be
// empty for bare or quoted names.
type Entity struct {
	Namespace string `json:"namespace,omitempty"`
	Name      string `json:"name"`
}

// Arg is one argument of a term: either an entity or a nested term.
// Exactly one of the two fields is set.
type Arg struct {
	Entity *Entity `json:"entity,omitempty"`
	Term   *Term   `json:"term,omitempty"`
}

// Term is a BEL function applied to arguments, e.g. p(HGNC:MAPT) or
// act(p(HGNC:GSK3B)). Function is stored in canonical short form.
type Term struct {
	Function string `json:"function"`
	Args     []Arg  `json:"args"`
}

// Statement is one subject-relation-object assertion. Relation is
// stored in canonical long form.
type Statement struct {
	Subject  Term   `json:"subject"`
	Relation string `json:"relation"`
	Object   Term   `json:"object"`
}

// String renders the entity in source form, quoting names that contain
// characters outside the bare identifier set.
func (e Entity) String() string {
	name := e.Name
	if !bareIdent(name) {
		name = `"` + strings.ReplaceAll(name, `"`, `\"`) + `"`
	}
	if e.Namespace == "" {
		return name
	}
	return e.Namespace + ":" + name
}

// String renders the term in canonical source form.
func (t Term) String() string {
	var b strings.Builder
	b.WriteString(t.Function)
	b.WriteByte('(')
	for i, a := range t.Args {
		if i > 0 {
			b.WriteString(", ")
		}
		if a.Term != nil {
			b.WriteString(a.Term.String())
		} else if a.Entity != nil {
			b.WriteString(a.Entity.String())
		}
	}
	b.WriteByte(')')
	return b.String()
}

// String renders the full statement.
func (s Statement) String() string {
	return s.Subject.String() + " " + s.Relation + " " + s.Object.String()
}

func bareIdent(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == '_' || r == '.' || r == '-' || r == '+':
		default:
			return false
		}
	}
	return true
}
