package bel

import (
	"fmt"
	"strings"
)

// termFunctions maps every accepted function spelling to its canonical
// short form. Covers BEL 1.0 spellings since the curation sheets carry
// INDRA output in that flavour.
var termFunctions = map[string]string{
	"a": "a", "abundance": "a",
	"p": "p", "proteinAbundance": "p",
	"g": "g", "geneAbundance": "g",
	"r": "r", "rnaAbundance": "r",
	"m": "m", "microRNAAbundance": "m",
	"complex": "complex", "complexAbundance": "complex",
	"composite": "composite", "compositeAbundance": "composite",
	"act": "act", "activity": "act",
	"bp": "bp", "biologicalProcess": "bp",
	"path": "path", "pathology": "path",
	"deg": "deg", "degradation": "deg",
	"tloc": "tloc", "translocation": "tloc",
	"sec": "sec", "cellSecretion": "sec",
	"surf": "surf", "cellSurfaceExpression": "surf",
	"frag": "frag", "fragment": "frag",
	"fus": "fus", "fusion": "fus",
	"pmod": "pmod", "proteinModification": "pmod",
	"var": "var", "variant": "var",
	"loc": "loc", "location": "loc",
	"ma": "ma", "molecularActivity": "ma",
	"kin": "kin", "kinaseActivity": "kin",
	"cat": "cat", "catalyticActivity": "cat",
	"phos": "phos", "phosphataseActivity": "phos",
	"tscript": "tscript", "transcriptionalActivity": "tscript",
	"gtp": "gtp", "gtpBoundActivity": "gtp",
	"chap": "chap", "chaperoneActivity": "chap",
	"pep": "pep", "peptidaseActivity": "pep",
	"ribo": "ribo", "ribosylationActivity": "ribo",
	"tport": "tport", "transportActivity": "tport",
}

// relations maps every accepted relation spelling (long form or
// operator) to its canonical long form.
var relations = map[string]string{
	"increases": "increases", "->": "increases",
	"directlyIncreases": "directlyIncreases", "=>": "directlyIncreases",
	"decreases": "decreases", "-|": "decreases",
	"directlyDecreases": "directlyDecreases", "=|": "directlyDecreases",
	"association": "association", "--": "association",
	"regulates": "regulates", "reg": "regulates",
	"positiveCorrelation": "positiveCorrelation",
	"negativeCorrelation": "negativeCorrelation",
	"causesNoChange":      "causesNoChange",
	"isA":                 "isA",
	"hasComponent":        "hasComponent",
	"hasMember":           "hasMember",
	"biomarkerFor":        "biomarkerFor",
	"prognosticBiomarkerFor": "prognosticBiomarkerFor",
	"rateLimitingStepOf":  "rateLimitingStepOf",
	"subProcessOf":        "subProcessOf",
	"transcribedTo":       "transcribedTo",
	"translatedTo":        "translatedTo",
}

// Sink receives successfully parsed statements together with their
// curation context. graph.Graph implements it.
type Sink interface {
	AddStatement(Statement, Context)
}

// Parser parses statements and forwards successes to a sink.
type Parser struct {
	sink Sink
}

// NewParser returns a parser bound to sink. A nil sink is allowed; the
// parser then only validates.
func NewParser(sink Sink) *Parser {
	return &Parser{sink: sink}
}

// Parse parses one statement and, on success, adds it to the sink with
// the given context.
func (p *Parser) Parse(input string, ctx Context) (Statement, error) {
	st, err := ParseStatement(input)
	if err != nil {
		return Statement{}, err
	}
	if p.sink != nil {
		p.sink.AddStatement(st, ctx)
	}
	return st, nil
}

// ParseStatement parses "subject relation object" where subject and
// object are terms and relation is a long form or operator.
func ParseStatement(input string) (Statement, error) {
	s := &scanner{input: input}

	s.skipSpaces()
	subject, err := s.parseTerm()
	if err != nil {
		return Statement{}, err
	}

	s.skipSpaces()
	rel := s.readWord()
	if rel == "" {
		return Statement{}, fmt.Errorf("bel: missing relation after subject in %q", input)
	}
	canonical, ok := relations[rel]
	if !ok {
		return Statement{}, fmt.Errorf("bel: unknown relation %q", rel)
	}

	s.skipSpaces()
	object, err := s.parseTerm()
	if err != nil {
		return Statement{}, err
	}

	s.skipSpaces()
	if !s.eof() {
		return Statement{}, fmt.Errorf("bel: trailing input %q", s.rest())
	}

	return Statement{Subject: subject, Relation: canonical, Object: object}, nil
}

// ParseTerm parses a single term, requiring the whole input to be consumed.
func ParseTerm(input string) (Term, error) {
	s := &scanner{input: input}
	s.skipSpaces()
	t, err := s.parseTerm()
	if err != nil {
		return Term{}, err
	}
	s.skipSpaces()
	if !s.eof() {
		return Term{}, fmt.Errorf("bel: trailing input %q", s.rest())
	}
	return t, nil
}

type scanner struct {
	input string
	pos   int
}

func (s *scanner) eof() bool    { return s.pos >= len(s.input) }
func (s *scanner) rest() string { return s.input[s.pos:] }

func (s *scanner) peek() byte {
	if s.eof() {
		return 0
	}
	return s.input[s.pos]
}

func (s *scanner) skipSpaces() {
	for !s.eof() && (s.input[s.pos] == ' ' || s.input[s.pos] == '\t') {
		s.pos++
	}
}

func isIdentByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' || c == '_' || c == '.' || c == '-' || c == '+'
}

// readIdent consumes an identifier (also used for namespace values,
// which may contain digits, dots, dashes).
func (s *scanner) readIdent() string {
	start := s.pos
	for !s.eof() && isIdentByte(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// readWord consumes up to the next whitespace; used for relations,
// which may be operators like -> or =|.
func (s *scanner) readWord() string {
	start := s.pos
	for !s.eof() && s.input[s.pos] != ' ' && s.input[s.pos] != '\t' {
		s.pos++
	}
	return s.input[start:s.pos]
}

// readString consumes a double-quoted string with backslash escapes.
func (s *scanner) readString() (string, error) {
	if s.peek() != '"' {
		return "", fmt.Errorf("bel: expected string at offset %d", s.pos)
	}
	s.pos++
	var b strings.Builder
	for !s.eof() {
		c := s.input[s.pos]
		switch c {
		case '\\':
			if s.pos+1 >= len(s.input) {
				return "", fmt.Errorf("bel: unterminated escape at offset %d", s.pos)
			}
			b.WriteByte(s.input[s.pos+1])
			s.pos += 2
		case '"':
			s.pos++
			return b.String(), nil
		default:
			b.WriteByte(c)
			s.pos++
		}
	}
	return "", fmt.Errorf("bel: unterminated string starting before offset %d", s.pos)
}

// parseTerm parses fn(arg, arg, ...).
func (s *scanner) parseTerm() (Term, error) {
	name := s.readIdent()
	if name == "" {
		return Term{}, fmt.Errorf("bel: expected term function at offset %d", s.pos)
	}
	canonical, ok := termFunctions[name]
	if !ok {
		return Term{}, fmt.Errorf("bel: unknown function %q", name)
	}
	if s.peek() != '(' {
		return Term{}, fmt.Errorf("bel: expected '(' after %q at offset %d", name, s.pos)
	}
	s.pos++

	term := Term{Function: canonical}
	s.skipSpaces()
	if s.peek() == ')' {
		return Term{}, fmt.Errorf("bel: empty argument list for %q", name)
	}

	for {
		arg, err := s.parseArg()
		if err != nil {
			return Term{}, err
		}
		term.Args = append(term.Args, arg)

		s.skipSpaces()
		switch s.peek() {
		case ',':
			s.pos++
			s.skipSpaces()
		case ')':
			s.pos++
			return term, nil
		default:
			return Term{}, fmt.Errorf("bel: expected ',' or ')' at offset %d in %q", s.pos, s.input)
		}
	}
}

// parseArg parses one argument: a nested term, a namespaced entity, a
// quoted name, or a bare name.
func (s *scanner) parseArg() (Arg, error) {
	if s.peek() == '"' {
		name, err := s.readString()
		if err != nil {
			return Arg{}, err
		}
		return Arg{Entity: &Entity{Name: name}}, nil
	}

	start := s.pos
	ident := s.readIdent()
	if ident == "" {
		return Arg{}, fmt.Errorf("bel: expected argument at offset %d", s.pos)
	}

	switch s.peek() {
	case '(':
		// Nested term; rewind and reuse the term parser so the
		// function name is validated.
		s.pos = start
		t, err := s.parseTerm()
		if err != nil {
			return Arg{}, err
		}
		return Arg{Term: &t}, nil
	case ':':
		s.pos++
		if s.peek() == '"' {
			name, err := s.readString()
			if err != nil {
				return Arg{}, err
			}
			return Arg{Entity: &Entity{Namespace: ident, Name: name}}, nil
		}
		name := s.readIdent()
		if name == "" {
			return Arg{}, fmt.Errorf("bel: missing name after namespace %q at offset %d", ident, s.pos)
		}
		return Arg{Entity: &Entity{Namespace: ident, Name: name}}, nil
	default:
		return Arg{Entity: &Entity{Name: ident}}, nil
	}
}
