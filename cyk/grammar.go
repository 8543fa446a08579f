package cyk

import (
	"fmt"
	"strings"

	"github.com/cnf/structhash"
	"github.com/emirpasic/gods/sets/treeset"
)

// Rule is a production of a CNF grammar. RHS is either a single terminal or a
// pair of non-terminals.
type Rule struct {
	LHS string
	RHS []string
}

// IsUnit returns true for productions A → a.
func (r Rule) IsUnit() bool {
	return len(r.RHS) == 1
}

func (r Rule) String() string {
	return fmt.Sprintf("%s -> %s", r.LHS, strings.Join(r.RHS, " "))
}

// Grammar is a context-free grammar in Chomsky Normal Form.
// After construction it is read-only and may be shared between parsers.
type Grammar struct {
	start     string
	rules     []Rule              // in order of definition
	units     map[string][]string // terminal → deriving non-terminals, in order of definition
	binaries  []Rule
	terminals *treeset.Set
}

// NewGrammar creates an empty grammar with a given start symbol.
func NewGrammar(start string) *Grammar {
	return &Grammar{
		start:     start,
		units:     make(map[string][]string),
		terminals: treeset.NewWithStringComparator(),
	}
}

// AddUnit adds a production A → a.
func (g *Grammar) AddUnit(A, a string) *Grammar {
	g.rules = append(g.rules, Rule{LHS: A, RHS: []string{a}})
	g.units[a] = append(g.units[a], A)
	g.terminals.Add(a)
	return g
}

// AddBinary adds a production A → B C.
func (g *Grammar) AddBinary(A, B, C string) *Grammar {
	r := Rule{LHS: A, RHS: []string{B, C}}
	g.rules = append(g.rules, r)
	g.binaries = append(g.binaries, r)
	return g
}

// Start returns the start symbol.
func (g *Grammar) Start() string {
	return g.start
}

// Rules returns all productions, in order of definition.
func (g *Grammar) Rules() []Rule {
	return append([]Rule(nil), g.rules...)
}

// Size returns the number of productions.
func (g *Grammar) Size() int {
	return len(g.rules)
}

// Terminals returns the terminals of the grammar, sorted. This is the alphabet
// for input strings.
func (g *Grammar) Terminals() []string {
	terms := make([]string, 0, g.terminals.Size())
	for _, a := range g.terminals.Values() {
		terms = append(terms, a.(string))
	}
	return terms
}

// Derives returns the non-terminals A with A → a, in order of definition.
func (g *Grammar) Derives(a string) []string {
	return g.units[a]
}

// Fingerprint returns a hash of the start symbol and the productions of g.
// Equal grammars (same rules in the same order) have equal fingerprints.
func (g *Grammar) Fingerprint() string {
	h, err := structhash.Hash(struct {
		Start string
		Rules []Rule
	}{g.start, g.rules}, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar: %v", err)
		return ""
	}
	return h
}

func (g *Grammar) String() string {
	var b strings.Builder
	for i, r := range g.rules {
		if i > 0 && g.rules[i-1].LHS == r.LHS {
			b.WriteString(" | ")
			b.WriteString(strings.Join(r.RHS, " "))
			continue
		}
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(r.String())
	}
	return b.String()
}
