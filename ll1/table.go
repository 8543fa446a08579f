package ll1

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/cfgparse"
	"github.com/npillmayer/cfgparse/scanner"
	"github.com/npillmayer/cfgparse/sparse"
	"github.com/pkg/errors"
)

// SymbolKind tells how the parser treats a grammar symbol.
type SymbolKind int8

// Kinds of grammar symbols, as seen by a parse table.
const (
	Unknown SymbolKind = iota
	Nonterminal
	Terminal
	EndMarker
)

func (k SymbolKind) String() string {
	switch k {
	case Nonterminal:
		return "Nonterminal"
	case Terminal:
		return "Terminal"
	case EndMarker:
		return "EndMarker"
	}
	return "Unknown"
}

// Table is a compiled LL(1) parse table. It maps pairs of (non-terminal, terminal)
// to production bodies. Rows are indexed by non-terminals, columns by terminals
// plus the end marker. Cells hold an index into the list of bodies.
//
// A Table is immutable and may be shared by any number of parsers.
type Table struct {
	start         string
	end           string
	invalidSymbol string
	rows          []string       // non-terminals, sorted
	cols          []string       // terminals, sorted, end marker last
	rowIndex      map[string]int // non-terminal -> row
	colIndex      map[string]int // terminal or end marker -> column
	bodies        [][]string
	matrix        *sparse.IntMatrix
	tokenizer     *scanner.Tokenizer
}

// Start returns the start symbol.
func (t *Table) Start() string {
	return t.start
}

// End returns the end marker.
func (t *Table) End() string {
	return t.end
}

// InvalidSymbol returns the text to report for inputs containing characters
// outside of the terminal alphabet.
func (t *Table) InvalidSymbol() string {
	return t.invalidSymbol
}

// Terminals returns the terminal alphabet, sorted. The end marker is not part of it.
func (t *Table) Terminals() []string {
	return append([]string(nil), t.cols[:len(t.cols)-1]...)
}

// Nonterminals returns the non-terminals of the table, sorted.
func (t *Table) Nonterminals() []string {
	return append([]string(nil), t.rows...)
}

// Tokenizer returns a tokenizer for the terminal alphabet of t.
func (t *Table) Tokenizer() *scanner.Tokenizer {
	return t.tokenizer
}

// Kind classifies a symbol. Non-terminals are checked first.
func (t *Table) Kind(sym string) SymbolKind {
	if _, ok := t.rowIndex[sym]; ok {
		return Nonterminal
	}
	if sym == t.end {
		return EndMarker
	}
	if _, ok := t.colIndex[sym]; ok {
		return Terminal
	}
	return Unknown
}

// Entry returns the production body for non-terminal A and lookahead a.
// An epsilon-production yields an empty, non-nil body. If the table has no
// entry for (A, a), an error wrapping cfgparse.ErrNoTableEntry is returned.
func (t *Table) Entry(A, a string) ([]string, error) {
	i, ok := t.rowIndex[A]
	if !ok {
		return nil, errors.Wrapf(cfgparse.ErrNoTableEntry, "%q is not a non-terminal", A)
	}
	j, ok := t.colIndex[a]
	if !ok {
		return nil, errors.Wrapf(cfgparse.ErrNoTableEntry, "%q is not a terminal", a)
	}
	b := t.matrix.Value(i, j)
	if b == t.matrix.NullValue() {
		return nil, errors.Wrapf(cfgparse.ErrNoTableEntry, "no entry for (%s, %s)", A, a)
	}
	return t.bodies[b], nil
}

// EntryCount returns the number of non-empty cells of the table.
func (t *Table) EntryCount() int {
	return t.matrix.ValueCount()
}

func (t *Table) String() string {
	return fmt.Sprintf("LL(1) table[%s, %d×%d, %d entries]", t.start, len(t.rows),
		len(t.cols), t.matrix.ValueCount())
}

// --- Compiling a configuration ---------------------------------------------

// Compile checks a configuration and creates an immutable parse table from it.
//
// The start symbol has to be one of the non-terminals (keys of c.Table), the end
// marker must not be a terminal, non-terminals and terminals have to be
// disjoint, and every symbol of every body has to be known.
func (c *Config) Compile() (*Table, error) {
	if len(c.Table) == 0 {
		return nil, errors.New("LL(1) configuration has no table entries")
	}
	t := &Table{
		start:         c.Start,
		end:           c.End,
		invalidSymbol: c.InvalidSymbol,
		rowIndex:      make(map[string]int, len(c.Table)),
		colIndex:      make(map[string]int, len(c.Terminals)+1),
	}
	if t.end == "" {
		t.end = DefaultEndMarker
	}
	if t.invalidSymbol == "" {
		t.invalidSymbol = cfgparse.ErrorInvalidSymbol
	}
	nonterms := treeset.NewWithStringComparator()
	for A := range c.Table {
		nonterms.Add(A)
	}
	for _, A := range nonterms.Values() {
		t.rowIndex[A.(string)] = len(t.rows)
		t.rows = append(t.rows, A.(string))
	}
	if _, ok := t.rowIndex[t.start]; !ok {
		return nil, errors.Errorf("start symbol %q is not a non-terminal of the table", t.start)
	}
	terms := treeset.NewWithStringComparator()
	for _, a := range c.Terminals {
		switch {
		case a == "" || strings.IndexFunc(a, unicode.IsSpace) >= 0:
			return nil, errors.Errorf("illegal terminal %q", a)
		case a == t.end:
			return nil, errors.Errorf("end marker %q must not be a terminal", a)
		case nonterms.Contains(a):
			return nil, errors.Errorf("symbol %q is both terminal and non-terminal", a)
		}
		terms.Add(a)
	}
	if nonterms.Contains(t.end) {
		return nil, errors.Errorf("end marker %q must not be a non-terminal", t.end)
	}
	for _, a := range terms.Values() {
		t.colIndex[a.(string)] = len(t.cols)
		t.cols = append(t.cols, a.(string))
	}
	t.colIndex[t.end] = len(t.cols)
	t.cols = append(t.cols, t.end)
	//
	known := make([]string, 0, len(t.rows)+len(t.cols)-1)
	known = append(known, t.rows...)
	known = append(known, t.cols[:len(t.cols)-1]...)
	sort.SliceStable(known, func(i, j int) bool { // longest first
		return len(known[i]) > len(known[j])
	})
	t.matrix = sparse.NewIntMatrix(len(t.rows), len(t.cols), sparse.DefaultNullValue)
	bodyIndex := make(map[string]int32)
	for _, A := range t.rows {
		for a, body := range c.Table[A] {
			j, ok := t.colIndex[a]
			if !ok {
				return nil, errors.Errorf("table entry (%s, %s): %q is not a terminal", A, a, a)
			}
			syms, err := splitBody(body, known)
			if err != nil {
				return nil, errors.Wrapf(err, "table entry (%s, %s)", A, a)
			}
			key := strings.Join(syms, " ")
			b, ok := bodyIndex[key]
			if !ok {
				b = int32(len(t.bodies))
				bodyIndex[key] = b
				t.bodies = append(t.bodies, syms)
			}
			if err := t.matrix.Set(t.rowIndex[A], j, b); err != nil {
				return nil, err
			}
		}
	}
	tz, err := scanner.NewTokenizer(t.Terminals())
	if err != nil {
		return nil, errors.Wrap(err, "cannot create tokenizer for LL(1) table")
	}
	t.tokenizer = tz
	tracer().Infof("compiled %v", t)
	return t, nil
}

// splitBody splits a production body into symbols. Bodies containing white space
// are split into fields, all others by longest match over known (which has to
// be sorted by descending length). An empty body is an epsilon-production.
func splitBody(body string, known []string) ([]string, error) {
	syms := []string{}
	if strings.IndexFunc(body, unicode.IsSpace) >= 0 {
		for _, sym := range strings.Fields(body) {
			if !contains(known, sym) {
				return nil, errors.Errorf("unknown symbol %q in body %q", sym, body)
			}
			syms = append(syms, sym)
		}
		return syms, nil
	}
	rest := body
	for rest != "" {
		match := ""
		for _, sym := range known {
			if strings.HasPrefix(rest, sym) {
				match = sym
				break
			}
		}
		if match == "" {
			return nil, errors.Errorf("unknown symbol at %q in body %q", rest, body)
		}
		syms = append(syms, match)
		rest = rest[len(match):]
	}
	return syms, nil
}

func contains(syms []string, sym string) bool {
	for _, s := range syms {
		if s == sym {
			return true
		}
	}
	return false
}
