package ll1

import (
	"strings"

	"github.com/npillmayer/cfgparse/scanner"
)

// Parser is a table-driven LL(1) parser. It is created for a compiled table and
// may be used for any number of parse runs. Every run allocates its own stack,
// so a parser may be called from concurrent goroutines, provided the trace
// function is safe for concurrent use.
type Parser struct {
	table *Table
	trace func(Step)
}

// Option configures a parser.
type Option func(p *Parser)

// Trace sets a function which receives every step of a parse run, before the
// step is executed.
func Trace(f func(Step)) Option {
	return func(p *Parser) {
		p.trace = f
	}
}

// NewParser creates an LL(1) parser for a table.
func NewParser(t *Table, opts ...Option) *Parser {
	p := &Parser{table: t}
	for _, option := range opts {
		option(p)
	}
	return p
}

// Table returns the parse table of p.
func (p *Parser) Table() *Table {
	return p.table
}

// Step is a snapshot of a parse run: the input not yet consumed, including the
// end marker, and the stack contents from top to bottom.
type Step struct {
	N         int // step number, starting at 1
	Remaining []string
	Stack     []string
}

// String renders a step as remaining input and stack, each concatenated
// without separators:
//
//    (ifaa)$ (MR$
//
func (s Step) String() string {
	return strings.Join(s.Remaining, "") + " " + strings.Join(s.Stack, "")
}

// Parse decides whether a sequence of terminals is a sentence of the table's
// language. Input tokens are expected to be terminals of the table; Parse will
// not check this (use ParseString for a complete check).
//
// Parse never returns an error: failing lookups and terminal mismatches are
// rejections.
func (p *Parser) Parse(tokens []string) bool {
	t := p.table
	input := make([]string, 0, len(tokens)+1)
	input = append(input, tokens...)
	input = append(input, t.end)
	pos := 0
	st := newStack()
	st.push(t.end)
	st.push(t.start)
	for n := 1; ; n++ {
		top, ok := st.top()
		if !ok {
			return false
		}
		a := input[pos]
		if p.trace != nil {
			p.trace(Step{N: n, Remaining: input[pos:], Stack: st.symbols()})
		}
		tracer().Debugf("%4d: %s %s", n, strings.Join(input[pos:], ""), st)
		switch t.Kind(top) {
		case Nonterminal:
			body, err := t.Entry(top, a)
			if err != nil {
				tracer().Debugf("reject: %v", err)
				return false
			}
			st.pop()
			st.pushBody(body)
		case Terminal:
			if top != a {
				tracer().Debugf("reject: expected %q, have %q", top, a)
				return false
			}
			st.pop()
			pos++
		case EndMarker:
			if a == t.end && pos == len(input)-1 {
				tracer().Debugf("accept after %d steps", n)
				return true
			}
			tracer().Debugf("reject: input remaining at end of derivation")
			return false
		default:
			tracer().Errorf("unknown symbol %q on LL(1) stack", top)
			return false
		}
	}
}

// ParseString tokenizes a text with the terminal alphabet of the table and
// parses the resulting terminals. White space is ignored.
//
// If text contains characters not covered by the alphabet, no parse is
// started and an error wrapping cfgparse.ErrInvalidSymbol is returned.
func (p *Parser) ParseString(text string) (bool, error) {
	tokens, err := p.table.tokenizer.Tokenize(text)
	if err != nil {
		return false, err
	}
	return p.Parse(scanner.Lexemes(tokens)), nil
}
