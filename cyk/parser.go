package cyk

import (
	"sync"

	"github.com/npillmayer/cfgparse/scanner"
)

// Result is the outcome of a CYK run.
type Result struct {
	Accepted bool
	Tree     Node   // derivation tree; set by Parse for accepted input
	Chart    *Chart // nil if the input has been rejected before filling the chart
}

// Parser is a CYK parser for a CNF grammar. Every run allocates its own chart,
// a Parser may be used concurrently.
type Parser struct {
	g         *Grammar
	once      sync.Once
	tokenizer *scanner.Tokenizer
	tzerr     error
}

// NewParser creates a parser for a grammar.
func NewParser(g *Grammar) *Parser {
	return &Parser{g: g}
}

// Grammar returns the grammar of p.
func (p *Parser) Grammar() *Grammar {
	return p.g
}

// Recognize decides whether tokens is a sentence of the grammar. Cells of the
// resulting chart hold symbols only.
func (p *Parser) Recognize(tokens []string) *Result {
	return p.run(tokens, false)
}

// Parse decides whether tokens is a sentence of the grammar, and creates a
// derivation tree if it is.
func (p *Parser) Parse(tokens []string) *Result {
	return p.run(tokens, true)
}

// ParseString tokenizes text with the terminals of the grammar and parses the
// tokens. White space is ignored. If text contains characters not covered by
// the terminals, an error wrapping cfgparse.ErrInvalidSymbol is returned.
func (p *Parser) ParseString(text string) (*Result, error) {
	tokens, err := p.tokenize(text)
	if err != nil {
		return nil, err
	}
	return p.Parse(tokens), nil
}

// RecognizeString is like ParseString, but calls Recognize.
func (p *Parser) RecognizeString(text string) (*Result, error) {
	tokens, err := p.tokenize(text)
	if err != nil {
		return nil, err
	}
	return p.Recognize(tokens), nil
}

func (p *Parser) tokenize(text string) ([]string, error) {
	p.once.Do(func() {
		p.tokenizer, p.tzerr = scanner.NewTokenizer(p.g.Terminals())
	})
	if p.tzerr != nil {
		return nil, p.tzerr
	}
	tokens, err := p.tokenizer.Tokenize(text)
	if err != nil {
		return nil, err
	}
	return scanner.Lexemes(tokens), nil
}

func (p *Parser) run(tokens []string, withNodes bool) *Result {
	n := len(tokens)
	if n == 0 {
		tracer().Debugf("empty input rejected")
		return &Result{}
	}
	chart := newChart(n)
	for s, a := range tokens {
		units := p.g.Derives(a)
		if len(units) == 0 {
			tracer().Debugf("no unit production for token %q at %d", a, s)
			return &Result{}
		}
		for _, A := range units {
			if withNodes {
				chart.cell(0, s).add(A, newUnitNode(A, a, s))
			} else {
				chart.cell(0, s).add(A, nil)
			}
		}
	}
	for l := 2; l <= n; l++ { // length of span
		for s := 0; s <= n-l; s++ { // start of span
			target := chart.cell(l-1, s)
			for q := 1; q < l; q++ { // partition of span
				left, right := chart.cell(q-1, s), chart.cell(l-q-1, s+q)
				if left.Size() == 0 || right.Size() == 0 {
					continue
				}
				for _, r := range p.g.binaries {
					if !left.Has(r.RHS[0]) || !right.Has(r.RHS[1]) {
						continue
					}
					var node Node
					if withNodes {
						node = newBinaryNode(r.LHS, left.Node(r.RHS[0]), right.Node(r.RHS[1]))
					}
					if !target.add(r.LHS, node) {
						tracer().Debugf("ambiguous derivation of %s for span (%d…%d) ignored",
							r.LHS, s, s+l)
					}
				}
			}
		}
	}
	root := chart.cell(n-1, 0)
	result := &Result{Chart: chart, Accepted: root.Has(p.g.Start())}
	if result.Accepted && withNodes {
		result.Tree = root.Node(p.g.Start())
	}
	tracer().Debugf("CYK: input of length %d accepted = %v", n, result.Accepted)
	return result
}
