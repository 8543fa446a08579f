package cyk

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/cfgparse"
	"github.com/pkg/errors"
)

// LoadGrammar reads a grammar in CNF, one left-hand side per line:
//
//     A -> B C | a
//
// Symbols are separated by white space. Blank lines and lines starting with '#'
// are skipped. The left-hand side of the first rule is the start symbol.
//
// If a rule is not in CNF, an error of type *cfgparse.NotInCNFError is returned
// and no grammar is created.
func LoadGrammar(r io.Reader) (*Grammar, error) {
	var g *Grammar
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "->", 2)
		if len(parts) != 2 {
			return nil, &cfgparse.NotInCNFError{Rule: line}
		}
		lhs := strings.Fields(parts[0])
		if len(lhs) != 1 {
			return nil, &cfgparse.NotInCNFError{Rule: line}
		}
		A := lhs[0]
		if g == nil {
			g = NewGrammar(A)
		}
		for _, alt := range strings.Split(parts[1], "|") {
			switch rhs := strings.Fields(alt); len(rhs) {
			case 1:
				g.AddUnit(A, rhs[0])
			case 2:
				g.AddBinary(A, rhs[0], rhs[1])
			default:
				return nil, &cfgparse.NotInCNFError{Rule: A + " -> " + strings.TrimSpace(alt)}
			}
		}
		tracer().Debugf("grammar line %d: %s", lineno, line)
	}
	if err := lines.Err(); err != nil {
		return nil, errors.Wrap(err, "cannot read grammar")
	}
	if g == nil {
		return nil, errors.New("grammar has no rules")
	}
	tracer().Infof("CNF grammar with start symbol %s and %d rules", g.Start(), g.Size())
	return g, nil
}

// LoadGrammarFile reads a grammar in CNF from a file. See LoadGrammar.
func LoadGrammarFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot open grammar file %s", path)
	}
	defer f.Close()
	g, err := LoadGrammar(f)
	if err != nil {
		return nil, errors.WithMessagef(err, "grammar file %s", path)
	}
	return g, nil
}
