/*
Package cyk implements a CYK chart parser for grammars in Chomsky Normal Form.

A grammar in CNF has productions of exactly two forms:

    A → B C     (binary production, B and C are non-terminals)
    A → a       (unit production, a is a terminal)

Grammars are read from a plain text format, one left-hand side per line,
alternatives separated by '|':

    L -> E L | LP M | a | b
    LP -> (

The left-hand side of the first rule is the start symbol. Grammars are not
transformed into CNF; rules with other shapes are rejected with an error
wrapping cfgparse.ErrNotInCNF.

The parser fills a triangular chart. Row r of the chart holds the non-terminals
deriving sub-strings of length r+1, the last row covers the whole input.
Recognize only collects symbols; Parse additionally keeps a derivation node for
every symbol of a cell, and returns the derivation tree if the input is
accepted. For ambiguous grammars, the first derivation found for a symbol wins.

    g, err := cyk.LoadGrammarFile("ifexpr.cnf")
    p := cyk.NewParser(g)
    result, err := p.ParseString("(*a)")
    if result.Accepted {
        fmt.Println(cyk.Render(result.Tree))   // [L [LP ( nil] [M ... ]]
    }

Derivation trees may be traversed with a Listener, see Walk.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cyk

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgparse.cyk'.
func tracer() tracing.Trace {
	return tracing.Select("cfgparse.cyk")
}
