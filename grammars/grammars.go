/*
Package grammars holds example grammars.

The if-expression language is a tiny language of prefix expressions:

    (if E E)  (if E E E)  (+ L)  (- L)  (* L)  (print L)

with variables a–d, numbers 0–3 and lists L of expressions. It is available as
an LL(1) parse table (IfExprLL1) and as an equivalent grammar in Chomsky Normal
Form (IfExprCNF).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammars

import (
	_ "embed"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/cfgparse/cyk"
	"github.com/npillmayer/cfgparse/ll1"
)

//go:embed ifexpr.toml
var ifexprTable string

//go:embed ifexpr.cnf
var ifexprGrammar string

// IfExprLL1 returns the configuration of the LL(1) parse table for
// if-expressions.
func IfExprLL1() *ll1.Config {
	c := &ll1.Config{}
	if _, err := toml.Decode(ifexprTable, c); err != nil {
		panic(err) // embedded file is broken
	}
	return c
}

// IfExprTable returns the compiled LL(1) parse table for if-expressions.
func IfExprTable() *ll1.Table {
	t, err := IfExprLL1().Compile()
	if err != nil {
		panic(err)
	}
	return t
}

// IfExprCNF returns the CNF grammar for if-expressions.
func IfExprCNF() *cyk.Grammar {
	g, err := cyk.LoadGrammar(strings.NewReader(ifexprGrammar))
	if err != nil {
		panic(err)
	}
	return g
}

// IfExprCNFSource returns the if-expression grammar in its textual form.
func IfExprCNFSource() string {
	return ifexprGrammar
}
