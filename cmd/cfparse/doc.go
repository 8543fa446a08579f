/*
Command cfparse checks input strings against a context-free grammar.

By default it uses a table-driven LL(1) parser with the built-in parse table
for if-expressions (see package grammars) and prints every step of the parse,
followed by the verdict:

    $ cfparse test1.txt
    (if(-1a)(print1))$ L$
    (if(-1a)(print1))$ ER$
    ...
    $ $
    ACCEPTED

Other parse tables may be loaded with --table (TOML or YAML).
With --cyk GRAMMAR, a CYK parser for a grammar in Chomsky Normal Form is used
instead. It prints the derivation tree of accepted input, or, with --recognise,
the CYK chart. White space in the input file is ignored. If the input contains
symbols not in the terminal alphabet of the grammar, the invalid-symbol text
(ERROR_INVALID_SYMBOL) is printed and no parse is started.

Flag --repl starts an interactive session, checking every line entered.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgparse.cli'
func tracer() tracing.Trace {
	return tracing.Select("cfgparse.cli")
}
