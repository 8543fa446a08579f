/*
Package ll1 implements a table-driven LL(1) predictive parser.

Building a Table

Parse tables are specified using a configuration object. Clients provide the
table as a nested map from non-terminal to terminal to production body, the
terminal alphabet, the start symbol and the end marker. Bodies are strings of
symbols; an empty body denotes an epsilon-production.

Example:

    c := &ll1.Config{
        Start:     "S",
        End:       "$",
        Terminals: []string{"a", "b"},
        Table: map[string]map[string]string{
            "S": {"a": "aSb", "$": ""},  // S → a S b | ε
        },
    }
    table, err := c.Compile()

Bodies are split into symbols by longest match over all known symbols, so
"aSb" results in [a S b]. If a body contains white space, it is split at white
space instead ("a S b"). Configurations may be loaded from TOML or YAML files
with LoadConfig.

Parsing

A parser drives a single explicit stack, initialized with the end marker and
the start symbol. At every step it either expands the non-terminal on top of
the stack by the table entry for the current input token, or matches a
terminal on top of the stack against the current input token. There is no
backtracking: any failed lookup or match rejects the input.

    p := ll1.NewParser(table, ll1.Trace(func(s ll1.Step) {
        fmt.Println(s)     // remaining input and stack contents before each step
    }))
    accepted, err := p.ParseString("aabb")

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package ll1

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'cfgparse.ll1'.
func tracer() tracing.Trace {
	return tracing.Select("cfgparse.ll1")
}
