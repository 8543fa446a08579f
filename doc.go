/*
Package cfgparse is a small toolbox for parsing context-free languages.

It implements two classic algorithms side by side: a table-driven LL(1)
predictive parser and a CYK chart parser for grammars in Chomsky Normal Form.
Both decide membership of an input string in a language; the CYK parser is
able to reconstruct a derivation tree for unambiguous grammars. Package
structure is as follows:

■ ll1: Package ll1 implements LL(1) parse tables, their configuration and a
stack-driven predictive parser.

■ cyk: Package cyk implements CNF grammars, a grammar file loader and the
CYK chart parser, including derivation trees.

■ scanner: Package scanner prepares input: it strips white space and splits
the input into terminals of a grammar's alphabet.

■ sparse: Package sparse implements a sparse integer matrix used for parser
tables.

■ grammars: Package grammars holds an example language (if-expressions) as an
LL(1) table and as a CNF grammar.

The base package contains data types and error kinds which are used throughout
all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package cfgparse
