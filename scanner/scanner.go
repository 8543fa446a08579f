/*
Package scanner prepares raw input for the parsers of this module.

Preparing input is a two-step process: first all white space is stripped from
the raw text, then the remaining characters are split into terminals of a
grammar's alphabet. Any character not covered by the alphabet results in an
error wrapping cfgparse.ErrInvalidSymbol, before a parser ever sees the input.

Splitting is done by a DFA generated with lexmachine, with every terminal of
the alphabet registered as a literal. As lexmachine prefers the longest match,
terminals need not be single characters.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"io"
	"io/ioutil"
	"os"
	"strings"
	"unicode"

	"github.com/npillmayer/cfgparse"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
)

// tracer traces with key 'cfgparse.scanner'.
func tracer() tracing.Trace {
	return tracing.Select("cfgparse.scanner")
}

// StripWhitespace removes all white space characters (spaces, tabs, newlines,
// and every other Unicode space) from s.
func StripWhitespace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// ReadInput reads all of r and returns the text with white space stripped.
func ReadInput(r io.Reader) (string, error) {
	b, err := ioutil.ReadAll(r)
	if err != nil {
		return "", errors.Wrap(err, "cannot read input")
	}
	s := StripWhitespace(string(b))
	tracer().Debugf("input of %d bytes stripped to %d bytes", len(b), len(s))
	return s, nil
}

// ReadFile opens the file at path and reads it using ReadInput.
func ReadFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", errors.Wrapf(err, "cannot open input file %q", path)
	}
	defer f.Close()
	return ReadInput(f)
}

// Lexemes is a helper to convert a token sequence to the plain symbol
// sequence the parsers consume.
func Lexemes(tokens []cfgparse.Token) []string {
	syms := make([]string, len(tokens))
	for i, t := range tokens {
		syms[i] = t.Lexeme
	}
	return syms
}
