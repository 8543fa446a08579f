package cfgparse

import (
	"errors"
	"fmt"
)

// Verdict strings as printed by command line front ends.
const (
	Accepted           = "ACCEPTED"
	Rejected           = "REJECTED"
	ErrorInvalidSymbol = "ERROR_INVALID_SYMBOL"
)

// --- Tokens ----------------------------------------------------------------

// Token is an input token produced by a scanner. Tokens reflect terminals of a
// grammar; for the grammars we deal with a token is usually a single character,
// but this is not required.
//
//    Lexeme  = "print"    // terminal as it appeared in the (stripped) input
//    Span    = 7…12       // occured from position 7 in the stripped input
//
type Token struct {
	Lexeme string
	Span   Span
}

func (t Token) String() string {
	return fmt.Sprintf("%q%s", t.Lexeme, t.Span)
}

// --- Spans ------------------------------------------------------------

// Span is a small type for capturing a length of input token run. Derivation
// nodes track which input positions their symbol covers. A span denotes a
// start position and the position just behind the end.
type Span [2]uint64 // (x…y)

// From returns the start value of a span.
func (s Span) From() uint64 {
	return s[0]
}

// To returns the end value of a span.
func (s Span) To() uint64 {
	return s[1]
}

// Len returns the length of (x…y)
func (s Span) Len() uint64 {
	return s[1] - s[0]
}

// IsNull returns true for the zero span, which covers no input.
func (s Span) IsNull() bool {
	return s == Span{}
}

// Extend returns the smallest span covering s and other. A null span covers
// nothing and does not contribute.
func (s Span) Extend(other Span) Span {
	if s.IsNull() {
		return other
	} else if other.IsNull() {
		return s
	}
	if other[0] < s[0] {
		s[0] = other[0]
	}
	if other[1] > s[1] {
		s[1] = other[1]
	}
	return s
}

func (s Span) String() string {
	return fmt.Sprintf("(%d…%d)", s[0], s[1])
}

// --- Errors ----------------------------------------------------------------

// Error kinds. Clients should test with errors.Is.
var (
	// ErrInvalidSymbol flags input containing a symbol outside the terminal
	// alphabet of a grammar. It is detected before parsing starts.
	ErrInvalidSymbol = errors.New("invalid symbol")

	// ErrNotInCNF flags a grammar rule which is not in Chomsky Normal Form.
	ErrNotInCNF = errors.New("grammar is not in CNF")

	// ErrNoTableEntry is returned by LL(1) table lookups for empty cells.
	// Parsers turn it into a rejection, it never leaves a parse run.
	ErrNoTableEntry = errors.New("no table entry")
)

// InvalidSymbolError reports the first input symbol not covered by the
// terminal alphabet.
type InvalidSymbolError struct {
	Symbol string // offending symbol, usually a single character
	Pos    int    // byte offset in the whitespace-stripped input
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("%s %q at position %d", ErrInvalidSymbol.Error(), e.Symbol, e.Pos)
}

// Unwrap makes errors.Is(err, ErrInvalidSymbol) work.
func (e *InvalidSymbolError) Unwrap() error {
	return ErrInvalidSymbol
}

// NotInCNFError carries the text of a grammar rule violating CNF.
type NotInCNFError struct {
	Rule string
}

func (e *NotInCNFError) Error() string {
	return fmt.Sprintf("%s (rule %q)", ErrNotInCNF.Error(), e.Rule)
}

func (e *NotInCNFError) Unwrap() error {
	return ErrNotInCNF
}
