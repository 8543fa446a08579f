package scanner

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/cfgparse"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// terminalType is the lexmachine token type for every terminal. We do not
// need to distinguish terminals by type, their lexeme is their identity.
const terminalType = 1

// Tokenizer splits input into terminals of an alphabet. It is backed by a
// lexmachine DFA, compiled once by NewTokenizer. A Tokenizer is read-only after
// construction and may be shared between goroutines.
type Tokenizer struct {
	lexer     *lexmachine.Lexer // nil for an empty alphabet
	terminals []string
}

// NewTokenizer creates a tokenizer for a terminal alphabet. Terminals must be
// non-empty and must not contain white space.
//
// The tokenizer always takes the longest terminal matching at the current
// position and never backtracks. For alphabets with multi-character terminals
// this may reject input which does have a valid split: with terminals
// {a, ab, bc}, "abc" is scanned as "ab" followed by the invalid symbol "c",
// not as "a" "bc". Alphabets of single characters are not affected.
//
// NewTokenizer will return an error if compiling the DFA failed.
func NewTokenizer(terminals []string) (*Tokenizer, error) {
	tz := &Tokenizer{terminals: uniqueTerminals(terminals)}
	if len(tz.terminals) == 0 {
		return tz, nil
	}
	tz.lexer = lexmachine.NewLexer()
	for _, lit := range tz.terminals {
		tz.lexer.Add([]byte(literalPattern(lit)), makeToken)
	}
	if err := tz.lexer.Compile(); err != nil {
		tracer().Errorf("error compiling DFA: %v", err)
		return nil, err
	}
	tracer().Debugf("tokenizer compiled for alphabet %v", tz.terminals)
	return tz, nil
}

// Terminals returns the alphabet of the tokenizer, sorted.
func (tz *Tokenizer) Terminals() []string {
	return append([]string(nil), tz.terminals...)
}

// Tokenize strips white space from text and splits the remainder into
// terminals. If a position of the stripped text cannot be matched by any
// terminal, an *cfgparse.InvalidSymbolError is returned.
func (tz *Tokenizer) Tokenize(text string) ([]cfgparse.Token, error) {
	text = StripWhitespace(text)
	tokens := make([]cfgparse.Token, 0, len(text))
	if text == "" {
		return tokens, nil
	}
	if tz.lexer == nil {
		return nil, invalidSymbolAt(text, 0)
	}
	s, err := tz.lexer.Scanner([]byte(text))
	if err != nil {
		return nil, err
	}
	pos := 0
	for tok, err, eof := s.Next(); !eof; tok, err, eof = s.Next() {
		if err != nil {
			if _, is := err.(*machines.UnconsumedInput); is {
				return nil, invalidSymbolAt(text, pos)
			}
			return nil, err
		}
		token := tok.(cfgparse.Token)
		tracer().Debugf("token %v", token)
		tokens = append(tokens, token)
		pos = int(token.Span.To())
	}
	return tokens, nil
}

// Validate checks that text consists of terminals only.
func (tz *Tokenizer) Validate(text string) error {
	_, err := tz.Tokenize(text)
	return err
}

// ---------------------------------------------------------------------------

// makeToken is a lexmachine action which wraps a scanned match into a token.
func makeToken(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	return cfgparse.Token{
		Lexeme: string(m.Bytes),
		Span:   cfgparse.Span{uint64(m.TC), uint64(m.TC + len(m.Bytes))},
	}, nil
}

func invalidSymbolAt(text string, pos int) error {
	r, _ := utf8.DecodeRuneInString(text[pos:])
	tracer().Infof("invalid symbol %q at position %d", r, pos)
	return &cfgparse.InvalidSymbolError{Symbol: string(r), Pos: pos}
}

// literalPattern creates a lexmachine pattern matching lit literally.
// ASCII letters and digits must not be escaped, as lexmachine reads e.g. "\d"
// as a character class.
func literalPattern(lit string) string {
	var b strings.Builder
	for i := 0; i < len(lit); i++ {
		c := lit[i]
		if c < utf8.RuneSelf && !isAlnum(c) {
			b.WriteByte('\\')
		}
		b.WriteByte(c)
	}
	return b.String()
}

func isAlnum(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}

func uniqueTerminals(terminals []string) []string {
	seen := make(map[string]bool, len(terminals))
	r := make([]string, 0, len(terminals))
	for _, t := range terminals {
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		r = append(r, t)
	}
	sort.Strings(r)
	return r
}
