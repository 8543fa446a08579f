package scanner

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/cfgparse"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

var ifExprTerminals = strings.Split("( ) i f + - * p r n t a b c d 0 1 2 3", " ")

var inputStrings = []string{
	"a",
	"(if(-1a)(print1))",
	"()if+-*printabcd0123",
	" ( + ( + a ) ( - 0 ) ) ",
	"",
}

var tokenCounts = []int{1, 17, 20, 11, 0}

func TestTokenizeSingleCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.scanner")
	defer teardown()
	//
	tz, err := NewTokenizer(ifExprTerminals)
	if err != nil {
		t.Fatal(err)
	}
	for i, input := range inputStrings {
		tokens, err := tz.Tokenize(input)
		if err != nil {
			t.Errorf("input #%d: unexpected error %v", i, err)
			continue
		}
		if len(tokens) != tokenCounts[i] {
			t.Errorf("Expected token count for #%d to be %d, is %d", i, tokenCounts[i], len(tokens))
		}
		if joined := strings.Join(Lexemes(tokens), ""); joined != StripWhitespace(input) {
			t.Errorf("input #%d: tokens %q do not re-assemble the input", i, joined)
		}
	}
}

func TestTokenizeInvalidSymbol(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.scanner")
	defer teardown()
	//
	tz, err := NewTokenizer(ifExprTerminals)
	if err != nil {
		t.Fatal(err)
	}
	_, err = tz.Tokenize("if(9)(print(1+2))")
	if err == nil {
		t.Fatalf("expected invalid symbol error")
	}
	if !errors.Is(err, cfgparse.ErrInvalidSymbol) {
		t.Errorf("expected error to be ErrInvalidSymbol, is %v", err)
	}
	var ise *cfgparse.InvalidSymbolError
	if !errors.As(err, &ise) || ise.Symbol != "9" || ise.Pos != 3 {
		t.Errorf("expected symbol '9' at position 3, got %v", err)
	}
}

func TestTokenizeMultiCharacterTerminals(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.scanner")
	defer teardown()
	//
	tz, err := NewTokenizer([]string{"print", "p", "if", "(", ")", "d"})
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := tz.Tokenize("( pr int d ) (p)")
	if err != nil {
		t.Fatal(err)
	}
	expected := []string{"(", "print", "d", ")", "(", "p", ")"}
	lexemes := Lexemes(tokens)
	if strings.Join(lexemes, " ") != strings.Join(expected, " ") {
		t.Errorf("expected %v, got %v", expected, lexemes)
	}
	if tokens[1].Span != (cfgparse.Span{1, 6}) {
		t.Errorf("expected 'print' to span (1…6), is %v", tokens[1].Span)
	}
}

func TestTokenizeEmptyAlphabet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.scanner")
	defer teardown()
	//
	tz, err := NewTokenizer(nil)
	if err != nil {
		t.Fatal(err)
	}
	if tokens, err := tz.Tokenize(" \n"); err != nil || len(tokens) != 0 {
		t.Errorf("expected empty input to pass, got %v / %v", tokens, err)
	}
	if err := tz.Validate("x"); !errors.Is(err, cfgparse.ErrInvalidSymbol) {
		t.Errorf("expected invalid symbol for empty alphabet, got %v", err)
	}
}

func TestLiteralPattern(t *testing.T) {
	if p := literalPattern("d"); p != "d" {
		t.Errorf("letters must not be escaped, got %q", p)
	}
	if p := literalPattern("(*"); p != `\(\*` {
		t.Errorf("expected punctuation to be escaped, got %q", p)
	}
}

func TestTokenizeLongestMatchWithoutBacktracking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "cfgparse.scanner")
	defer teardown()
	//
	tz, err := NewTokenizer([]string{"a", "ab", "bc"})
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := tz.Tokenize("abc")
	var symErr *cfgparse.InvalidSymbolError
	if !errors.As(err, &symErr) {
		t.Fatalf("expected invalid symbol after longest match 'ab', got %v / %v", tokens, err)
	}
	if symErr.Symbol != "c" || symErr.Pos != 2 {
		t.Errorf("expected invalid symbol \"c\" at 2, got %q at %d", symErr.Symbol, symErr.Pos)
	}
	// white space is stripped before scanning, it cannot separate terminals
	if _, err = tz.Tokenize("a bc"); !errors.Is(err, cfgparse.ErrInvalidSymbol) {
		t.Errorf("expected 'a bc' to fail like 'abc', got %v", err)
	}
	tokens, err = tz.Tokenize("abbca")
	if err != nil {
		t.Fatal(err)
	}
	if lx := Lexemes(tokens); strings.Join(lx, " ") != "ab bc a" {
		t.Errorf("expected tokens [ab bc a], got %v", lx)
	}
}
