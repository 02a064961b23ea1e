package gramtext

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFile(t *testing.T, name string) *chomsky.Grammar {
	f, err := os.Open("testdata/" + name)
	require.NoError(t, err)
	defer f.Close()
	g, err := Read(name, f)
	require.NoError(t, err)
	return g
}

func TestTokenize(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.gramtext")
	defer teardown()
	//
	toks, err := tokenize("test", "S → a 'b c' | ε ; # comment\n%start S")
	require.NoError(t, err)
	types := make([]tokType, len(toks))
	for i, tok := range toks {
		types[i] = tok.typ
	}
	assert.Equal(t, []tokType{tokIdent, tokArrow, tokIdent, tokQuoted, tokBar, tokEpsilon,
		tokSemicolon, tokNewline, tokStart, tokIdent, tokEOF}, types)
	assert.Equal(t, "b c", toks[3].lexeme)
	assert.Equal(t, 2, toks[9].line)
}

func TestTokenizeError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.gramtext")
	defer teardown()
	//
	_, err := tokenize("bad", "S -> a\nA -> @")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "bad:2:"), err.Error())
}

func TestReadExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.gramtext")
	defer teardown()
	//
	g := readFile(t, "example.grammar")
	assert.Equal(t, "S", g.Start().Name)
	assert.Equal(t, []string{"A", "B", "C", "D", "S"}, g.NonTerminals().Names())
	assert.Equal(t, []string{"a", "b"}, g.Terminals().Names())
	assert.Equal(t, 13, g.RuleCount())
	assert.True(t, g.HasRule(chomsky.NonTerminal("B"), chomsky.Epsilon))
	assert.Equal(t, "A -> A S | B | b | b B A B", g.RuleString(chomsky.NonTerminal("A")))
}

func TestReadInferredSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.gramtext")
	defer teardown()
	//
	g := readFile(t, "expr.grammar")
	assert.Equal(t, "E", g.Start().Name)
	assert.Equal(t, []string{"E", "F", "T"}, g.NonTerminals().Names())
	assert.Equal(t, []string{"(", ")", "*", "+", "id"}, g.Terminals().Names())
	assert.Equal(t, "E -> E + T | T", g.RuleString(chomsky.NonTerminal("E")))
	assert.Equal(t, "F -> ( E ) | id", g.RuleString(chomsky.NonTerminal("F")))
}

func TestParseVariants(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.gramtext")
	defer teardown()
	//
	tests := []struct {
		caption string
		src     string
		rules   []string
	}{
		{"semicolons", "S -> a S; S -> eps", []string{"S -> ε | a S"}},
		{"empty alternative", "S -> | x", []string{"S -> ε | x"}},
		{"%empty", "S -> %empty | x", []string{"S -> ε | x"}},
		{"unicode", "S → x S | ε", []string{"S -> ε | x S"}},
		{"continuation", "S -> A\n\n | x\nA -> y", []string{"S -> A | x", "A -> y"}},
		{"primes", "S -> S' ; S' -> x", []string{"S -> S'", "S' -> x"}},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			g, err := Parse(tt.caption, tt.src)
			require.NoError(t, err)
			for _, r := range tt.rules {
				A := strings.SplitN(r, " ", 2)[0]
				assert.Equal(t, r, g.RuleString(chomsky.NonTerminal(A)))
			}
		})
	}
}

func TestQuotedIsTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.gramtext")
	defer teardown()
	//
	_, err := Parse("overlap", `S -> "S" S | x`)
	assert.True(t, errors.Is(err, chomsky.OverlappingSymbol), "got %v", err)
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.gramtext")
	defer teardown()
	//
	tests := []struct {
		caption string
		src     string
		message string
	}{
		{"no arrow", "S a b", "no arrow:1: expected '->'"},
		{"epsilon with symbols", "S -> x\nA -> ε x", "epsilon with symbols:2: unexpected identifier"},
		{"stray bar", "| x", "stray bar:1: unexpected '|'"},
		{"start without name", "%start\nS -> x", "start without name:1: expected identifier"},
		{"empty", "# nothing\n", "empty: grammar has no rules"},
		{"quoted non-terminal", "%nonterminals 'S'\nS -> x", "must not be quoted"},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			_, err := Parse(tt.caption, tt.src)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestConstructionErrorsCarryLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.gramtext")
	defer teardown()
	//
	f, err := os.Open("testdata/undefined.grammar")
	require.NoError(t, err)
	defer f.Close()
	_, err = Read("undefined.grammar", f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chomsky.UndefinedSymbol))
	var cerr *chomsky.ConstructionError
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, chomsky.Terminal("b"), cerr.Symbol)
	assert.True(t, strings.HasPrefix(err.Error(), "undefined.grammar:4: "), err.Error())
	//
	_, err = Parse("start", "%start X\nS -> x")
	assert.True(t, errors.Is(err, chomsky.InvalidStartSymbol))
	_, err = Parse("key", "%nonterminals S\nS -> x\nA -> y")
	assert.True(t, errors.Is(err, chomsky.UndefinedNonTerminalKey))
}

func TestWriteRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.gramtext")
	defer teardown()
	//
	for _, name := range []string{"example.grammar", "expr.grammar"} {
		g := readFile(t, name)
		text, err := Format(g)
		require.NoError(t, err)
		t.Logf("\n%s", text)
		h, err := Parse("formatted "+name, text)
		require.NoError(t, err)
		assert.Equal(t, g.Fingerprint(), h.Fingerprint(), name)
	}
}

func TestWriteQuoting(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.gramtext")
	defer teardown()
	//
	b := chomsky.NewGrammarBuilder()
	b.LHS("S").T("eps").T("a b").T(`say "hi"`).End()
	b.LHS("S").Epsilon()
	g, err := b.Grammar()
	require.NoError(t, err)
	text, err := Format(g)
	require.NoError(t, err)
	assert.Contains(t, text, `S -> ε | "eps" "a b" 'say "hi"'`)
	h, err := Parse("quoted", text)
	require.NoError(t, err)
	assert.Equal(t, g.Fingerprint(), h.Fingerprint())
	//
	b = chomsky.NewGrammarBuilder()
	b.LHS("S x").T("a").End()
	g, err = b.Grammar()
	require.NoError(t, err)
	_, err = Format(g)
	assert.Error(t, err)
}
