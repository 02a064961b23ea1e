package normalize

import (
	"sort"
	"testing"

	"github.com/npillmayer/chomsky"
	"github.com/stretchr/testify/require"
)

// makeGrammar builds the example grammar
//
//     S  →  A  | b A   | a B
//     A  →  B  | A S   | b B A B | b
//     B  →  b  | b S   | a D     | ε
//     C  →  B a
//     D  →  A A
//
func makeGrammar(t *testing.T) *chomsky.Grammar {
	b := chomsky.NewGrammarBuilder()
	b.LHS("S").N("A").End()
	b.LHS("S").T("b").N("A").End()
	b.LHS("S").T("a").N("B").End()
	b.LHS("A").N("B").End()
	b.LHS("A").N("A").N("S").End()
	b.LHS("A").T("b").N("B").N("A").N("B").End()
	b.LHS("A").T("b").End()
	b.LHS("B").T("b").End()
	b.LHS("B").T("b").N("S").End()
	b.LHS("B").T("a").N("D").End()
	b.LHS("B").Epsilon()
	b.LHS("C").N("B").T("a").End()
	b.LHS("D").N("A").N("A").End()
	g, err := b.Grammar()
	require.NoError(t, err)
	return g
}

// makeExprGrammar builds an ε-free expression grammar with unit productions.
//
//     E  →  E + T  | T
//     T  →  T * F  | F
//     F  →  ( E )  | id
//
func makeExprGrammar(t *testing.T) *chomsky.Grammar {
	b := chomsky.NewGrammarBuilder()
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").N("T").T("*").N("F").End()
	b.LHS("T").N("F").End()
	b.LHS("F").T("(").N("E").T(")").End()
	b.LHS("F").T("id").End()
	g, err := b.Grammar()
	require.NoError(t, err)
	return g
}

// languages computes, for every non-terminal of g, the set of terminal
// strings of length ≤ k it derives. Words are terminal names separated by
// blanks, mapped to their length. This is a fixpoint over the rules, which
// terminates because the number of words of bounded length is finite.
func languages(g *chomsky.Grammar, k int) map[chomsky.Symbol]map[string]int {
	L := make(map[chomsky.Symbol]map[string]int)
	for _, A := range g.NonTerminals().Values() {
		L[A] = make(map[string]int)
	}
	for {
		more := false
		g.EachRule(func(A chomsky.Symbol, p chomsky.Production) {
			words := map[string]int{"": 0}
			for _, s := range p.Symbols() {
				sw := L[s]
				if s.IsTerminal() {
					sw = map[string]int{s.Name: 1}
				}
				next := make(map[string]int)
				for u, m := range words {
					for v, n := range sw {
						if m+n <= k {
							next[concat(u, v)] = m + n
						}
					}
				}
				words = next
			}
			for w, n := range words {
				if _, ok := L[A][w]; !ok {
					L[A][w] = n
					more = true
				}
			}
		})
		if !more {
			break
		}
	}
	return L
}

func concat(u, v string) string {
	if u == "" {
		return v
	}
	if v == "" {
		return u
	}
	return u + " " + v
}

// words returns the sorted words of a language, optionally without ε.
func words(lang map[string]int, withEpsilon bool) []string {
	ws := make([]string, 0, len(lang))
	for w := range lang {
		if w == "" && !withEpsilon {
			continue
		}
		ws = append(ws, w)
	}
	sort.Strings(ws)
	return ws
}

// ruleShapes checks the productions of g for CNF shapes, without relying
// on IsCNF.
func ruleShapes(t *testing.T, g *chomsky.Grammar) {
	g.EachRule(func(A chomsky.Symbol, p chomsky.Production) {
		switch p.Len() {
		case 0:
			require.Equal(t, g.Start(), A, "ε-production for non-start symbol %s", A)
		case 1:
			require.True(t, p.At(0).IsTerminal(), "unit production %s -> %s", A, p)
		case 2:
			require.True(t, p.At(0).IsNonTerminal() && p.At(1).IsNonTerminal(),
				"terminal in binary production %s -> %s", A, p)
		default:
			t.Fatalf("production too long: %s -> %s", A, p)
		}
	})
}
