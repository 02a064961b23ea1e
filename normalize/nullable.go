package normalize

import (
	"fmt"

	"github.com/npillmayer/chomsky"
)

// === Nullable Symbols ======================================================

// Nullables returns the set of non-terminals of g which derive ε.
//
// The set is seeded with every non-terminal having an ε-production. Then, a
// non-terminal with a production consisting of nullable symbols only is
// nullable, too. This is repeated until a pass adds no further symbol.
func Nullables(g *chomsky.Grammar) *chomsky.SymbolSet {
	nullable := chomsky.NewSymbolSet()
	g.EachRule(func(A chomsky.Symbol, p chomsky.Production) {
		if p.IsEpsilon() {
			nullable.Add(A)
		}
	})
	for pass := 1; ; pass++ {
		more := false
		g.EachRule(func(A chomsky.Symbol, p chomsky.Production) {
			if nullable.Contains(A) {
				return
			}
			if nullable.ContainsAll(p.Symbols()...) {
				more = nullable.Add(A) || more
			}
		})
		tracer().Debugf("nullables, pass %d: %v", pass, nullable)
		if !more {
			break
		}
	}
	return nullable
}

// RemoveNullProductions returns a grammar without ε-productions, generating
// the same language as g. For every production, each variant which results
// from dropping any subset of its nullable symbols is added.
//
// If the start symbol of g is nullable, it keeps an ε-production. No other
// non-terminal has an ε-production in the resulting grammar.
func RemoveNullProductions(g *chomsky.Grammar) (*chomsky.Grammar, error) {
	nullable := Nullables(g)
	start := g.Start()
	rules := make(chomsky.ProductionMap)
	g.EachRule(func(A chomsky.Symbol, p chomsky.Production) {
		if p.IsEpsilon() {
			return
		}
		for _, q := range dropNullables(p, nullable) {
			if !q.IsEpsilon() {
				rules.Add(A, q)
			}
		}
	})
	if nullable.Contains(start) {
		rules.Add(start, chomsky.Epsilon)
	}
	return derive("null-productions", g.NonTerminals(), g.Terminals(), rules, start)
}

// dropNullables enumerates every variant of p obtained by independently
// dropping nullable symbols, keeping the order of the remaining symbols.
// Variants are built position by position: each nullable symbol doubles
// the set of partial variants. Variants may repeat; grammar construction
// collapses them.
func dropNullables(p chomsky.Production, nullable *chomsky.SymbolSet) []chomsky.Production {
	partials := [][]chomsky.Symbol{{}}
	for _, s := range p.Symbols() {
		n := len(partials)
		for i := 0; i < n; i++ {
			with := append(partials[i][:len(partials[i]):len(partials[i])], s)
			if nullable.Contains(s) {
				partials = append(partials, with) // keep variant without s at i
			} else {
				partials[i] = with
			}
		}
	}
	variants := make([]chomsky.Production, len(partials))
	for i, syms := range partials {
		variants[i] = chomsky.Prod(syms...)
	}
	return variants
}

// derive constructs the grammar resulting from a stage. Construction errors
// indicate a defect of the stage.
func derive(stage string, nonterminals, terminals *chomsky.SymbolSet,
	rules chomsky.ProductionMap, start chomsky.Symbol) (*chomsky.Grammar, error) {
	//
	g, err := chomsky.NewGrammar(nonterminals, terminals, rules, start)
	if err != nil {
		tracer().Errorf("stage %s produced an invalid grammar: %v", stage, err)
		return nil, fmt.Errorf("stage %s: %w", stage, err)
	}
	n, t, r := g.Size()
	tracer().Infof("%s: %d non-terminals, %d terminals, %d rules", stage, n, t, r)
	return g, nil
}
