package normalize

import (
	"github.com/npillmayer/chomsky"
)

// === Unit Productions ======================================================

// UnitClosure computes, for every non-terminal A of g, the set of
// non-terminals reachable from A by unit productions only. The closure of A
// always contains A itself.
func UnitClosure(g *chomsky.Grammar) map[chomsky.Symbol]*chomsky.SymbolSet {
	closures := make(map[chomsky.Symbol]*chomsky.SymbolSet)
	for _, A := range g.NonTerminals().Values() {
		closure := chomsky.NewSymbolSet(A)
		for {
			more := false
			for _, M := range closure.Values() {
				for _, p := range g.Productions(M) {
					if p.IsUnit() {
						more = closure.Add(p.At(0)) || more
					}
				}
			}
			if !more {
				break
			}
		}
		tracer().Debugf("unit closure(%s) = %v", A, closure)
		closures[A] = closure
	}
	return closures
}

// RemoveUnitProductions returns a grammar without productions of the form
// A → B. A receives every non-unit production of every member of its unit
// closure.
//
// ε-productions are not carried across unit productions, except into the
// start symbol; every non-terminal keeps its own ε-production. For grammars
// without ε-productions this preserves the language of every non-terminal.
// After RemoveNullProductions, which leaves ε at the start symbol only,
// non-terminals other than the start symbol are preserved up to ε.
func RemoveUnitProductions(g *chomsky.Grammar) (*chomsky.Grammar, error) {
	closures := UnitClosure(g)
	start := g.Start()
	rules := make(chomsky.ProductionMap)
	for _, A := range g.NonTerminals().Values() {
		for _, M := range closures[A].Values() {
			for _, p := range g.Productions(M) {
				switch {
				case p.IsUnit():
				case p.IsEpsilon() && M != A && A != start:
				default:
					rules.Add(A, p)
				}
			}
		}
	}
	return derive("unit-productions", g.NonTerminals(), g.Terminals(), rules, start)
}
