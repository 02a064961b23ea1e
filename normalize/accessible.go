package normalize

import (
	"github.com/npillmayer/chomsky"
)

// === Accessible Symbols ====================================================

// Accessibles returns the set of symbols, terminals and non-terminals,
// reachable from the start symbol of g.
func Accessibles(g *chomsky.Grammar) *chomsky.SymbolSet {
	accessible := chomsky.NewSymbolSet(g.Start())
	worklist := []chomsky.Symbol{g.Start()}
	for len(worklist) > 0 {
		A := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]
		for _, p := range g.Productions(A) {
			for _, s := range p.Symbols() {
				if accessible.Add(s) && s.IsNonTerminal() {
					worklist = append(worklist, s)
				}
			}
		}
	}
	tracer().Debugf("accessibles: %v", accessible)
	return accessible
}

// RemoveInaccessibleSymbols returns a grammar consisting of the symbols of g
// reachable from the start symbol, and their rules.
func RemoveInaccessibleSymbols(g *chomsky.Grammar) (*chomsky.Grammar, error) {
	accessible := Accessibles(g)
	nonterminals, terminals := chomsky.NewSymbolSet(), chomsky.NewSymbolSet()
	accessible.Each(func(s chomsky.Symbol) {
		if s.IsTerminal() {
			terminals.Add(s)
		} else {
			nonterminals.Add(s)
		}
	})
	rules := make(chomsky.ProductionMap)
	g.EachRule(func(A chomsky.Symbol, p chomsky.Production) {
		if accessible.Contains(A) && accessible.ContainsAll(p.Symbols()...) {
			rules.Add(A, p)
		}
	})
	return derive("inaccessible", nonterminals, terminals, rules, g.Start())
}
