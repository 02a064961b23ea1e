package normalize

import (
	"github.com/npillmayer/chomsky"
)

// === Productive Symbols ====================================================

// Productives returns the set of non-terminals of g which derive a string
// of terminals (possibly the empty string).
func Productives(g *chomsky.Grammar) *chomsky.SymbolSet {
	productive := chomsky.NewSymbolSet()
	for pass := 1; ; pass++ {
		more := false
		g.EachRule(func(A chomsky.Symbol, p chomsky.Production) {
			if productive.Contains(A) {
				return
			}
			if isProductive(p, productive) {
				more = productive.Add(A) || more
			}
		})
		tracer().Debugf("productives, pass %d: %v", pass, productive)
		if !more {
			break
		}
	}
	return productive
}

// isProductive is true if every non-terminal of p is productive.
// Epsilon and all-terminal productions are productive.
func isProductive(p chomsky.Production, productive *chomsky.SymbolSet) bool {
	for _, s := range p.Symbols() {
		if s.IsNonTerminal() && !productive.Contains(s) {
			return false
		}
	}
	return true
}

// RemoveNonProductiveSymbols returns a grammar consisting of the productive
// non-terminals of g and the rules referencing productive non-terminals only.
// Terminals are kept.
//
// The start symbol is always kept. If it is not productive, the resulting
// grammar has no rules and generates the empty language.
func RemoveNonProductiveSymbols(g *chomsky.Grammar) (*chomsky.Grammar, error) {
	productive := Productives(g)
	start := g.Start()
	nonterminals := productive.Copy()
	nonterminals.Add(start)
	if !productive.Contains(start) {
		tracer().Infof("start symbol %s is not productive, language is empty", start)
	}
	rules := make(chomsky.ProductionMap)
	g.EachRule(func(A chomsky.Symbol, p chomsky.Production) {
		if productive.Contains(A) && isProductive(p, productive) {
			rules.Add(A, p)
		}
	})
	return derive("non-productive", nonterminals, g.Terminals(), rules, start)
}
