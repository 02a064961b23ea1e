package normalize

import (
	"golang.org/x/exp/slices"

	"github.com/npillmayer/chomsky"
)

// === Binarization ==========================================================

// Binarize brings the productions of g into binary form, in two steps:
//
// Terminal isolation: every terminal a occurring in a production of length
// two or more gets a proxy non-terminal X → a, which replaces a in all of
// these productions. Productions consisting of a single terminal are left
// untouched.
//
// Length reduction: every production A → B1 B2 … Bn with n > 2 is split into
// A → B1 Y and Y → B2 … Bn, until no production is longer than two symbols.
// Auxiliary symbols Y are memoized by the tail they stand for, so equal tails
// share one auxiliary non-terminal across all rules.
//
// New names are drawn from namer. If namer is nil, a fresh namer for g is used.
//
// If g is free of unit productions and carries ε at its start symbol at most,
// the result is in Chomsky Normal Form.
func Binarize(g *chomsky.Grammar, namer *Namer) (*chomsky.Grammar, error) {
	if namer == nil {
		namer = NewNamer(g)
	}
	b := binarizer{
		namer:        namer,
		nonterminals: g.NonTerminals(),
		rules:        make(chomsky.ProductionMap),
		proxies:      make(map[chomsky.Symbol]chomsky.Symbol),
		tails:        make(map[string]chomsky.Symbol),
	}
	var long []rule
	g.EachRule(func(A chomsky.Symbol, p chomsky.Production) {
		if p.Len() < 2 {
			b.rules.Add(A, p)
			return
		}
		long = append(long, rule{lhs: A, rhs: b.isolateTerminals(p.Symbols())})
	})
	b.reduce(long)
	return derive("binarize", b.nonterminals, g.Terminals(), b.rules, g.Start())
}

type rule struct {
	lhs chomsky.Symbol
	rhs []chomsky.Symbol
}

type binarizer struct {
	namer        *Namer
	nonterminals *chomsky.SymbolSet
	rules        chomsky.ProductionMap
	proxies      map[chomsky.Symbol]chomsky.Symbol // terminal -> proxy
	tails        map[string]chomsky.Symbol         // key of tail -> auxiliary
}

// isolateTerminals replaces every terminal in rhs by its proxy.
func (b *binarizer) isolateTerminals(rhs []chomsky.Symbol) []chomsky.Symbol {
	for i, s := range rhs {
		if s.IsTerminal() {
			rhs[i] = b.proxy(s)
		}
	}
	return rhs
}

func (b *binarizer) proxy(a chomsky.Symbol) chomsky.Symbol {
	if P, ok := b.proxies[a]; ok {
		return P
	}
	P := b.namer.Proxy(a)
	b.proxies[a] = P
	b.nonterminals.Add(P)
	b.rules.Add(P, chomsky.Prod(a))
	return P
}

// reduce splits rules until no right-hand side is longer than two symbols.
// Rules for new auxiliaries are put back onto the worklist.
func (b *binarizer) reduce(worklist []rule) {
	for len(worklist) > 0 {
		r := worklist[0]
		worklist = worklist[1:]
		if len(r.rhs) <= 2 {
			b.rules.Add(r.lhs, chomsky.Prod(r.rhs...))
			continue
		}
		tail := chomsky.Prod(r.rhs[1:]...)
		Y, ok := b.tails[tail.Key()]
		if !ok {
			Y = b.namer.Aux()
			tracer().Debugf("new auxiliary %s -> %s", Y, tail)
			b.tails[tail.Key()] = Y
			b.nonterminals.Add(Y)
			worklist = append(worklist, rule{lhs: Y, rhs: slices.Clone(r.rhs[1:])})
		}
		b.rules.Add(r.lhs, chomsky.Prod(r.rhs[0], Y))
	}
}
