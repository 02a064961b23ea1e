package chomsky

import (
	"fmt"

	"github.com/cnf/structhash"
)

// grammarDigest is the canonical, order-stable content of a grammar.
// Symbols are kept as structured values, never joined into strings.
type grammarDigest struct {
	Start        string
	NonTerminals []string
	Terminals    []string
	Rules        []ruleDigest
}

type ruleDigest struct {
	LHS string
	RHS []symbolDigest
}

type symbolDigest struct {
	Name     string
	Terminal bool
}

// Fingerprint returns a content hash of g. Two grammars have identical
// fingerprints if and only if they have the same start symbol, the same
// symbol sets and the same rules, regardless of construction order
// (barring hash collisions).
func (g *Grammar) Fingerprint() string {
	d := grammarDigest{
		Start:        g.start.Name,
		NonTerminals: g.nonterminals.Names(),
		Terminals:    g.terminals.Names(),
	}
	g.EachRule(func(A Symbol, p Production) {
		r := ruleDigest{LHS: A.Name, RHS: make([]symbolDigest, p.Len())}
		for i, s := range p.rhs {
			r.RHS[i] = symbolDigest{Name: s.Name, Terminal: s.IsTerminal()}
		}
		d.Rules = append(d.Rules, r)
	})
	return fmt.Sprintf("%x", structhash.Sha1(d, 1))
}
