package normalize

import (
	"fmt"

	"github.com/npillmayer/chomsky"
)

// IsCNF checks if g is in Chomsky Normal Form, i.e. every production is
// either a pair of non-terminals, a single terminal, or ε for the start
// symbol. If not, IsCNF returns false and an error describing the first
// offending rule.
func IsCNF(g *chomsky.Grammar) (bool, error) {
	var err error
	g.EachRule(func(A chomsky.Symbol, p chomsky.Production) {
		if err != nil {
			return
		}
		switch {
		case p.IsEpsilon():
			if A != g.Start() {
				err = fmt.Errorf("rule %s -> %s: ε-production for non-start symbol", A, p)
			}
		case p.Len() == 1:
			if !p.IsSingleTerminal() {
				err = fmt.Errorf("rule %s -> %s: unit production", A, p)
			}
		case p.Len() == 2:
			if p.At(0).IsTerminal() || p.At(1).IsTerminal() {
				err = fmt.Errorf("rule %s -> %s: terminal in binary production", A, p)
			}
		default:
			err = fmt.Errorf("rule %s -> %s: production longer than 2 symbols", A, p)
		}
	})
	if err != nil {
		tracer().Debugf("grammar is not in CNF: %v", err)
		return false, err
	}
	return true, nil
}
