package chomsky

import (
	"fmt"
	"sort"
	"strings"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
)

// ProductionMap maps non-terminals to their productions. It is the raw
// material for constructing grammars. Duplicate productions collapse and
// their order is irrelevant.
type ProductionMap map[Symbol][]Production

// Add appends productions for non-terminal A.
func (pm ProductionMap) Add(A Symbol, prods ...Production) {
	pm[A] = append(pm[A], prods...)
}

// Grammar is an immutable context-free grammar, consisting of a set of
// non-terminals, a set of terminals, production rules and a start symbol.
//
// Grammars are created either by a GrammarBuilder or by NewGrammar. Both
// validate the grammar's invariants and will not hand out a grammar violating
// one of them.
type Grammar struct {
	start        Symbol
	nonterminals *SymbolSet
	terminals    *SymbolSet
	rules        *treemap.Map // Symbol -> []Production, sorted and without duplicates
}

// NewGrammar constructs a grammar from a candidate set of non-terminals, a
// candidate set of terminals, the production rules and a start symbol.
// Membership in the symbol sets is by name; the sets' members are re-tagged
// with their respective kind.
//
// If any invariant of a grammar is violated, NewGrammar returns a
// *ConstructionError and a nil grammar.
func NewGrammar(nonterminals, terminals *SymbolSet, productions ProductionMap,
	start Symbol) (*Grammar, error) {
	//
	g := &Grammar{
		start:        start,
		nonterminals: NewSymbolSet(),
		terminals:    NewSymbolSet(),
		rules:        treemap.NewWith(SymbolComparator),
	}
	for _, A := range nonterminals.Values() {
		g.nonterminals.Add(NonTerminal(A.Name))
	}
	for _, a := range terminals.Values() {
		g.terminals.Add(Terminal(a.Name))
	}
	if start.IsTerminal() || !g.nonterminals.Contains(start) {
		tracer().Debugf("start symbol %s is not a non-terminal", start)
		return nil, newConstructionError(InvalidStartSymbol, start)
	}
	lhss := make([]Symbol, 0, len(productions))
	for A := range productions {
		lhss = append(lhss, A)
	}
	sort.Slice(lhss, func(i, j int) bool { return compareSymbols(lhss[i], lhss[j]) < 0 })
	for _, A := range lhss {
		if A.IsTerminal() || !g.nonterminals.Contains(A) {
			return nil, newConstructionError(UndefinedNonTerminalKey, A)
		}
	}
	for _, A := range lhss {
		prods := productionList(productions[A])
		for _, p := range prods {
			for _, s := range p.rhs {
				if !g.defines(s) {
					return nil, newRuleError(UndefinedSymbol, s, A, p)
				}
			}
		}
		if len(prods) > 0 {
			g.rules.Put(A, prods)
		}
	}
	for _, A := range g.nonterminals.Values() {
		if g.terminals.Contains(Terminal(A.Name)) {
			return nil, newConstructionError(OverlappingSymbol, Terminal(A.Name))
		}
	}
	return g, nil
}

// productionList sorts productions and removes duplicates.
func productionList(prods []Production) []Production {
	set := treeset.NewWith(ProductionComparator)
	for _, p := range prods {
		set.Add(p)
	}
	list := make([]Production, 0, set.Size())
	for _, p := range set.Values() {
		list = append(list, p.(Production))
	}
	return list
}

func (g *Grammar) defines(s Symbol) bool {
	if s.IsTerminal() {
		return g.terminals.Contains(s)
	}
	return g.nonterminals.Contains(s)
}

// Start returns the start symbol.
func (g *Grammar) Start() Symbol {
	return g.start
}

// NonTerminals returns a copy of the set of non-terminals.
func (g *Grammar) NonTerminals() *SymbolSet {
	return g.nonterminals.Copy()
}

// Terminals returns a copy of the set of terminals.
func (g *Grammar) Terminals() *SymbolSet {
	return g.terminals.Copy()
}

// Lookup finds a symbol by name.
func (g *Grammar) Lookup(name string) (Symbol, bool) {
	if A := NonTerminal(name); g.nonterminals.Contains(A) {
		return A, true
	}
	if a := Terminal(name); g.terminals.Contains(a) {
		return a, true
	}
	return Symbol{}, false
}

// Defines checks if s is a symbol of g, with matching kind.
func (g *Grammar) Defines(s Symbol) bool {
	return g.defines(s)
}

// Productions returns the productions of non-terminal A, in order.
func (g *Grammar) Productions(A Symbol) []Production {
	v, found := g.rules.Get(A)
	if !found {
		return nil
	}
	prods := v.([]Production)
	list := make([]Production, len(prods))
	copy(list, prods)
	return list
}

// HasRule checks if A -> p is a rule of g.
func (g *Grammar) HasRule(A Symbol, p Production) bool {
	v, found := g.rules.Get(A)
	if !found {
		return false
	}
	prods := v.([]Production)
	i := sort.Search(len(prods), func(i int) bool {
		return compareProductions(prods[i], p) >= 0
	})
	return i < len(prods) && prods[i].Equals(p)
}

// EachRule calls f for every rule of g. Rules are visited ordered by
// left-hand side, then by production.
func (g *Grammar) EachRule(f func(A Symbol, p Production)) {
	it := g.rules.Iterator()
	for it.Next() {
		A := it.Key().(Symbol)
		for _, p := range it.Value().([]Production) {
			f(A, p)
		}
	}
}

// Rules returns a copy of the production map of g, suitable as input for
// constructing a derived grammar.
func (g *Grammar) Rules() ProductionMap {
	pm := make(ProductionMap, g.rules.Size())
	g.EachRule(func(A Symbol, p Production) {
		pm[A] = append(pm[A], p)
	})
	return pm
}

// RuleCount returns the number of rules of g.
func (g *Grammar) RuleCount() int {
	n := 0
	it := g.rules.Iterator()
	for it.Next() {
		n += len(it.Value().([]Production))
	}
	return n
}

// Size returns the number of non-terminals, terminals and rules of g.
func (g *Grammar) Size() (nonterminals, terminals, rules int) {
	return g.nonterminals.Size(), g.terminals.Size(), g.RuleCount()
}

// === Display ===============================================================

// String renders g deterministically: start symbol, non-terminals, terminals
// and, for every non-terminal with productions, its productions joined by ' | '.
func (g *Grammar) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Start Symbol: %s\n", g.start)
	fmt.Fprintf(&b, "Non-Terminals: %s\n", g.nonterminals)
	fmt.Fprintf(&b, "Terminals: %s\n", g.terminals)
	b.WriteString("Production Rules:\n")
	for _, A := range g.nonterminals.Values() {
		if line := g.RuleString(A); line != "" {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// RuleString renders all productions of A in a single line. It returns an
// empty string if A has no productions.
func (g *Grammar) RuleString(A Symbol) string {
	prods := g.Productions(A)
	if len(prods) == 0 {
		return ""
	}
	alts := make([]string, len(prods))
	for i, p := range prods {
		alts[i] = p.String()
	}
	return A.Name + " -> " + strings.Join(alts, " | ")
}

// Dump is a debugging helper, tracing every rule of g.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar, start = %s ----------------------", g.start)
	n := 0
	g.EachRule(func(A Symbol, p Production) {
		tracer().Debugf("%3d: %s -> %s", n, A, p)
		n++
	})
	tracer().Debugf("----------------------------------------------")
}
