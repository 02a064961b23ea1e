package chomsky

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolKinds(t *testing.T) {
	a, A := Terminal("a"), NonTerminal("a")
	assert.True(t, a.IsTerminal())
	assert.False(t, A.IsTerminal())
	assert.NotEqual(t, a, A, "terminal and non-terminal of same name are different symbols")
	assert.Equal(t, -1, SymbolComparator(A, a))
	assert.Equal(t, 0, SymbolComparator(Terminal("x"), Terminal("x")))
}

func TestProduction(t *testing.T) {
	A, B, a := NonTerminal("A"), NonTerminal("B"), Terminal("a")
	syms := []Symbol{A, a}
	p := Prod(syms...)
	syms[0] = B // must not change p
	assert.Equal(t, A, p.At(0))
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, "A a", p.String())
	assert.True(t, Prod().IsEpsilon())
	assert.True(t, Epsilon.Equals(Prod()))
	assert.Equal(t, "ε", Epsilon.String())
	assert.True(t, Prod(A).IsUnit())
	assert.False(t, Prod(a).IsUnit())
	assert.True(t, Prod(a).IsSingleTerminal())
	assert.True(t, p.Contains(a))
	assert.False(t, p.Contains(B))
	assert.NotEqual(t, Prod(Terminal("A")).Key(), Prod(A).Key())
	assert.Equal(t, Prod(A, a).Key(), p.Key())
	assert.Equal(t, -1, ProductionComparator(Epsilon, Prod(A)))
	assert.Equal(t, -1, ProductionComparator(Prod(a), Prod(a, A)))
}

func TestSymbolSet(t *testing.T) {
	S := NewSymbolSet(Terminal("b"), NonTerminal("X"), Terminal("a"))
	assert.Equal(t, []string{"X", "a", "b"}, S.Names())
	assert.True(t, S.Add(NonTerminal("A")))
	assert.False(t, S.Add(NonTerminal("A"), Terminal("a")))
	assert.Equal(t, "{A, X, a, b}", S.String())
	C := S.Copy()
	C.Remove(Terminal("a"))
	assert.True(t, S.Contains(Terminal("a")))
	assert.False(t, C.Contains(Terminal("a")))
	assert.False(t, S.Equals(C))
	assert.True(t, S.Union(NewSymbolSet(Terminal("c"))))
	assert.False(t, S.Union(C))
	assert.True(t, S.ContainsAll(C.Values()...))
	var nilset *SymbolSet
	assert.True(t, nilset.Empty())
	assert.False(t, nilset.Contains(Terminal("a")))
}

func TestProductionKeyWithBlanks(t *testing.T) {
	A, C := NonTerminal("A"), NonTerminal("C")
	AB, BC := NonTerminal("A B"), NonTerminal("B C")
	assert.NotEqual(t, Prod(AB, C).Key(), Prod(A, BC).Key())
	assert.NotEqual(t, Prod(Terminal(`x" t"y`)).Key(), Prod(Terminal("x"), Terminal("y")).Key())
	assert.NotEqual(t, Prod(Terminal("a b")).Key(), Prod(Terminal("a"), Terminal("b")).Key())
}
