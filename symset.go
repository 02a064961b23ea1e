package chomsky

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// SymbolSet is an ordered set of grammar symbols. Iteration order is
// deterministic: non-terminals first, then terminals, each sorted by name.
//
// The zero value is not usable; create sets with NewSymbolSet.
type SymbolSet struct {
	set *treeset.Set
}

// NewSymbolSet creates a set containing syms.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(SymbolComparator)}
	for _, s := range syms {
		S.set.Add(s)
	}
	return S
}

// Add inserts symbols into S and reports whether at least one of them has
// not been a member before.
func (S *SymbolSet) Add(syms ...Symbol) bool {
	added := false
	for _, s := range syms {
		if !S.set.Contains(s) {
			S.set.Add(s)
			added = true
		}
	}
	return added
}

// Union adds all members of T to S and reports whether S has grown.
func (S *SymbolSet) Union(T *SymbolSet) bool {
	if T == nil {
		return false
	}
	return S.Add(T.Values()...)
}

// Remove deletes symbols from S.
func (S *SymbolSet) Remove(syms ...Symbol) {
	for _, s := range syms {
		S.set.Remove(s)
	}
}

// Contains checks membership of s.
func (S *SymbolSet) Contains(s Symbol) bool {
	if S == nil {
		return false
	}
	return S.set.Contains(s)
}

// ContainsAll is true if every symbol of syms is a member of S.
func (S *SymbolSet) ContainsAll(syms ...Symbol) bool {
	for _, s := range syms {
		if !S.Contains(s) {
			return false
		}
	}
	return true
}

// Size returns the number of members.
func (S *SymbolSet) Size() int {
	if S == nil {
		return 0
	}
	return S.set.Size()
}

// Empty is a predicate.
func (S *SymbolSet) Empty() bool {
	return S.Size() == 0
}

// Values returns the members of S in order.
func (S *SymbolSet) Values() []Symbol {
	if S == nil {
		return nil
	}
	syms := make([]Symbol, 0, S.set.Size())
	it := S.set.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(Symbol))
	}
	return syms
}

// Names returns the names of the members of S in order.
func (S *SymbolSet) Names() []string {
	syms := S.Values()
	names := make([]string, len(syms))
	for i, s := range syms {
		names[i] = s.Name
	}
	return names
}

// Each calls f for every member of S, in order.
func (S *SymbolSet) Each(f func(Symbol)) {
	for _, s := range S.Values() {
		f(s)
	}
}

// Copy returns a shallow copy of S.
func (S *SymbolSet) Copy() *SymbolSet {
	return NewSymbolSet(S.Values()...)
}

// Equals checks if S and T have the same members.
func (S *SymbolSet) Equals(T *SymbolSet) bool {
	if S.Size() != T.Size() {
		return false
	}
	return T.ContainsAll(S.Values()...)
}

func (S *SymbolSet) String() string {
	return "{" + strings.Join(S.Names(), ", ") + "}"
}
