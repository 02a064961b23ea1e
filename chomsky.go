package chomsky

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.grammar")
}

// --- Symbols ---------------------------------------------------------------

// SymbolKind tells terminals and non-terminals apart.
type SymbolKind int8

// Kinds of grammar symbols. Non-terminals sort before terminals.
const (
	NonTerminalKind SymbolKind = iota
	TerminalKind
)

func (k SymbolKind) String() string {
	if k == TerminalKind {
		return "terminal"
	}
	return "non-terminal"
}

// Symbol is a grammar symbol, either a terminal or a non-terminal.
// Names are opaque identifiers and are unique within their kind.
// Symbols are small values and are comparable, therefore they may be
// used as map keys.
type Symbol struct {
	Name string
	Kind SymbolKind
}

// Terminal creates a terminal symbol.
func Terminal(name string) Symbol {
	return Symbol{Name: name, Kind: TerminalKind}
}

// NonTerminal creates a non-terminal symbol.
func NonTerminal(name string) Symbol {
	return Symbol{Name: name, Kind: NonTerminalKind}
}

// IsTerminal is a predicate.
func (s Symbol) IsTerminal() bool {
	return s.Kind == TerminalKind
}

// IsNonTerminal is a predicate.
func (s Symbol) IsNonTerminal() bool {
	return s.Kind == NonTerminalKind
}

func (s Symbol) String() string {
	return s.Name
}

// compareSymbols orders symbols by kind first, then by name.
func compareSymbols(a, b Symbol) int {
	if a.Kind != b.Kind {
		if a.Kind < b.Kind {
			return -1
		}
		return 1
	}
	return strings.Compare(a.Name, b.Name)
}

// SymbolComparator is a comparator for symbols, suitable for ordered
// containers of github.com/emirpasic/gods.
func SymbolComparator(a, b interface{}) int {
	return compareSymbols(a.(Symbol), b.(Symbol))
}

// --- Productions -----------------------------------------------------------

// Production is the right-hand side of a grammar rule: an ordered sequence
// of symbols. The empty sequence is the distinguished Epsilon production.
//
// Productions are immutable; all accessors return copies.
type Production struct {
	rhs []Symbol
}

// Epsilon is the empty production.
var Epsilon = Production{}

// Prod creates a production from a sequence of symbols. Calling it without
// arguments yields Epsilon.
func Prod(syms ...Symbol) Production {
	if len(syms) == 0 {
		return Epsilon
	}
	rhs := make([]Symbol, len(syms))
	copy(rhs, syms)
	return Production{rhs: rhs}
}

// IsEpsilon is a predicate.
func (p Production) IsEpsilon() bool {
	return len(p.rhs) == 0
}

// Len returns the number of symbols of p. Epsilon has length 0.
func (p Production) Len() int {
	return len(p.rhs)
}

// At returns the symbol at position i.
func (p Production) At(i int) Symbol {
	return p.rhs[i]
}

// Symbols returns a copy of the symbols of p.
func (p Production) Symbols() []Symbol {
	syms := make([]Symbol, len(p.rhs))
	copy(syms, p.rhs)
	return syms
}

// IsUnit is true for productions consisting of a single non-terminal.
func (p Production) IsUnit() bool {
	return len(p.rhs) == 1 && p.rhs[0].IsNonTerminal()
}

// IsSingleTerminal is true for productions consisting of a single terminal.
func (p Production) IsSingleTerminal() bool {
	return len(p.rhs) == 1 && p.rhs[0].IsTerminal()
}

// Contains checks if symbol s occurs in p.
func (p Production) Contains(s Symbol) bool {
	for _, x := range p.rhs {
		if x == s {
			return true
		}
	}
	return false
}

// Equals compares two productions symbol by symbol.
func (p Production) Equals(q Production) bool {
	return compareProductions(p, q) == 0
}

// Key returns a string uniquely identifying the symbol sequence of p.
// Every symbol is encoded as its kind followed by its quoted name, so
// names containing blanks or quotes cannot make two sequences collide.
func (p Production) Key() string {
	var b strings.Builder
	for _, s := range p.rhs {
		if s.IsTerminal() {
			b.WriteByte('t')
		} else {
			b.WriteByte('n')
		}
		b.WriteString(strconv.Quote(s.Name))
	}
	return b.String()
}

func (p Production) String() string {
	if p.IsEpsilon() {
		return "ε"
	}
	names := make([]string, len(p.rhs))
	for i, s := range p.rhs {
		names[i] = s.Name
	}
	return strings.Join(names, " ")
}

// compareProductions orders productions symbol by symbol; a proper prefix
// sorts first. Epsilon therefore sorts before every other production.
func compareProductions(p, q Production) int {
	for i := 0; i < len(p.rhs) && i < len(q.rhs); i++ {
		if c := compareSymbols(p.rhs[i], q.rhs[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(p.rhs) < len(q.rhs):
		return -1
	case len(p.rhs) > len(q.rhs):
		return 1
	}
	return 0
}

// ProductionComparator is a comparator for productions, suitable for ordered
// containers of github.com/emirpasic/gods.
func ProductionComparator(a, b interface{}) int {
	return compareProductions(a.(Production), b.(Production))
}
