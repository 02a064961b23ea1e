package normalize

import (
	"fmt"

	"github.com/npillmayer/chomsky"
)

// Default prefixes for generated non-terminals.
const (
	DefaultProxyPrefix = "X" // proxies for terminals:  X1 → a
	DefaultAuxPrefix   = "Y" // auxiliaries for production tails:  Y1 → B C
)

// Namer hands out fresh symbol names. It is seeded with every name of a
// grammar and remembers every name it generates, so no name is handed out
// twice and no generated name clashes with a symbol of the seed grammar.
//
// A Namer is scoped to one normalization run; it is not safe for concurrent use.
type Namer struct {
	used        map[string]bool
	next        map[string]int // prefix -> next candidate suffix
	proxyPrefix string
	auxPrefix   string
}

// NamerOption configures a Namer.
type NamerOption func(*Namer)

// ProxyPrefix sets the prefix for terminal proxies.
func ProxyPrefix(prefix string) NamerOption {
	return func(n *Namer) {
		if prefix != "" {
			n.proxyPrefix = prefix
		}
	}
}

// AuxPrefix sets the prefix for auxiliary non-terminals, standing for
// tails of long productions.
func AuxPrefix(prefix string) NamerOption {
	return func(n *Namer) {
		if prefix != "" {
			n.auxPrefix = prefix
		}
	}
}

// NewNamer creates a namer, reserving every symbol name of g. g may be nil.
func NewNamer(g *chomsky.Grammar, opts ...NamerOption) *Namer {
	n := &Namer{
		used:        make(map[string]bool),
		next:        make(map[string]int),
		proxyPrefix: DefaultProxyPrefix,
		auxPrefix:   DefaultAuxPrefix,
	}
	for _, opt := range opts {
		opt(n)
	}
	if g != nil {
		n.Reserve(g.NonTerminals().Names()...)
		n.Reserve(g.Terminals().Names()...)
	}
	return n
}

// Reserve marks names as used.
func (n *Namer) Reserve(names ...string) {
	for _, name := range names {
		n.used[name] = true
	}
}

// IsUsed checks if name has been reserved or generated.
func (n *Namer) IsUsed(name string) bool {
	return n.used[name]
}

// Fresh returns prefix<k> with the smallest k ≥ 1 not in use, and marks it
// as used.
func (n *Namer) Fresh(prefix string) string {
	k := n.next[prefix]
	if k == 0 {
		k = 1
	}
	name := fmt.Sprintf("%s%d", prefix, k)
	for n.used[name] {
		k++
		name = fmt.Sprintf("%s%d", prefix, k)
	}
	n.used[name] = true
	n.next[prefix] = k + 1
	return name
}

// Proxy creates a fresh non-terminal to stand in for terminal a.
func (n *Namer) Proxy(a chomsky.Symbol) chomsky.Symbol {
	P := chomsky.NonTerminal(n.Fresh(n.proxyPrefix))
	tracer().Debugf("new proxy %s -> %s", P, a)
	return P
}

// Aux creates a fresh auxiliary non-terminal.
func (n *Namer) Aux() chomsky.Symbol {
	return chomsky.NonTerminal(n.Fresh(n.auxPrefix))
}
