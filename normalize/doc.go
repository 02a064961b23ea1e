/*
Package normalize transforms context-free grammars into Chomsky Normal Form.

Normalization is a chain of language-preserving rewrites. Each stage consumes
an immutable grammar and produces a new, validated one:

    G  ─▶ RemoveNullProductions       ─▶ ε only at the start symbol
       ─▶ RemoveUnitProductions       ─▶ no A → B
       ─▶ RemoveNonProductiveSymbols  ─▶ every A derives a terminal string
       ─▶ RemoveInaccessibleSymbols   ─▶ every symbol reachable from start
       ─▶ Binarize                    ─▶ A → B C | a | S → ε

Every stage is backed by an analyzer, which is exported as well:
Nullables, UnitClosure, Productives and Accessibles. The analyzers are
fixpoint computations over symbol sets, each pass being quadratic in the
size of the grammar. This is perfectly fine for grammars with up to a few
hundred symbols, which is what this package is intended for.

Binarization introduces fresh non-terminals: proxies for terminals occurring
in productions of length two or more, and auxiliary symbols for production
tails. Fresh names are handed out by a Namer, which is scoped to a single
run of a Pipeline and never repeats a name of the input grammar.

    g, err := normalize.ToCNF(grammar)

Clients interested in intermediate results use a Pipeline:

    p := normalize.NewPipeline(normalize.ProxyPrefix("T"))
    results, err := p.Trace(grammar)
    for _, r := range results {
        fmt.Printf("after %s:\n%s", r.Stage, r.Grammar)
    }

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package normalize

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.normalize'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.normalize")
}
