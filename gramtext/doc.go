/*
Package gramtext reads and writes context-free grammars in a small text format.

A grammar text consists of rules and optional directives:

    # comments run to the end of the line
    %start S
    %nonterminals S A B
    %terminals a b "+"
    S -> A | b A | a B
    A -> A S
       | b B A B          # alternatives may continue on the next line
    B -> b ; B -> ε       # rules end at a newline or a ';'

The arrow may be written as '->' or '→'. The empty production is written as
'ε', 'eps' or '%empty', or simply left empty. Identifiers consist of letters,
digits, '_' and '\'' and must not start with a digit or '\''. Terminals which
are not valid identifiers may be quoted with '"' or '\''; quoted symbols are
always terminals.

Directives are optional:

■ Without %nonterminals, every left-hand side is a non-terminal.

■ Without %terminals, every symbol on a right-hand side which is not a
non-terminal is a terminal.

■ Without %start, the left-hand side of the first rule is the start symbol.

Declarations are taken as they are, so symbols missing from a declaration
surface as construction errors of package chomsky.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package gramtext

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'chomsky.gramtext'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.gramtext")
}
