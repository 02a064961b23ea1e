/*
Package chomsky is a toolbox for normalizing context-free grammars into
Chomsky Normal Form.

A grammar in Chomsky Normal Form (CNF) has productions of exactly three
shapes:

    A  ->  B C        // two non-terminals
    A  ->  a          // a single terminal
    S  ->  ε          // start symbol only, iff ε is in the language

Many downstream algorithms, most prominently CYK parsing, require this
canonical binary form. Package structure is as follows:

■ chomsky: The base package contains the symbol model, productions and the
immutable Grammar type, which validates referential integrity on construction.

■ normalize: Package normalize implements the analyzers (nullable, unit closure,
productivity, accessibility) and the rewriting stages which, chained together,
transform a grammar into CNF.

■ gramtext: Package gramtext reads and writes grammars in a small textual format.

Building a Grammar

Grammars are specified using a grammar builder object. Clients add
rules, consisting of non-terminal symbols and terminals.
Grammars may contain epsilon-productions.

Example:

    b := chomsky.NewGrammarBuilder()
    b.LHS("S").N("A").T("a").End()     // S  ->  A a
    b.LHS("A").N("B").N("D").End()     // A  ->  B D
    b.LHS("B").T("b").End()            // B  ->  b
    b.LHS("B").Epsilon()               // B  ->  ε
    b.LHS("D").T("d").End()            // D  ->  d
    g, err := b.Grammar()

The first left-hand side becomes the start symbol, unless set explicitly
with b.Start(…).

Grammars are immutable. Every transformation constructs a new grammar, which
is validated again. A grammar which violates one of the invariants (start
symbol is a non-terminal, every rule has a non-terminal on its left side,
every symbol on a right side is defined, no name is both terminal and
non-terminal) is never observable; construction fails with a *ConstructionError
instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package chomsky
