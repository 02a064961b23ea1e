package chomsky

// === Grammar Builder =======================================================

// GrammarBuilder is a helper for clients to construct grammars in a fluent
// style. Symbols are collected from the rules: every left-hand side and
// every N(…) is a non-terminal, every T(…) is a terminal. Unused symbols
// may be declared explicitly.
//
//    b := NewGrammarBuilder()
//    b.LHS("S").N("A").T("a").End()   // S  ->  A a
//    b.LHS("A").Epsilon()             // A  ->  ε
//    g, err := b.Grammar()
//
type GrammarBuilder struct {
	start        string
	nonterminals *SymbolSet
	terminals    *SymbolSet
	rules        ProductionMap
}

// NewGrammarBuilder gets a new grammar builder.
func NewGrammarBuilder() *GrammarBuilder {
	return &GrammarBuilder{
		nonterminals: NewSymbolSet(),
		terminals:    NewSymbolSet(),
		rules:        make(ProductionMap),
	}
}

// Start sets the start symbol. If not set, the left-hand side of the
// first rule will be used.
func (gb *GrammarBuilder) Start(name string) *GrammarBuilder {
	gb.start = name
	gb.nonterminals.Add(NonTerminal(name))
	return gb
}

// NonTerminal declares non-terminals, which may or may not occur in rules.
func (gb *GrammarBuilder) NonTerminal(names ...string) *GrammarBuilder {
	for _, n := range names {
		gb.nonterminals.Add(NonTerminal(n))
	}
	return gb
}

// Terminal declares terminals, which may or may not occur in rules.
func (gb *GrammarBuilder) Terminal(names ...string) *GrammarBuilder {
	for _, n := range names {
		gb.terminals.Add(Terminal(n))
	}
	return gb
}

// LHS starts a new rule with non-terminal name as its left-hand side.
func (gb *GrammarBuilder) LHS(name string) *RuleBuilder {
	if gb.start == "" {
		gb.start = name
	}
	A := NonTerminal(name)
	gb.nonterminals.Add(A)
	return &RuleBuilder{gb: gb, lhs: A}
}

// Grammar validates the collected rules and returns the grammar.
func (gb *GrammarBuilder) Grammar() (*Grammar, error) {
	start := NonTerminal(gb.start)
	g, err := NewGrammar(gb.nonterminals, gb.terminals, gb.rules, start)
	if err != nil {
		tracer().Errorf("grammar builder: %v", err)
		return nil, err
	}
	return g, nil
}

// RuleBuilder collects the right-hand side of a single rule.
type RuleBuilder struct {
	gb  *GrammarBuilder
	lhs Symbol
	rhs []Symbol
}

// N appends a non-terminal to the right-hand side.
func (rb *RuleBuilder) N(name string) *RuleBuilder {
	A := NonTerminal(name)
	rb.gb.nonterminals.Add(A)
	rb.rhs = append(rb.rhs, A)
	return rb
}

// T appends a terminal to the right-hand side.
func (rb *RuleBuilder) T(name string) *RuleBuilder {
	a := Terminal(name)
	rb.gb.terminals.Add(a)
	rb.rhs = append(rb.rhs, a)
	return rb
}

// End completes the rule. A rule without any right-hand side symbols
// is an epsilon-rule.
func (rb *RuleBuilder) End() Production {
	p := Prod(rb.rhs...)
	rb.gb.rules.Add(rb.lhs, p)
	return p
}

// Epsilon completes the rule as an epsilon-rule, dropping any symbols
// appended so far.
func (rb *RuleBuilder) Epsilon() Production {
	rb.rhs = nil
	return rb.End()
}
