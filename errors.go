package chomsky

import (
	"fmt"
	"strings"
)

// ErrorKind names the grammar invariant a ConstructionError reports.
// Kinds implement the error interface, so they may serve as targets for
// errors.Is:
//
//    if errors.Is(err, chomsky.UndefinedSymbol) { … }
//
type ErrorKind int

// Kinds of grammar construction errors.
const (
	InvalidStartSymbol      ErrorKind = iota + 1 // start symbol not in non-terminal set
	UndefinedNonTerminalKey                      // rule for a symbol not in non-terminal set
	UndefinedSymbol                              // right-hand side refers to undefined symbol
	OverlappingSymbol                            // name is both terminal and non-terminal
)

var errorKindMessages = map[ErrorKind]string{
	InvalidStartSymbol:      "invalid start symbol",
	UndefinedNonTerminalKey: "rule for undefined non-terminal",
	UndefinedSymbol:         "undefined symbol",
	OverlappingSymbol:       "symbol is both terminal and non-terminal",
}

func (k ErrorKind) Error() string {
	if msg, ok := errorKindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("grammar error %d", int(k))
}

func (k ErrorKind) String() string {
	return k.Error()
}

// ConstructionError is returned whenever a grammar cannot be constructed
// because one of its invariants is violated. Symbol is the offending symbol;
// for UndefinedSymbol errors, LHS and Rule identify the rule referencing it.
type ConstructionError struct {
	Kind   ErrorKind
	Symbol Symbol
	LHS    Symbol
	Rule   Production
	inRule bool
}

func newConstructionError(kind ErrorKind, sym Symbol) *ConstructionError {
	return &ConstructionError{Kind: kind, Symbol: sym}
}

func newRuleError(kind ErrorKind, sym Symbol, lhs Symbol, rule Production) *ConstructionError {
	return &ConstructionError{Kind: kind, Symbol: sym, LHS: lhs, Rule: rule, inRule: true}
}

// InRule is true if the error refers to a specific rule.
func (e *ConstructionError) InRule() bool {
	return e.inRule
}

func (e *ConstructionError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "grammar construction: %v: %s %q", e.Kind, e.Symbol.Kind, e.Symbol.Name)
	if e.inRule {
		fmt.Fprintf(&b, " in rule %s -> %s", e.LHS, e.Rule)
	}
	return b.String()
}

// Is matches a ConstructionError against its kind.
func (e *ConstructionError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == e.Kind
}
