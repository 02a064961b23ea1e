package gramtext

import (
	"io"

	"github.com/pkg/errors"

	"github.com/npillmayer/chomsky"
)

// Read parses a grammar text from r. name identifies the source in error
// messages, usually the file name.
func Read(name string, r io.Reader) (*chomsky.Grammar, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", name)
	}
	return Parse(name, string(input))
}

// Parse parses a grammar text. name identifies the source in error
// messages.
func Parse(name string, input string) (*chomsky.Grammar, error) {
	toks, err := tokenize(name, input)
	if err != nil {
		return nil, err
	}
	p := &parser{name: name, toks: toks, lines: make(map[string]int)}
	if err := p.parse(); err != nil {
		tracer().Errorf("%v", err)
		return nil, err
	}
	return p.grammar()
}

// --- Parser ----------------------------------------------------------------

type bodySymbol struct {
	name   string
	quoted bool
}

type rule struct {
	lhs  string
	alts [][]bodySymbol
	line int
}

type parser struct {
	name         string
	toks         []token
	pos          int
	start        string
	nonterminals []bodySymbol // declared, if hasNT
	terminals    []bodySymbol // declared, if hasT
	hasNT, hasT  bool
	rules        []rule
	lines        map[string]int // line of first rule for each LHS
}

func (p *parser) peek() token {
	return p.toks[p.pos]
}

func (p *parser) next() token {
	tok := p.toks[p.pos]
	if tok.typ != tokEOF {
		p.pos++
	}
	return tok
}

func (p *parser) errorf(tok token, format string, args ...interface{}) error {
	return errors.Errorf("%s:%d: "+format, append([]interface{}{p.name, tok.line}, args...)...)
}

func (p *parser) expect(typ tokType) (token, error) {
	tok := p.next()
	if tok.typ != typ {
		return tok, p.errorf(tok, "expected %s, found %s", typ, tok)
	}
	return tok, nil
}

// endOfStatement consumes a newline or ';', or accepts end of input.
func (p *parser) endOfStatement() error {
	switch tok := p.peek(); tok.typ {
	case tokEOF:
		return nil
	case tokNewline, tokSemicolon:
		p.next()
		return nil
	default:
		return p.errorf(tok, "unexpected %s", tok)
	}
}

func (p *parser) parse() error {
	for {
		tok := p.peek()
		var err error
		switch tok.typ {
		case tokEOF:
			return nil
		case tokNewline, tokSemicolon:
			p.next()
		case tokStart:
			p.next()
			var id token
			if id, err = p.expect(tokIdent); err == nil {
				p.start = id.lexeme
				err = p.endOfStatement()
			}
		case tokTerminals:
			p.next()
			p.hasT = true
			p.terminals = append(p.terminals, p.symbolList()...)
			err = p.endOfStatement()
		case tokNonTerminals:
			p.next()
			p.hasNT = true
			for _, sym := range p.symbolList() {
				if sym.quoted {
					return p.errorf(tok, "non-terminal %q must not be quoted", sym.name)
				}
				p.nonterminals = append(p.nonterminals, sym)
			}
			err = p.endOfStatement()
		case tokIdent:
			err = p.rule()
		default:
			err = p.errorf(tok, "unexpected %s", tok)
		}
		if err != nil {
			return err
		}
	}
}

func (p *parser) symbolList() []bodySymbol {
	var syms []bodySymbol
	for {
		switch tok := p.peek(); tok.typ {
		case tokIdent:
			syms = append(syms, bodySymbol{name: tok.lexeme})
		case tokQuoted:
			syms = append(syms, bodySymbol{name: tok.lexeme, quoted: true})
		default:
			return syms
		}
		p.next()
	}
}

// rule parses
//
//    rule  ::=  ident '->' alt { '|' alt }
//    alt   ::=  ε | symbol*
//
// Alternatives may continue on the following lines, if these start with '|'.
func (p *parser) rule() error {
	lhs := p.next()
	if _, err := p.expect(tokArrow); err != nil {
		return err
	}
	r := rule{lhs: lhs.lexeme, line: lhs.line}
	for {
		if p.peek().typ == tokEpsilon {
			p.next()
			r.alts = append(r.alts, nil)
		} else {
			r.alts = append(r.alts, p.symbolList())
		}
		if p.peek().typ == tokBar {
			p.next()
			continue
		}
		if p.continuesOnNextLine() {
			continue
		}
		break
	}
	p.rules = append(p.rules, r)
	if _, ok := p.lines[r.lhs]; !ok {
		p.lines[r.lhs] = r.line
	}
	tracer().Debugf("%s:%d: rule for %s with %d alternatives", p.name, r.line, r.lhs, len(r.alts))
	return p.endOfStatement()
}

// continuesOnNextLine checks if, after one or more newlines, the next token
// is a '|'. If so, the newlines and the '|' are consumed.
func (p *parser) continuesOnNextLine() bool {
	i := p.pos
	for p.toks[i].typ == tokNewline {
		i++
	}
	if i == p.pos || p.toks[i].typ != tokBar {
		return false
	}
	p.pos = i + 1
	return true
}

// grammar resolves the symbols of the parsed rules and constructs the
// grammar.
func (p *parser) grammar() (*chomsky.Grammar, error) {
	if len(p.rules) == 0 && p.start == "" {
		return nil, errors.Errorf("%s: grammar has no rules", p.name)
	}
	nonterminals := chomsky.NewSymbolSet()
	if p.hasNT {
		for _, sym := range p.nonterminals {
			nonterminals.Add(chomsky.NonTerminal(sym.name))
		}
	} else {
		for _, r := range p.rules {
			nonterminals.Add(chomsky.NonTerminal(r.lhs))
		}
	}
	resolve := func(sym bodySymbol) chomsky.Symbol {
		if !sym.quoted && nonterminals.Contains(chomsky.NonTerminal(sym.name)) {
			return chomsky.NonTerminal(sym.name)
		}
		return chomsky.Terminal(sym.name)
	}
	terminals := chomsky.NewSymbolSet()
	rules := make(chomsky.ProductionMap)
	for _, r := range p.rules {
		A := chomsky.NonTerminal(r.lhs)
		for _, alt := range r.alts {
			rhs := make([]chomsky.Symbol, len(alt))
			for i, sym := range alt {
				rhs[i] = resolve(sym)
				if rhs[i].IsTerminal() && !p.hasT {
					terminals.Add(rhs[i])
				}
			}
			rules.Add(A, chomsky.Prod(rhs...))
		}
	}
	if p.hasT {
		for _, sym := range p.terminals {
			terminals.Add(chomsky.Terminal(sym.name))
		}
	}
	start := p.start
	if start == "" {
		start = p.rules[0].lhs
	}
	g, err := chomsky.NewGrammar(nonterminals, terminals, rules, chomsky.NonTerminal(start))
	if err != nil {
		return nil, p.wrapConstructionError(err)
	}
	n, t, r := g.Size()
	tracer().Infof("%s: %d non-terminals, %d terminals, %d rules", p.name, n, t, r)
	return g, nil
}

func (p *parser) wrapConstructionError(err error) error {
	var cerr *chomsky.ConstructionError
	if errors.As(err, &cerr) {
		name := cerr.Symbol.Name
		if cerr.InRule() {
			name = cerr.LHS.Name
		}
		if line, ok := p.lines[name]; ok {
			return errors.Wrapf(err, "%s:%d", p.name, line)
		}
	}
	return errors.Wrapf(err, "%s", p.name)
}
