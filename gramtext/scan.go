package gramtext

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// --- Tokens ----------------------------------------------------------------

type tokType int

const (
	tokEOF tokType = iota
	tokIdent
	tokQuoted
	tokArrow
	tokBar
	tokSemicolon
	tokNewline
	tokEpsilon
	tokStart
	tokTerminals
	tokNonTerminals
)

var tokNames = map[tokType]string{
	tokEOF:          "end of input",
	tokIdent:        "identifier",
	tokQuoted:       "quoted terminal",
	tokArrow:        "'->'",
	tokBar:          "'|'",
	tokSemicolon:    "';'",
	tokNewline:      "newline",
	tokEpsilon:      "ε",
	tokStart:        "%start",
	tokTerminals:    "%terminals",
	tokNonTerminals: "%nonterminals",
}

func (t tokType) String() string {
	if s, ok := tokNames[t]; ok {
		return s
	}
	return fmt.Sprintf("token(%d)", int(t))
}

type token struct {
	typ    tokType
	lexeme string
	line   int
	col    int
}

func (tok token) String() string {
	if tok.typ == tokIdent || tok.typ == tokQuoted {
		return fmt.Sprintf("%s %q", tok.typ, tok.lexeme)
	}
	return tok.typ.String()
}

// --- Lexer -----------------------------------------------------------------

var lexer *lexmachine.Lexer
var lexerOnce sync.Once
var lexerErr error

// unicode notations are normalized before scanning. Replacements must not
// contain newlines, to keep line numbers intact.
var unicodeNotation = strings.NewReplacer("ε", "%empty", "→", "->")

func initLexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`#[^\n]*`), skip)
		lx.Add([]byte(`( |\t|\r)+`), skip)
		lx.Add([]byte(`\n`), makeToken(tokNewline))
		lx.Add([]byte(`->`), makeToken(tokArrow))
		lx.Add([]byte(`\|`), makeToken(tokBar))
		lx.Add([]byte(`;`), makeToken(tokSemicolon))
		lx.Add([]byte(`%empty`), makeToken(tokEpsilon))
		lx.Add([]byte(`eps`), makeToken(tokEpsilon))
		lx.Add([]byte(`%start`), makeToken(tokStart))
		lx.Add([]byte(`%terminals`), makeToken(tokTerminals))
		lx.Add([]byte(`%nonterminals`), makeToken(tokNonTerminals))
		lx.Add([]byte(`[A-Za-z_][A-Za-z0-9_']*`), makeToken(tokIdent))
		lx.Add([]byte(`"[^"\n]*"`), makeQuoted)
		lx.Add([]byte(`'[^'\n]*'`), makeQuoted)
		if err := lx.Compile(); err != nil {
			tracer().Errorf("error compiling DFA: %v", err)
			lexerErr = err
			return
		}
		lexer = lx
	})
	return lexer, lexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(typ tokType) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(typ), string(m.Bytes), m), nil
	}
}

func makeQuoted(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
	lexeme := string(m.Bytes)
	return s.Token(int(tokQuoted), lexeme[1:len(lexeme)-1], m), nil
}

// offending extracts the input which could not be matched.
func offending(ui *machines.UnconsumedInput) string {
	end := ui.FailTC + 1
	if end > len(ui.Text) {
		end = len(ui.Text)
	}
	if ui.StartTC >= end {
		return ""
	}
	return string(ui.Text[ui.StartTC:end])
}

// tokenize splits a grammar text into tokens. The last token is always tokEOF.
func tokenize(name, input string) ([]token, error) {
	lx, err := initLexer()
	if err != nil {
		return nil, errors.Wrap(err, "gramtext: cannot build lexer")
	}
	scanner, err := lx.Scanner([]byte(unicodeNotation.Replace(input)))
	if err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	var toks []token
	line := 1
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			tracer().Errorf("scanner error: %v", err)
			return nil, errors.Errorf("%s:%d:%d: unexpected input %q", name,
				ui.StartLine, ui.StartColumn, offending(ui))
		} else if err != nil {
			return nil, errors.Wrapf(err, "%s", name)
		}
		t := tok.(*lexmachine.Token)
		line = t.StartLine
		toks = append(toks, token{
			typ:    tokType(t.Type),
			lexeme: t.Value.(string),
			line:   t.StartLine,
			col:    t.StartColumn,
		})
	}
	toks = append(toks, token{typ: tokEOF, line: line})
	return toks, nil
}
