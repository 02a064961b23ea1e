package gramtext

import (
	"bufio"
	"io"
	"regexp"
	"strings"

	"github.com/pkg/errors"

	"github.com/npillmayer/chomsky"
)

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_']*$`)

// keywords are identifiers which scan as something else.
var keywords = map[string]bool{"eps": true}

// Write emits g as grammar text, which Read will accept. Rules of the start
// symbol are written first. Write fails if a symbol name cannot be
// represented: non-terminals must be identifiers, terminals must not
// contain both kinds of quotes.
func Write(w io.Writer, g *chomsky.Grammar) error {
	bw := bufio.NewWriter(w)
	start := g.Start()
	if err := checkNonTerminals(g); err != nil {
		return err
	}
	bw.WriteString("%start " + start.Name + "\n")
	bw.WriteString("%nonterminals")
	for _, A := range g.NonTerminals().Values() {
		bw.WriteString(" " + A.Name)
	}
	bw.WriteString("\n%terminals")
	for _, a := range g.Terminals().Values() {
		s, err := quote(a)
		if err != nil {
			return err
		}
		bw.WriteString(" " + s)
	}
	bw.WriteString("\n")
	order := append([]chomsky.Symbol{start}, g.NonTerminals().Values()...)
	for i, A := range order {
		if i > 0 && A == start {
			continue
		}
		line, err := ruleText(g, A)
		if err != nil {
			return err
		}
		if line != "" {
			bw.WriteString(line + "\n")
		}
	}
	return bw.Flush()
}

// Format renders g as grammar text.
func Format(g *chomsky.Grammar) (string, error) {
	var b strings.Builder
	if err := Write(&b, g); err != nil {
		return "", err
	}
	return b.String(), nil
}

func checkNonTerminals(g *chomsky.Grammar) error {
	for _, A := range g.NonTerminals().Values() {
		if !identifier.MatchString(A.Name) || keywords[A.Name] {
			return errors.Errorf("gramtext: cannot write non-terminal %q", A.Name)
		}
	}
	return nil
}

func ruleText(g *chomsky.Grammar, A chomsky.Symbol) (string, error) {
	prods := g.Productions(A)
	if len(prods) == 0 {
		return "", nil
	}
	alts := make([]string, len(prods))
	for i, p := range prods {
		if p.IsEpsilon() {
			alts[i] = "ε"
			continue
		}
		syms := make([]string, p.Len())
		for j, s := range p.Symbols() {
			if s.IsNonTerminal() {
				syms[j] = s.Name
				continue
			}
			q, err := quote(s)
			if err != nil {
				return "", err
			}
			syms[j] = q
		}
		alts[i] = strings.Join(syms, " ")
	}
	return A.Name + " -> " + strings.Join(alts, " | "), nil
}

// quote quotes a terminal name if it is not a plain identifier.
// Names containing the unicode notations for ε or '->' cannot be written.
func quote(a chomsky.Symbol) (string, error) {
	switch {
	case strings.ContainsAny(a.Name, "ε→"):
		// would be normalized by the scanner
	case identifier.MatchString(a.Name) && !keywords[a.Name]:
		return a.Name, nil
	case !strings.ContainsAny(a.Name, "\"\n"):
		return `"` + a.Name + `"`, nil
	case !strings.ContainsAny(a.Name, "'\n"):
		return "'" + a.Name + "'", nil
	}
	return "", errors.Errorf("gramtext: cannot write terminal %q", a.Name)
}
