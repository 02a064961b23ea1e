package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/pterm/pterm"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/gramtext"
	"github.com/npillmayer/chomsky/internal/config"
	"github.com/npillmayer/chomsky/normalize"
)

// printGrammar renders g in the given display style. Tree style is
// rendered by pterm on the terminal.
func printGrammar(w io.Writer, g *chomsky.Grammar, style string) error {
	switch style {
	case config.StyleTree:
		printTree(g)
		return nil
	case config.StyleTable:
		return printRuleTable(w, g)
	}
	_, err := fmt.Fprint(w, g.String())
	return err
}

// printText renders g as re-readable grammar text.
func printText(w io.Writer, g *chomsky.Grammar) error {
	return gramtext.Write(w, g)
}

func printTree(g *chomsky.Grammar) {
	pterm.Println("grammar, start symbol " + g.Start().Name)
	root := pterm.NewTreeFromLeveledList(leveledRules(g))
	pterm.DefaultTree.WithRoot(root).Render()
}

// leveledRules lists every non-terminal at level 0, followed by its
// productions at level 1.
func leveledRules(g *chomsky.Grammar) pterm.LeveledList {
	ll := pterm.LeveledList{}
	for _, A := range g.NonTerminals().Values() {
		prods := g.Productions(A)
		if len(prods) == 0 {
			continue
		}
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: A.Name})
		for _, p := range prods {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: p.String()})
		}
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return ll
}

func printRuleTable(w io.Writer, g *chomsky.Grammar) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "LHS", "RHS"})
	n := 0
	g.EachRule(func(A chomsky.Symbol, p chomsky.Production) {
		n++
		lhs := A.Name
		if A == g.Start() {
			lhs += " (start)"
		}
		table.Append([]string{strconv.Itoa(n), lhs, p.String()})
	})
	table.Render()
	return nil
}

// printStageTable summarizes the results of a pipeline run, starting with
// the input grammar.
func printStageTable(w io.Writer, input *chomsky.Grammar, results []normalize.StageResult) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Stage", "Non-Terminals", "Terminals", "Rules", "CNF"})
	row := func(name string, g *chomsky.Grammar) {
		n, t, r := g.Size()
		cnf, _ := normalize.IsCNF(g)
		table.Append([]string{name, strconv.Itoa(n), strconv.Itoa(t), strconv.Itoa(r), strconv.FormatBool(cnf)})
	}
	row("input", input)
	for _, r := range results {
		row(r.Stage, r.Grammar)
	}
	table.Render()
}
