package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/normalize"
)

var checkFlags = struct {
	strict *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "check [file]",
		Short:   "Validate a grammar and check if it is in Chomsky Normal Form",
		Example: `  chomsky check grammar.txt --strict`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runCheck,
	}
	checkFlags.strict = cmd.Flags().Bool("strict", false, "fail if the grammar is not in CNF")
	rootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(cmd, args)
	if err != nil {
		return err
	}
	n, t, r := g.Size()
	fmt.Fprintf(out(cmd), "grammar is valid: %d non-terminals, %d terminals, %d rules\n", n, t, r)
	if ok, err := normalize.IsCNF(g); !ok {
		fmt.Fprintf(out(cmd), "not in Chomsky Normal Form: %v\n", err)
		if *checkFlags.strict {
			return err
		}
		return nil
	}
	fmt.Fprintln(out(cmd), "grammar is in Chomsky Normal Form")
	if S := g.Start(); g.HasRule(S, chomsky.Epsilon) && occursOnRHS(g, S) {
		fmt.Fprintf(out(cmd), "note: start symbol %s has an ε-production and occurs on a right-hand side\n", S)
	}
	return nil
}

// occursOnRHS checks if A is referenced by any production of g.
func occursOnRHS(g *chomsky.Grammar, A chomsky.Symbol) bool {
	found := false
	g.EachRule(func(_ chomsky.Symbol, p chomsky.Production) {
		found = found || p.Contains(A)
	})
	return found
}
