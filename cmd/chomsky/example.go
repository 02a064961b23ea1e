package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// exampleGrammar has a nullable start symbol, unit productions, a long
// production and an inaccessible non-terminal C.
const exampleGrammar = `# example grammar
%start S
%nonterminals S A B C D
%terminals a b
S -> A | b A | a B
A -> B | A S | b B A B | b
B -> b | b S | a D | ε
C -> B a
D -> A A
`

func init() {
	cmd := &cobra.Command{
		Use:     "example",
		Short:   "Print an example grammar",
		Example: `  chomsky example | chomsky stages`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprint(out(cmd), exampleGrammar)
			return err
		},
	}
	rootCmd.AddCommand(cmd)
}
