package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stagesFlags = struct {
	verbose *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "stages [file]",
		Short:   "Summarize every stage of the normalization",
		Example: `  chomsky stages grammar.txt -v`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runStages,
	}
	stagesFlags.verbose = cmd.Flags().BoolP("verbose", "v", false, "print the grammar after each stage")
	rootCmd.AddCommand(cmd)
}

func runStages(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(cmd, args)
	if err != nil {
		return err
	}
	p := pipeline()
	results, err := p.Trace(g)
	if err != nil {
		return err
	}
	if *stagesFlags.verbose {
		stages := p.Stages()
		for i, r := range results {
			fmt.Fprintf(out(cmd), "=== after stage %q: %s ===\n", r.Stage, stages[i].Description)
			if err := printGrammar(out(cmd), r.Grammar, conf.DisplayStyle()); err != nil {
				return err
			}
		}
	}
	printStageTable(out(cmd), g, results)
	return nil
}
