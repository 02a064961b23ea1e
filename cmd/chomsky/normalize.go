package main

import (
	"github.com/spf13/cobra"
)

var normalizeFlags = struct {
	style *string
	text  *bool
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "normalize [file]",
		Short:   "Print a grammar in Chomsky Normal Form",
		Example: `  chomsky normalize grammar.txt --style table`,
		Args:    cobra.MaximumNArgs(1),
		RunE:    runNormalize,
	}
	normalizeFlags.style = cmd.Flags().StringP("style", "s", "", "output style [plain|tree|table] (default from configuration)")
	normalizeFlags.text = cmd.Flags().Bool("text", false, "print re-readable grammar text")
	rootCmd.AddCommand(cmd)
}

func runNormalize(cmd *cobra.Command, args []string) error {
	g, err := readGrammar(cmd, args)
	if err != nil {
		return err
	}
	cnf, err := pipeline().Run(g)
	if err != nil {
		return err
	}
	if *normalizeFlags.text {
		return printText(out(cmd), cnf)
	}
	style := *normalizeFlags.style
	if style == "" {
		style = conf.DisplayStyle()
	}
	return printGrammar(out(cmd), cnf, style)
}
