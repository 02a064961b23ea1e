package main

import (
	"fmt"
	"io"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/gramtext"
	"github.com/npillmayer/chomsky/internal/config"
	"github.com/npillmayer/chomsky/normalize"
)

// tracer traces with key 'chomsky.cli'.
func tracer() tracing.Trace {
	return tracing.Select("chomsky.cli")
}

var rootFlags = struct {
	trace  *string
	config *string
}{}

// conf is the configuration, loaded before any sub-command runs.
var conf *config.Config

var rootCmd = &cobra.Command{
	Use:   "chomsky",
	Short: "Transform context-free grammars into Chomsky Normal Form",
	Long: `chomsky normalizes context-free grammars into Chomsky Normal Form,
by removing ε-productions, unit productions, non-productive and inaccessible
symbols, then isolating terminals and splitting long productions.`,
	SilenceErrors:     true,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(*cobra.Command, []string) {
		config.TeardownTracing()
	},
}

func init() {
	rootFlags.trace = rootCmd.PersistentFlags().StringP("trace", "t", "", "trace level [Debug|Info|Error]")
	rootFlags.config = rootCmd.PersistentFlags().StringP("config", "c", "", "configuration file (NestedText)")
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}

func setup(cmd *cobra.Command, args []string) error {
	initDisplay()
	var err error
	conf, err = config.Load(
		config.File(*rootFlags.config),
		config.DefaultLocations(*rootFlags.config == ""),
		config.TraceLevel(*rootFlags.trace),
	)
	if err != nil {
		return err
	}
	if err = conf.SetupTracing(); err != nil {
		return err
	}
	tracer().Debugf("running command %q", cmd.Name())
	return nil
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// pipeline creates a normalization pipeline, with names for new symbols
// as configured.
func pipeline() *normalize.Pipeline {
	return normalize.NewPipeline(
		normalize.ProxyPrefix(conf.ProxyPrefix()),
		normalize.AuxPrefix(conf.AuxPrefix()),
	)
}

// readGrammar reads a grammar from the file given as the first argument,
// or from stdin if there is none or it is "-".
func readGrammar(cmd *cobra.Command, args []string) (*chomsky.Grammar, error) {
	if len(args) == 0 || args[0] == "-" {
		return gramtext.Read("stdin", cmd.InOrStdin())
	}
	return readGrammarFile(args[0])
}

func readGrammarFile(path string) (*chomsky.Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open grammar")
	}
	defer f.Close()
	return gramtext.Read(path, f)
}

// out is where command output goes.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
