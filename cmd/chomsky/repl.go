package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/chomsky/gramtext"
	"github.com/npillmayer/chomsky/normalize"
)

func init() {
	cmd := &cobra.Command{
		Use:   "repl [file]",
		Short: "Transform a grammar step by step, interactively",
		Long: `repl starts an interactive session. Grammars may be loaded from a file
or entered rule by rule, then normalized one stage at a time.
Enter 'help' for a list of commands, quit with 'quit' or <ctrl>D.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runREPL,
	}
	rootCmd.AddCommand(cmd)
}

func runREPL(cmd *cobra.Command, args []string) error {
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "chomsky> ",
		AutoComplete: completer,
	})
	if err != nil {
		return err
	}
	defer repl.Close()
	intp := NewIntp(out(cmd), pipeline())
	intp.repl = repl
	if len(args) > 0 {
		if err := intp.load(args[0]); err != nil {
			return err
		}
	}
	pterm.Info.Println("Welcome to the Chomsky REPL")
	tracer().Infof("Quit with <ctrl>D")
	intp.REPL()
	return nil
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("load"),
	readline.PcItem("rule"),
	readline.PcItem("show"),
	readline.PcItem("run"),
	readline.PcItem("step",
		readline.PcItem(normalize.StageNull),
		readline.PcItem(normalize.StageUnit),
		readline.PcItem(normalize.StageProductive),
		readline.PcItem(normalize.StageAccessible),
		readline.PcItem(normalize.StageBinarize),
	),
	readline.PcItem("stages"),
	readline.PcItem("cnf?"),
	readline.PcItem("text"),
	readline.PcItem("reset"),
	readline.PcItem("fingerprint"),
	readline.PcItem("help"),
	readline.PcItem("quit"),
)

// Intp is our interpreter object. It holds the grammar as entered by the
// user and the grammar after the stages applied so far.
type Intp struct {
	repl    *readline.Instance
	out     io.Writer
	pipe    *normalize.Pipeline
	source  []string         // rules entered with 'rule'
	input   *chomsky.Grammar // grammar before normalization
	current *chomsky.Grammar // grammar after the stages applied so far
	namer   *normalize.Namer
	applied map[string]bool // stages applied to current
}

// NewIntp creates an interpreter which writes its output to w.
func NewIntp(w io.Writer, pipe *normalize.Pipeline) *Intp {
	return &Intp{out: w, pipe: pipe}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	fmt.Fprintln(intp.out, "Good bye!")
}

type command struct {
	usage string
	help  string
	exec  func(intp *Intp, arg string) error
}

var commands map[string]command

func init() {
	commands = map[string]command{
		"load":        {"load <file>", "load a grammar from a file", (*Intp).load},
		"rule":        {"rule <A -> α | β>", "add rules to the grammar", (*Intp).rule},
		"show":        {"show [A]", "print the current grammar, or the rules of A", (*Intp).show},
		"run":         {"run", "apply all remaining stages", (*Intp).run},
		"step":        {"step [stage]", "apply the next stage not yet applied, or the named one", (*Intp).step},
		"stages":      {"stages", "list the stages and mark the ones applied", (*Intp).stages},
		"cnf?":        {"cnf?", "check if the current grammar is in CNF", (*Intp).isCNF},
		"text":        {"text", "print the current grammar as grammar text", (*Intp).text},
		"reset":       {"reset", "undo all stages applied", (*Intp).reset},
		"fingerprint": {"fingerprint", "print the fingerprint of the current grammar", (*Intp).fingerprint},
		"help":        {"help", "print this list", (*Intp).help},
	}
}

// Eval executes a single command line. It returns true if the user asked
// to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	line = strings.TrimSpace(line)
	name, arg := line, ""
	if i := strings.IndexAny(line, " \t"); i >= 0 {
		name, arg = line[:i], strings.TrimSpace(line[i+1:])
	}
	if name == "quit" || name == "exit" {
		return true, nil
	}
	cmd, ok := commands[name]
	if !ok {
		return false, fmt.Errorf("unknown command %q, try 'help'", name)
	}
	tracer().Debugf("eval %s(%q)", name, arg)
	return false, cmd.exec(intp, arg)
}

func (intp *Intp) setGrammar(g *chomsky.Grammar) {
	intp.input = g
	intp.current = g
	intp.namer = intp.pipe.NewNamer(g)
	intp.applied = make(map[string]bool)
}

func (intp *Intp) grammar() (*chomsky.Grammar, error) {
	if intp.current == nil {
		return nil, errors.New("no grammar loaded")
	}
	return intp.current, nil
}

func (intp *Intp) load(path string) error {
	if path == "" {
		return errors.New("usage: load <file>")
	}
	g, err := readGrammarFile(path)
	if err != nil {
		return err
	}
	intp.source = nil
	intp.setGrammar(g)
	n, t, r := g.Size()
	fmt.Fprintf(intp.out, "loaded %s: %d non-terminals, %d terminals, %d rules\n", path, n, t, r)
	return nil
}

// rule adds a line of grammar text. The first rule entered determines
// the start symbol. Rules replace a grammar loaded from file.
func (intp *Intp) rule(arg string) error {
	if arg == "" {
		return errors.New("usage: rule <A -> α | β>")
	}
	source := append(intp.source[:len(intp.source):len(intp.source)], arg)
	g, err := gramtext.Parse("rule", strings.Join(source, "\n"))
	if err != nil {
		return err
	}
	intp.source = source
	intp.setGrammar(g)
	tracer().Debugf("grammar now has %d rules", g.RuleCount())
	return nil
}

// show prints the current grammar. With an argument, it prints the rules
// of a single non-terminal.
func (intp *Intp) show(arg string) error {
	g, err := intp.grammar()
	if err != nil {
		return err
	}
	if arg == "" {
		return printGrammar(intp.out, g, conf.DisplayStyle())
	}
	A := chomsky.NonTerminal(arg)
	if !g.Defines(A) {
		return fmt.Errorf("%s is not a non-terminal of the grammar", arg)
	}
	line := g.RuleString(A)
	if line == "" {
		line = A.Name + " has no rules"
	}
	fmt.Fprintln(intp.out, line)
	return nil
}

func (intp *Intp) text(string) error {
	g, err := intp.grammar()
	if err != nil {
		return err
	}
	return printText(intp.out, g)
}

func (intp *Intp) apply(stage normalize.Stage) error {
	g, err := intp.grammar()
	if err != nil {
		return err
	}
	next, err := stage.Apply(g, intp.namer)
	if err != nil {
		return err
	}
	intp.current = next
	intp.applied[stage.Name] = true
	n, t, r := next.Size()
	fmt.Fprintf(intp.out, "%s: %d non-terminals, %d terminals, %d rules\n", stage.Description, n, t, r)
	return nil
}

// pending returns the stages of the pipeline not applied yet, in order.
func (intp *Intp) pending() []normalize.Stage {
	var stages []normalize.Stage
	for _, s := range intp.pipe.Stages() {
		if !intp.applied[s.Name] {
			stages = append(stages, s)
		}
	}
	return stages
}

// step applies the first stage of the pipeline which has not been applied
// yet. With an argument, it applies the named stage, even if it has been
// applied before. Either way the stage counts as applied.
func (intp *Intp) step(arg string) error {
	if arg != "" {
		stage, ok := intp.pipe.Stage(arg)
		if !ok {
			return fmt.Errorf("no stage named %q", arg)
		}
		return intp.apply(stage)
	}
	pending := intp.pending()
	if len(pending) == 0 {
		return errors.New("all stages applied")
	}
	return intp.apply(pending[0])
}

// run applies every stage not applied yet, in pipeline order.
func (intp *Intp) run(string) error {
	if _, err := intp.grammar(); err != nil {
		return err
	}
	for _, stage := range intp.pending() {
		if err := intp.apply(stage); err != nil {
			return err
		}
	}
	return nil
}

func (intp *Intp) stages(string) error {
	for _, s := range intp.pipe.Stages() {
		mark := " "
		if intp.applied[s.Name] {
			mark = "*"
		}
		fmt.Fprintf(intp.out, "%s %-10s  %s\n", mark, s.Name, s.Description)
	}
	return nil
}

func (intp *Intp) isCNF(string) error {
	g, err := intp.grammar()
	if err != nil {
		return err
	}
	if ok, err := normalize.IsCNF(g); !ok {
		fmt.Fprintf(intp.out, "no: %v\n", err)
		return nil
	}
	fmt.Fprintln(intp.out, "yes")
	return nil
}

func (intp *Intp) reset(string) error {
	if intp.input == nil {
		return errors.New("no grammar loaded")
	}
	intp.setGrammar(intp.input)
	return nil
}

func (intp *Intp) fingerprint(string) error {
	g, err := intp.grammar()
	if err != nil {
		return err
	}
	fmt.Fprintln(intp.out, g.Fingerprint())
	return nil
}

func (intp *Intp) help(string) error {
	names := maps.Keys(commands)
	slices.Sort(names)
	for _, name := range names {
		fmt.Fprintf(intp.out, "  %-20s %s\n", commands[name].usage, commands[name].help)
	}
	fmt.Fprintf(intp.out, "  %-20s %s\n", "quit", "leave the REPL")
	return nil
}
