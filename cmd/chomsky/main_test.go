package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npillmayer/chomsky/gramtext"
	"github.com/npillmayer/chomsky/normalize"
)

// execute runs the root command with args and returns its output.
// Flags keep their values between runs, so we reset them first.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	*normalizeFlags.style = ""
	*normalizeFlags.text = false
	*checkFlags.strict = false
	*stagesFlags.verbose = false
	*rootFlags.trace = ""
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(append([]string{"-c", "testdata/test.nt"}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestNormalizeCommand(t *testing.T) {
	out, err := execute(t, "", "normalize", "--text", "testdata/example.grammar")
	require.NoError(t, err)
	t.Logf("\n%s", out)
	g, err := gramtext.Parse("output", out)
	require.NoError(t, err)
	ok, err := normalize.IsCNF(g)
	assert.True(t, ok)
	assert.NoError(t, err)
	_, found := g.Lookup("C")
	assert.False(t, found, "C is inaccessible")
}

func TestNormalizeStdin(t *testing.T) {
	out, err := execute(t, "S -> a S b | ε\n", "normalize")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Start Symbol: S\n"), out)
	assert.Contains(t, out, "S -> ε |")
}

func TestNormalizeTable(t *testing.T) {
	out, err := execute(t, "S -> a b\n", "normalize", "--style", "table")
	require.NoError(t, err)
	assert.Contains(t, out, "S (start)")
	assert.Contains(t, out, "X1 X2")
}

func TestCheckCommand(t *testing.T) {
	out, err := execute(t, "", "check", "testdata/example.grammar")
	require.NoError(t, err)
	assert.Contains(t, out, "grammar is valid: 5 non-terminals, 2 terminals, 13 rules")
	assert.Contains(t, out, "not in Chomsky Normal Form")
	//
	_, err = execute(t, "", "check", "--strict", "testdata/example.grammar")
	assert.Error(t, err)
	//
	out, err = execute(t, "S -> A B | a\nA -> a\nB -> b\n", "check", "--strict")
	require.NoError(t, err)
	assert.Contains(t, out, "grammar is in Chomsky Normal Form")
	assert.NotContains(t, out, "note:")
	//
	out, err = execute(t, "S -> ε | A S\nA -> a\n", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "grammar is in Chomsky Normal Form")
	assert.Contains(t, out, "note: start symbol S has an ε-production and occurs on a right-hand side")
}

func TestCheckInvalidGrammar(t *testing.T) {
	_, err := execute(t, "%nonterminals S\n%terminals a\nS -> b\n", "check")
	assert.Error(t, err)
	_, err = execute(t, "", "check", "testdata/no-such.grammar")
	assert.Error(t, err)
}

func TestStagesCommand(t *testing.T) {
	out, err := execute(t, "", "stages", "testdata/example.grammar")
	require.NoError(t, err)
	t.Logf("\n%s", out)
	for _, name := range []string{"input", normalize.StageNull, normalize.StageUnit,
		normalize.StageProductive, normalize.StageAccessible, normalize.StageBinarize} {
		assert.Contains(t, out, name)
	}
	out, err = execute(t, "", "stages", "-v", "testdata/example.grammar")
	require.NoError(t, err)
	assert.Contains(t, out, `=== after stage "binarize"`)
}

func TestExampleCommand(t *testing.T) {
	out, err := execute(t, "", "example")
	require.NoError(t, err)
	g, err := gramtext.Parse("example", out)
	require.NoError(t, err)
	assert.Equal(t, "S", g.Start().Name)
	assert.Equal(t, 13, g.RuleCount())
}
