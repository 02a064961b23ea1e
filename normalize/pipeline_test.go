package normalize

import (
	"testing"

	"github.com/npillmayer/chomsky"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipelineExample(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.normalize")
	defer teardown()
	//
	g := makeGrammar(t)
	h, err := ToCNF(g)
	require.NoError(t, err)
	t.Logf("\n%s", h)
	assert.False(t, h.NonTerminals().Contains(chomsky.NonTerminal("C")), "C must be removed")
	ruleShapes(t, h)
	ok, err := IsCNF(h)
	assert.True(t, ok)
	assert.NoError(t, err)
	assert.True(t, h.HasRule(h.Start(), chomsky.Epsilon), "ε is in the language")
	// terminals in binary productions are replaced by proxies
	h.EachRule(func(A chomsky.Symbol, p chomsky.Production) {
		if p.Len() == 2 {
			assert.False(t, p.At(0).IsTerminal() || p.At(1).IsTerminal())
		}
	})
	const k = 6
	before, after := languages(g, k), languages(h, k)
	assert.Equal(t, words(before[g.Start()], true), words(after[h.Start()], true))
}

func TestPipelineTrace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.normalize")
	defer teardown()
	//
	g := makeGrammar(t)
	p := NewPipeline()
	results, err := p.Trace(g)
	require.NoError(t, err)
	require.Len(t, results, len(p.Stages()))
	names := make([]string, len(results))
	for i, r := range results {
		names[i] = r.Stage
		require.NotNil(t, r.Grammar)
	}
	assert.Equal(t, []string{StageNull, StageUnit, StageProductive, StageAccessible, StageBinarize}, names)
	h, err := p.Run(g)
	require.NoError(t, err)
	assert.Equal(t, results[len(results)-1].Grammar.Fingerprint(), h.Fingerprint(),
		"pipeline runs must be deterministic")
	_, ok := p.Stage(StageUnit)
	assert.True(t, ok)
	_, ok = p.Stage("no-such-stage")
	assert.False(t, ok)
}

func TestSingleStage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.normalize")
	defer teardown()
	//
	g := makeGrammar(t)
	stage, ok := NewPipeline().Stage(StageAccessible)
	require.True(t, ok)
	h, err := stage.Apply(g, nil)
	require.NoError(t, err)
	assert.False(t, h.NonTerminals().Contains(chomsky.NonTerminal("C")))
}

func TestPipelineExprGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.normalize")
	defer teardown()
	//
	g := makeExprGrammar(t)
	h, err := NewPipeline(ProxyPrefix("P"), AuxPrefix("Q")).Run(g)
	require.NoError(t, err)
	t.Logf("\n%s", h)
	ruleShapes(t, h)
	const k = 6
	before, after := languages(g, k), languages(h, k)
	assert.Equal(t, words(before[g.Start()], true), words(after[h.Start()], true))
	for _, A := range h.NonTerminals().Values() {
		if !g.NonTerminals().Contains(A) {
			assert.Contains(t, []byte{'P', 'Q'}, A.Name[0], "unexpected name %s", A)
		}
	}
}

func TestIdempotence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.normalize")
	defer teardown()
	//
	b := chomsky.NewGrammarBuilder()
	b.LHS("S").N("A").N("B").End()
	b.LHS("S").N("B").N("B").End()
	b.LHS("S").Epsilon()
	b.LHS("A").T("a").End()
	b.LHS("B").N("A").N("B").End()
	b.LHS("B").T("b").End()
	cnf, err := b.Grammar()
	require.NoError(t, err)
	ok, _ := IsCNF(cnf)
	require.True(t, ok)
	h, err := ToCNF(cnf)
	require.NoError(t, err)
	assert.True(t, cnf.NonTerminals().Equals(h.NonTerminals()), "no new non-terminals")
	assert.Equal(t, cnf.Fingerprint(), h.Fingerprint())
	//
	g, err := ToCNF(makeGrammar(t))
	require.NoError(t, err)
	h, err = ToCNF(g)
	require.NoError(t, err)
	assert.True(t, g.NonTerminals().Equals(h.NonTerminals()), "no new non-terminals")
}

func TestIsCNF(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "chomsky.normalize")
	defer teardown()
	//
	tests := []struct {
		caption string
		build   func(b *chomsky.GrammarBuilder)
		cnf     bool
	}{
		{"binary and terminal", func(b *chomsky.GrammarBuilder) {
			b.LHS("S").N("A").N("A").End()
			b.LHS("A").T("a").End()
		}, true},
		{"ε at start", func(b *chomsky.GrammarBuilder) {
			b.LHS("S").Epsilon()
			b.LHS("S").T("a").End()
		}, true},
		{"ε at non-start", func(b *chomsky.GrammarBuilder) {
			b.LHS("S").N("A").N("A").End()
			b.LHS("A").Epsilon()
		}, false},
		{"unit production", func(b *chomsky.GrammarBuilder) {
			b.LHS("S").N("A").End()
			b.LHS("A").T("a").End()
		}, false},
		{"terminal in binary production", func(b *chomsky.GrammarBuilder) {
			b.LHS("S").T("a").N("S").End()
			b.LHS("S").T("a").End()
		}, false},
		{"long production", func(b *chomsky.GrammarBuilder) {
			b.LHS("S").N("S").N("S").N("S").End()
			b.LHS("S").T("a").End()
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.caption, func(t *testing.T) {
			b := chomsky.NewGrammarBuilder()
			tt.build(b)
			g, err := b.Grammar()
			require.NoError(t, err)
			ok, err := IsCNF(g)
			assert.Equal(t, tt.cnf, ok)
			if tt.cnf {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestNilGrammar(t *testing.T) {
	_, err := ToCNF(nil)
	assert.Error(t, err)
}
