package normalize

import (
	"fmt"

	"github.com/npillmayer/chomsky"
)

// === Pipeline ==============================================================

// Stage is a single step of the normalization pipeline.
type Stage struct {
	Name        string
	Description string
	apply       func(*chomsky.Grammar, *Namer) (*chomsky.Grammar, error)
}

// Apply runs the stage on g. Stages which introduce new symbols draw names
// from namer; if namer is nil, a fresh namer for g is used.
func (s Stage) Apply(g *chomsky.Grammar, namer *Namer) (*chomsky.Grammar, error) {
	if namer == nil {
		namer = NewNamer(g)
	}
	return s.apply(g, namer)
}

func (s Stage) String() string {
	return s.Name
}

// Stage names of the standard pipeline.
const (
	StageNull       = "null"
	StageUnit       = "unit"
	StageProductive = "productive"
	StageAccessible = "accessible"
	StageBinarize   = "binarize"
)

func withoutNamer(f func(*chomsky.Grammar) (*chomsky.Grammar, error)) func(*chomsky.Grammar, *Namer) (*chomsky.Grammar, error) {
	return func(g *chomsky.Grammar, _ *Namer) (*chomsky.Grammar, error) {
		return f(g)
	}
}

// standardStages is the order of stages leading to Chomsky Normal Form.
// Each stage preserves the properties established by its predecessors.
var standardStages = []Stage{
	{StageNull, "remove ε-productions", withoutNamer(RemoveNullProductions)},
	{StageUnit, "remove unit productions", withoutNamer(RemoveUnitProductions)},
	{StageProductive, "remove non-productive symbols", withoutNamer(RemoveNonProductiveSymbols)},
	{StageAccessible, "remove inaccessible symbols", withoutNamer(RemoveInaccessibleSymbols)},
	{StageBinarize, "isolate terminals and split long productions", Binarize},
}

// Pipeline chains the normalization stages. A pipeline holds no state
// between runs and may be reused.
type Pipeline struct {
	stages []Stage
	opts   []NamerOption
}

// NewPipeline creates the standard pipeline to Chomsky Normal Form.
// Options configure the namer of each run.
func NewPipeline(opts ...NamerOption) *Pipeline {
	stages := make([]Stage, len(standardStages))
	copy(stages, standardStages)
	return &Pipeline{stages: stages, opts: opts}
}

// Stages returns the stages of p, in order.
func (p *Pipeline) Stages() []Stage {
	stages := make([]Stage, len(p.stages))
	copy(stages, p.stages)
	return stages
}

// Stage finds a stage by name.
func (p *Pipeline) Stage(name string) (Stage, bool) {
	for _, s := range p.stages {
		if s.Name == name {
			return s, true
		}
	}
	return Stage{}, false
}

// NewNamer creates a namer for a run on g, configured with the options
// of p.
func (p *Pipeline) NewNamer(g *chomsky.Grammar) *Namer {
	return NewNamer(g, p.opts...)
}

// StageResult is the grammar produced by a stage.
type StageResult struct {
	Stage   string
	Grammar *chomsky.Grammar
}

// Run transforms g into Chomsky Normal Form.
func (p *Pipeline) Run(g *chomsky.Grammar) (*chomsky.Grammar, error) {
	results, err := p.Trace(g)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return g, nil
	}
	return results[len(results)-1].Grammar, nil
}

// Trace transforms g into Chomsky Normal Form and returns the grammars
// produced by each stage.
func (p *Pipeline) Trace(g *chomsky.Grammar) ([]StageResult, error) {
	if g == nil {
		return nil, fmt.Errorf("normalize: grammar is nil")
	}
	namer := p.NewNamer(g)
	results := make([]StageResult, 0, len(p.stages))
	for _, stage := range p.stages {
		tracer().Debugf("--- stage %s ---", stage.Name)
		next, err := stage.apply(g, namer)
		if err != nil {
			return results, err
		}
		results = append(results, StageResult{Stage: stage.Name, Grammar: next})
		g = next
	}
	return results, nil
}

// ToCNF transforms g into Chomsky Normal Form, using the standard pipeline.
func ToCNF(g *chomsky.Grammar) (*chomsky.Grammar, error) {
	return NewPipeline().Run(g)
}
