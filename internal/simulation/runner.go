package simulation

import (
	"testing"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/config"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/enumerate"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/evaluate"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/judges"
)

// Result captures everything one scenario run produced.
type Result struct {
	Grammar  *grammar.Grammar
	Full     *enumerate.SequenceSet
	Short    *enumerate.SequenceSet
	Stats    *exposure.Stats
	TestSet  []grammar.Sequence
	Scores   map[string][]judges.Judgment
	Compared []evaluate.ComparisonResult
}

// Runner drives scenarios through the same pipeline the CLI uses.
type Runner struct {
	t *testing.T
}

// NewRunner creates a simulation runner.
func NewRunner(t *testing.T) *Runner {
	t.Helper()
	return &Runner{t: t}
}

// Run executes the scenario: build the grammar, enumerate both
// sequence sets, accumulate exposure statistics, score the test set
// with every judge, and evaluate against truth and reference data.
func (r *Runner) Run(s Scenario) Result {
	r.t.Helper()

	gc := s.Grammar
	if gc == nil {
		gc = &config.Default().Grammar
	}
	g, err := gc.ToGrammar()
	if err != nil {
		r.t.Fatalf("%s: grammar: %v", s.Name, err)
	}

	fullLen := s.FullLength
	if fullLen == 0 {
		fullLen = config.Default().Lengths.Full
	}
	shortLen := s.ShortLength
	if shortLen == 0 {
		shortLen = config.Default().Lengths.Short
	}

	enum := enumerate.New(g)
	full := enum.All(fullLen)
	short := full.Truncate(shortLen)

	var exposed []grammar.Sequence
	for i, line := range s.Exposure {
		seq := grammar.ParseSequence(line)
		if err := g.ValidateSequence(seq); err != nil {
			r.t.Fatalf("%s: exposure line %d: %v", s.Name, i+1, err)
		}
		exposed = append(exposed, seq)
	}
	stats := exposure.NewStats(exposed)

	testSet := full.Sequences()
	if len(s.TestItems) > 0 {
		testSet = make([]grammar.Sequence, len(s.TestItems))
		for i, line := range s.TestItems {
			// Test items may leave the alphabet on purpose; judges
			// must degrade, so no validation here.
			testSet[i] = grammar.ParseSequence(line)
		}
	}

	all := judges.All(g.Alphabet())
	scores := make(map[string][]judges.Judgment, len(all))
	for _, j := range all {
		scores[j.Name()] = judges.ScoreAll(j, testSet, stats)
	}

	return Result{
		Grammar:  g,
		Full:     full,
		Short:    short,
		Stats:    stats,
		TestSet:  testSet,
		Scores:   scores,
		Compared: evaluate.EvaluateAll(all, testSet, stats, g, s.Reference),
	}
}
