// Package judges implements grammar-blind baseline scoring strategies.
// Each judge assigns a grammaticality-like score to a test sequence
// using only exposure-phase statistics, never the true grammar. The
// hypothesis under test is that these naive heuristics alone reproduce
// human judgment patterns, so every scoring rule here is exact and
// deterministic.
package judges

import (
	"fmt"
	"sort"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

// Judge scores sequences from exposure statistics alone. Score must be
// a total function over any well-formed sequence: out-of-alphabet
// categories degrade to 0, never an error. Scores are deterministic
// given the same (sequence, stats) input.
type Judge interface {
	// Name identifies the judge in reports and run history.
	Name() string

	// Score returns a non-negative grammaticality-like score, higher
	// meaning more acceptable to this strategy.
	Score(seq grammar.Sequence, stats *exposure.Stats) float64
}

// Judgment pairs a test sequence with one judge's score for it.
type Judgment struct {
	Sequence grammar.Sequence
	Score    float64
}

// ScoreAll scores every sequence in the test set with one judge,
// preserving test-set order.
func ScoreAll(j Judge, testSet []grammar.Sequence, stats *exposure.Stats) []Judgment {
	out := make([]Judgment, len(testSet))
	for i, seq := range testSet {
		out[i] = Judgment{Sequence: seq, Score: j.Score(seq, stats)}
	}
	return out
}

// Rank sorts judgments by score descending. Equal scores rank in the
// sequence total order (lexicographic by category, shorter first), so
// ranking is fully deterministic. The input is not modified.
func Rank(judgments []Judgment) []Judgment {
	out := make([]Judgment, len(judgments))
	copy(out, judgments)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].Sequence.Compare(out[j].Sequence) < 0
	})
	return out
}

// All returns the closed set of baseline judges in report order. The
// co-occurrence judge needs the alphabet to learn its rules.
func All(alphabet []grammar.Category) []Judge {
	return []Judge{
		NewTransitional(),
		NewPositional(),
		NewChunk(),
		NewCooccurrence(alphabet),
	}
}

// ByName returns the judge with the given name from All, or an error
// listing the valid names.
func ByName(name string, alphabet []grammar.Category) (Judge, error) {
	all := All(alphabet)
	names := make([]string, len(all))
	for i, j := range all {
		names[i] = j.Name()
		if j.Name() == name {
			return j, nil
		}
	}
	return nil, fmt.Errorf("judges: unknown judge %q (valid: %v)", name, names)
}
