// Package evaluate compares baseline-judge scores against ground-truth
// grammaticality and against published human response accuracy. It
// never mutates its inputs; every run over the same inputs yields the
// same ComparisonResult.
package evaluate

import (
	"sort"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/judges"
)

// ReferenceTable maps a test item (its space-joined sequence string)
// to the published human response accuracy for that item.
type ReferenceTable map[string]float64

// ComparisonResult aggregates one judge's performance on a test set.
type ComparisonResult struct {
	// Judge is the judge's name.
	Judge string `json:"judge"`

	// Items is the number of test items scored.
	Items int `json:"items"`

	// Excluded is the number of test items absent from the reference
	// table and therefore left out of the correlation. Never folded
	// into the correlation as a default value.
	Excluded int `json:"excluded"`

	// Spearman is the rank correlation between judge scores and human
	// accuracy over the non-excluded items.
	Spearman float64 `json:"spearman"`

	// Agreement is the fraction of items where a median-split call on
	// the judge's scores matches true grammaticality.
	Agreement float64 `json:"agreement"`

	// GrammaticalMean and UngrammaticalMean are the judge's mean
	// scores over the two ground-truth groups, for side-by-side
	// separation reporting.
	GrammaticalMean   float64 `json:"grammatical_mean"`
	UngrammaticalMean float64 `json:"ungrammatical_mean"`
}

// Evaluate scores the test set with one judge and compares the
// judgments against the grammar and the reference table.
func Evaluate(j judges.Judge, testSet []grammar.Sequence, stats *exposure.Stats, g *grammar.Grammar, ref ReferenceTable) ComparisonResult {
	jm := judges.ScoreAll(j, testSet, stats)
	res := ComparisonResult{Judge: j.Name(), Items: len(jm)}

	// Correlation against human accuracy, excluding items the table
	// does not cover.
	var scores, human []float64
	for _, judgment := range jm {
		acc, ok := ref[judgment.Sequence.String()]
		if !ok {
			res.Excluded++
			continue
		}
		scores = append(scores, judgment.Score)
		human = append(human, acc)
	}
	res.Spearman = SpearmanRho(scores, human)

	// Agreement against ground truth via a median split of scores.
	med := median(jm)
	var agree int
	var gramSum, ungramSum float64
	var gramN, ungramN int
	for _, judgment := range jm {
		truth := g.IsGrammatical(judgment.Sequence)
		if (judgment.Score > med) == truth {
			agree++
		}
		if truth {
			gramSum += judgment.Score
			gramN++
		} else {
			ungramSum += judgment.Score
			ungramN++
		}
	}
	if len(jm) > 0 {
		res.Agreement = float64(agree) / float64(len(jm))
	}
	if gramN > 0 {
		res.GrammaticalMean = gramSum / float64(gramN)
	}
	if ungramN > 0 {
		res.UngrammaticalMean = ungramSum / float64(ungramN)
	}
	return res
}

// EvaluateAll runs every judge against the same test set and returns
// per-judge results in judge order for side-by-side comparison.
func EvaluateAll(js []judges.Judge, testSet []grammar.Sequence, stats *exposure.Stats, g *grammar.Grammar, ref ReferenceTable) []ComparisonResult {
	out := make([]ComparisonResult, len(js))
	for i, j := range js {
		out[i] = Evaluate(j, testSet, stats, g, ref)
	}
	return out
}

// median returns the median score of the judgments, or 0 for an empty
// set.
func median(jm []judges.Judgment) float64 {
	if len(jm) == 0 {
		return 0
	}
	scores := make([]float64, len(jm))
	for i, j := range jm {
		scores[i] = j.Score
	}
	sort.Float64s(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 1 {
		return scores[mid]
	}
	return (scores[mid-1] + scores[mid]) / 2
}
