package simulation

import (
	"testing"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

// AssertSetEquals asserts that the full enumerated set is exactly the
// given sequences, order-independent.
func AssertSetEquals(t *testing.T, result Result, want ...string) {
	t.Helper()
	if result.Full.Len() != len(want) {
		t.Errorf("AssertSetEquals: enumerated %d sequences, want %d:\n%s", result.Full.Len(), len(want), result.Full.Lines())
	}
	for _, line := range want {
		if !result.Full.Contains(grammar.ParseSequence(line)) {
			t.Errorf("AssertSetEquals: full set missing %q", line)
		}
	}
}

// AssertShortSubset asserts that the truncated set is exactly the
// length-filtered full set.
func AssertShortSubset(t *testing.T, result Result, maxLen int) {
	t.Helper()
	for _, seq := range result.Short.Sequences() {
		if len(seq) > maxLen {
			t.Errorf("AssertShortSubset: %q has length %d > %d", seq, len(seq), maxLen)
		}
		if !result.Full.Contains(seq) {
			t.Errorf("AssertShortSubset: %q not in the full set", seq)
		}
	}
	for _, seq := range result.Full.Sequences() {
		if len(seq) <= maxLen && !result.Short.Contains(seq) {
			t.Errorf("AssertShortSubset: full-set %q (length %d) missing from short set", seq, len(seq))
		}
	}
}

// AssertScoreOrdering asserts that one judge scored the higher item
// strictly above the lower one.
func AssertScoreOrdering(t *testing.T, result Result, judge, higher, lower string) {
	t.Helper()
	hi, ok := scoreOf(result, judge, higher)
	if !ok {
		t.Errorf("AssertScoreOrdering: %s never scored %q", judge, higher)
		return
	}
	lo, ok := scoreOf(result, judge, lower)
	if !ok {
		t.Errorf("AssertScoreOrdering: %s never scored %q", judge, lower)
		return
	}
	if hi <= lo {
		t.Errorf("AssertScoreOrdering: %s scored %q at %.6f, not above %q at %.6f", judge, higher, hi, lower, lo)
	}
}

// AssertScore asserts one judge's exact score for an item.
func AssertScore(t *testing.T, result Result, judge, item string, want float64) {
	t.Helper()
	got, ok := scoreOf(result, judge, item)
	if !ok {
		t.Errorf("AssertScore: %s never scored %q", judge, item)
		return
	}
	if got != want {
		t.Errorf("AssertScore: %s scored %q at %v, want %v", judge, item, got, want)
	}
}

// AssertExcludedCount asserts the evaluator's exclusion count for one
// judge.
func AssertExcludedCount(t *testing.T, result Result, judge string, want int) {
	t.Helper()
	for _, cr := range result.Compared {
		if cr.Judge != judge {
			continue
		}
		if cr.Excluded != want {
			t.Errorf("AssertExcludedCount: %s excluded %d items, want %d", judge, cr.Excluded, want)
		}
		return
	}
	t.Errorf("AssertExcludedCount: no comparison result for judge %s", judge)
}

func scoreOf(result Result, judge, item string) (float64, bool) {
	want := grammar.ParseSequence(item)
	for _, jm := range result.Scores[judge] {
		if jm.Sequence.Equal(want) {
			return jm.Score, true
		}
	}
	return 0, false
}
