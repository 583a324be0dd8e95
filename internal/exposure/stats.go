// Package exposure builds the frequency tables a simulated learner
// accumulates during the exposure phase: symbol counts, adjacent
// bigrams, position-indexed counts, contiguous chunks, and per-line
// co-occurrence. Judges consume these tables instead of the grammar.
package exposure

import (
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

// Bigram is an adjacent (First, Second) category pair observed during
// exposure.
type Bigram struct {
	First  grammar.Category
	Second grammar.Category
}

// Positional indexes a category by its zero-based position in a line.
type Positional struct {
	Category grammar.Category
	Position int
}

// CoPair is an ordered (Symbol, Other) pair for within-line
// co-occurrence counting. Ordered: counts for (x, y) and (y, x) are
// tracked separately, matching the rule learner's needs.
type CoPair struct {
	Symbol grammar.Category
	Other  grammar.Category
}

// Stats holds everything counted from one exposure stream. Build with
// NewStats; treat as read-only afterwards.
type Stats struct {
	// Lines is the number of exposure sequences observed.
	Lines int

	// Counts is the total number of occurrences per category.
	Counts map[grammar.Category]int

	// Bigrams counts adjacent pairs across all lines.
	Bigrams map[Bigram]int

	// Positions counts category occurrences per line position.
	Positions map[Positional]int

	// Chunks counts every contiguous subsequence of length >= 2,
	// keyed by its space-joined rendering.
	Chunks map[string]int

	// Cooccurs counts, for each ordered pair (x, y), the number of
	// lines in which x occurred with y present elsewhere in the line.
	Cooccurs map[CoPair]int

	// MaxLineLen is the longest observed line, bounding positional
	// normalization.
	MaxLineLen int
}

// NewStats accumulates statistics over the given exposure sequences.
func NewStats(seqs []grammar.Sequence) *Stats {
	s := &Stats{
		Counts:    make(map[grammar.Category]int),
		Bigrams:   make(map[Bigram]int),
		Positions: make(map[Positional]int),
		Chunks:    make(map[string]int),
		Cooccurs:  make(map[CoPair]int),
	}
	for _, seq := range seqs {
		s.observe(seq)
	}
	return s
}

func (s *Stats) observe(seq grammar.Sequence) {
	if len(seq) == 0 {
		return
	}
	s.Lines++
	if len(seq) > s.MaxLineLen {
		s.MaxLineLen = len(seq)
	}

	for i, sym := range seq {
		s.Counts[sym]++
		s.Positions[Positional{Category: sym, Position: i}]++
		if i+1 < len(seq) {
			s.Bigrams[Bigram{First: sym, Second: seq[i+1]}]++
		}
	}

	for n := 2; n <= len(seq); n++ {
		for i := 0; i+n <= len(seq); i++ {
			s.Chunks[seq[i:i+n].String()]++
		}
	}

	// Co-occurrence counts one observation per line for each symbol
	// token against the set of distinct other symbols in the line.
	for i, sym := range seq {
		others := make(map[grammar.Category]bool)
		for j, other := range seq {
			if j != i {
				others[other] = true
			}
		}
		for other := range others {
			s.Cooccurs[CoPair{Symbol: sym, Other: other}]++
		}
	}
}

// TransitionProb returns the conditional probability estimate
// P(second | first) = bigram count / unigram count of first, or 0 when
// first was never observed.
func (s *Stats) TransitionProb(first, second grammar.Category) float64 {
	total := s.Counts[first]
	if total == 0 {
		return 0
	}
	return float64(s.Bigrams[Bigram{First: first, Second: second}]) / float64(total)
}

// PositionProb returns the fraction of exposure lines with sym at the
// given zero-based position, or 0 with no exposure.
func (s *Stats) PositionProb(sym grammar.Category, pos int) float64 {
	if s.Lines == 0 {
		return 0
	}
	return float64(s.Positions[Positional{Category: sym, Position: pos}]) / float64(s.Lines)
}

// ChunkSeen reports whether the given contiguous subsequence occurred
// verbatim inside any exposure line.
func (s *Stats) ChunkSeen(chunk grammar.Sequence) bool {
	return s.Chunks[chunk.String()] > 0
}
