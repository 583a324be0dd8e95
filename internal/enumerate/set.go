package enumerate

import (
	"sort"
	"strings"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

// SequenceSet is an ordered set of unique sequences. Order is the
// sequence total order (lexicographic by category, shorter prefix
// first), so two sets with the same members render identically.
type SequenceSet struct {
	seqs []grammar.Sequence
	keys map[string]bool
}

// NewSequenceSet builds a set from the given sequences, deduplicating
// and sorting. The input is not retained.
func NewSequenceSet(seqs []grammar.Sequence) *SequenceSet {
	s := &SequenceSet{keys: make(map[string]bool, len(seqs))}
	for _, seq := range seqs {
		s.add(seq)
	}
	s.sort()
	return s
}

func (s *SequenceSet) add(seq grammar.Sequence) {
	key := seq.String()
	if s.keys[key] {
		return
	}
	s.keys[key] = true
	s.seqs = append(s.seqs, seq.Clone())
}

func (s *SequenceSet) sort() {
	sort.Slice(s.seqs, func(i, j int) bool {
		return s.seqs[i].Compare(s.seqs[j]) < 0
	})
}

// Len returns the number of sequences in the set.
func (s *SequenceSet) Len() int { return len(s.seqs) }

// Sequences returns the members in set order. The returned slice must
// not be modified.
func (s *SequenceSet) Sequences() []grammar.Sequence { return s.seqs }

// Contains reports whether seq is a member.
func (s *SequenceSet) Contains(seq grammar.Sequence) bool {
	return s.keys[seq.String()]
}

// Truncate returns the members of length <= maxLen as a new set. The
// result is a subset of the receiver under the same order.
func (s *SequenceSet) Truncate(maxLen int) *SequenceSet {
	out := &SequenceSet{keys: make(map[string]bool)}
	for _, seq := range s.seqs {
		if len(seq) <= maxLen {
			out.add(seq)
		}
	}
	// Source order is already sorted; filtering preserves it.
	return out
}

// Lines renders the set one sequence per line, matching the fixture
// file format. The final line carries a trailing newline.
func (s *SequenceSet) Lines() string {
	var b strings.Builder
	for _, seq := range s.seqs {
		b.WriteString(seq.String())
		b.WriteByte('\n')
	}
	return b.String()
}
