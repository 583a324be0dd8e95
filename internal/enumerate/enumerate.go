// Package enumerate walks the grammar's transition graph to produce
// the complete set of grammatical sequences up to a length bound. The
// result is deterministic: depth-first over sorted start categories
// and sorted successors, deduplicated, then sorted into the sequence
// total order so output is byte-identical across runs and diff-able
// against the oracle fixtures.
package enumerate

import (
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

// Enumerator produces grammatical sequence sets for one grammar.
type Enumerator struct {
	g *grammar.Grammar
}

// New creates an enumerator over g.
func New(g *grammar.Grammar) *Enumerator {
	return &Enumerator{g: g}
}

// All returns every grammatical sequence of length 1..maxLen. A bound
// below the minimal legal path length yields an empty set, not an
// error.
func (e *Enumerator) All(maxLen int) *SequenceSet {
	set := &SequenceSet{keys: make(map[string]bool)}
	if maxLen < 1 {
		return set
	}

	path := make(grammar.Sequence, 0, maxLen)
	var walk func(cur grammar.Category)
	walk = func(cur grammar.Category) {
		path = append(path, cur)
		if e.g.IsEnd(cur) {
			set.add(path)
		}
		if len(path) < maxLen {
			for _, next := range e.g.Successors(cur) {
				walk(next)
			}
		}
		path = path[:len(path)-1]
	}
	for _, start := range e.g.Starts() {
		walk(start)
	}

	set.sort()
	return set
}
