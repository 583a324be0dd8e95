package judges

import (
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/rules"
)

// Cooccurrence scores a sequence by the fraction of learned
// requires/excludes rules it satisfies, counting only rules whose
// subject symbol occurs in the sequence. Rules are learned fresh from
// the exposure statistics on every call, so the judge stays a pure
// function of (sequence, stats). A sequence no rule applies to scores
// 0, the degraded minimum for fully unfamiliar material.
type Cooccurrence struct {
	alphabet []grammar.Category
}

// NewCooccurrence creates the co-occurrence judge over the given
// category alphabet.
func NewCooccurrence(alphabet []grammar.Category) *Cooccurrence {
	return &Cooccurrence{alphabet: alphabet}
}

// Name implements Judge.
func (*Cooccurrence) Name() string { return "cooccurrence" }

// Score implements Judge.
func (c *Cooccurrence) Score(seq grammar.Sequence, stats *exposure.Stats) float64 {
	learned := rules.Learn(stats, c.alphabet)
	applicable, satisfied := 0, 0
	for _, r := range learned {
		if !r.Applies(seq) {
			continue
		}
		applicable++
		if r.Satisfied(seq) {
			satisfied++
		}
	}
	if applicable == 0 {
		return 0
	}
	return float64(satisfied) / float64(applicable)
}
