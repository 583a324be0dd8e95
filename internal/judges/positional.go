package judges

import (
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

// Positional scores a sequence by how familiar each category is at its
// position: the mean over positions i of the fraction of exposure
// lines that carried the same category at position i. Transition
// structure is ignored entirely. Symbols never seen at a position
// contribute 0, so out-of-alphabet symbols degrade the mean rather
// than erroring.
type Positional struct{}

// NewPositional creates the positional-frequency judge.
func NewPositional() Positional { return Positional{} }

// Name implements Judge.
func (Positional) Name() string { return "positional" }

// Score implements Judge.
func (Positional) Score(seq grammar.Sequence, stats *exposure.Stats) float64 {
	if len(seq) == 0 {
		return 0
	}
	sum := 0.0
	for i, sym := range seq {
		sum += stats.PositionProb(sym, i)
	}
	return sum / float64(len(seq))
}
