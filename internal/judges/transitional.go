package judges

import (
	"math"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

// Transitional scores a sequence by the geometric mean of observed
// transitional probabilities P(next | current) over its adjacent
// pairs. A single never-observed transition drives the score to 0;
// sequences shorter than two symbols score 0 (there is nothing
// transitional about them). The geometric mean keeps scores comparable
// across sequence lengths.
type Transitional struct{}

// NewTransitional creates the transitional-probability judge.
func NewTransitional() Transitional { return Transitional{} }

// Name implements Judge.
func (Transitional) Name() string { return "transitional" }

// Score implements Judge.
func (Transitional) Score(seq grammar.Sequence, stats *exposure.Stats) float64 {
	if len(seq) < 2 {
		return 0
	}
	product := 1.0
	for i := 0; i < len(seq)-1; i++ {
		p := stats.TransitionProb(seq[i], seq[i+1])
		if p == 0 {
			return 0
		}
		product *= p
	}
	return math.Pow(product, 1/float64(len(seq)-1))
}
