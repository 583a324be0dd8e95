package judges

import (
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

// Chunk scores a sequence by verbatim sub-sequence overlap with the
// exposure stream: the fraction of its contiguous windows (length 2 up
// to the full sequence) that occurred inside some exposure line. A
// sequence assembled entirely from familiar chunks scores 1 even when
// the whole string was never observed. Sequences shorter than two
// symbols have no windows and score 0.
type Chunk struct{}

// NewChunk creates the chunk-overlap judge.
func NewChunk() Chunk { return Chunk{} }

// Name implements Judge.
func (Chunk) Name() string { return "chunk" }

// Score implements Judge.
func (Chunk) Score(seq grammar.Sequence, stats *exposure.Stats) float64 {
	if len(seq) < 2 {
		return 0
	}
	windows, seen := 0, 0
	for n := 2; n <= len(seq); n++ {
		for i := 0; i+n <= len(seq); i++ {
			windows++
			if stats.ChunkSeen(seq[i : i+n]) {
				seen++
			}
		}
	}
	return float64(seen) / float64(windows)
}
