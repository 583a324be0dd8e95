package simulation

import (
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/config"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/evaluate"
)

// Scenario defines a complete simulated experiment: the grammar under
// study, what the learner saw, and what it is tested on.
type Scenario struct {
	Name string

	// Grammar is the declarative grammar definition. Nil means the
	// default study grammar.
	Grammar *config.GrammarConfig

	// FullLength and ShortLength bound the enumeration. Zero values
	// take the study defaults.
	FullLength  int
	ShortLength int

	// Exposure is the training stream, one line per observed sequence.
	Exposure []string

	// TestItems is the test phase, one line per judged sequence. Empty
	// means "judge the enumerated full set".
	TestItems []string

	// Reference is the human-accuracy lookup. Items absent from it are
	// excluded from correlations and counted.
	Reference evaluate.ReferenceTable
}
