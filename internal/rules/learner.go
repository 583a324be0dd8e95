// Package rules derives requires/excludes rules between categories
// from exposure co-occurrence counts: x requires y when every line
// containing x also contained y, x excludes y when no line containing
// x contained y. These rules are what a co-occurrence learner can
// recover without any transition structure.
package rules

import (
	"fmt"
	"strings"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

// Relation is the kind of co-occurrence rule.
type Relation string

const (
	// Requires means the symbol never appeared without the other.
	Requires Relation = "requires"
	// Excludes means the symbol never appeared with the other.
	Excludes Relation = "excludes"
)

// Rule is a single learned constraint between two categories.
type Rule struct {
	Symbol   grammar.Category `json:"symbol"`
	Relation Relation         `json:"relation"`
	Other    grammar.Category `json:"other"`
}

// String renders the rule in the classic report form, e.g.
// "a requires c".
func (r Rule) String() string {
	return fmt.Sprintf("%s %s %s", r.Symbol, r.Relation, r.Other)
}

// Learn extracts all rules supported by the exposure statistics, over
// the given alphabet in its order. Symbols never observed during
// exposure yield no rules.
func Learn(stats *exposure.Stats, alphabet []grammar.Category) []Rule {
	var out []Rule
	for _, sym := range alphabet {
		count := stats.Counts[sym]
		if count == 0 {
			continue
		}
		for _, other := range alphabet {
			if other == sym {
				continue
			}
			co := stats.Cooccurs[exposure.CoPair{Symbol: sym, Other: other}]
			switch {
			case co == count:
				out = append(out, Rule{Symbol: sym, Relation: Requires, Other: other})
			case co == 0:
				out = append(out, Rule{Symbol: sym, Relation: Excludes, Other: other})
			}
		}
	}
	return out
}

// Satisfied reports whether seq obeys the rule. Rules about symbols
// absent from the sequence are trivially satisfied; use Applies to
// filter those out first.
func (r Rule) Satisfied(seq grammar.Sequence) bool {
	if !contains(seq, r.Symbol) {
		return true
	}
	present := contains(seq, r.Other)
	if r.Relation == Requires {
		return present
	}
	return !present
}

// Applies reports whether the rule constrains seq at all, i.e. whether
// the rule's subject symbol occurs in the sequence.
func (r Rule) Applies(seq grammar.Sequence) bool {
	return contains(seq, r.Symbol)
}

// Report renders one rule per line in learning order, matching the
// classic aglearn console report.
func Report(rules []Rule) string {
	var b strings.Builder
	for _, r := range rules {
		b.WriteString(r.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func contains(seq grammar.Sequence, c grammar.Category) bool {
	for _, s := range seq {
		if s == c {
			return true
		}
	}
	return false
}
