// Package grammar defines the finite-state artificial grammar: a small
// category alphabet, a legal-transition relation, and legal start/end
// categories. A sequence is grammatical iff it traces a start-to-end
// walk using only legal transitions.
package grammar

import (
	"fmt"
	"sort"
)

// Grammar is an immutable finite-state grammar. Build one with New;
// the zero value accepts nothing.
type Grammar struct {
	categories map[Category]bool
	// transitions maps each category to its legal successors, sorted,
	// so traversal order is deterministic.
	transitions map[Category][]Category
	start       map[Category]bool
	end         map[Category]bool

	alphabet []Category // sorted view of categories
	starts   []Category // sorted view of start
}

// Transition is a single legal (From -> To) step in the grammar.
type Transition struct {
	From Category
	To   Category
}

// New validates and builds a grammar. Every transition endpoint and
// every start/end category must be in the alphabet; duplicates in any
// input are tolerated.
func New(categories []Category, transitions []Transition, start, end []Category) (*Grammar, error) {
	if len(categories) == 0 {
		return nil, fmt.Errorf("grammar: empty category alphabet")
	}

	g := &Grammar{
		categories:  make(map[Category]bool, len(categories)),
		transitions: make(map[Category][]Category),
		start:       make(map[Category]bool, len(start)),
		end:         make(map[Category]bool, len(end)),
	}
	for _, c := range categories {
		if c == "" {
			return nil, fmt.Errorf("grammar: empty category symbol")
		}
		g.categories[c] = true
	}

	for _, t := range transitions {
		if !g.categories[t.From] {
			return nil, fmt.Errorf("grammar: transition %s -> %s: unknown category %q", t.From, t.To, t.From)
		}
		if !g.categories[t.To] {
			return nil, fmt.Errorf("grammar: transition %s -> %s: unknown category %q", t.From, t.To, t.To)
		}
		if !containsCategory(g.transitions[t.From], t.To) {
			g.transitions[t.From] = append(g.transitions[t.From], t.To)
		}
	}
	for from := range g.transitions {
		succ := g.transitions[from]
		sort.Slice(succ, func(i, j int) bool { return succ[i] < succ[j] })
	}

	if len(start) == 0 {
		return nil, fmt.Errorf("grammar: no start categories")
	}
	for _, c := range start {
		if !g.categories[c] {
			return nil, fmt.Errorf("grammar: start category %q not in alphabet", c)
		}
		g.start[c] = true
	}
	if len(end) == 0 {
		return nil, fmt.Errorf("grammar: no end categories")
	}
	for _, c := range end {
		if !g.categories[c] {
			return nil, fmt.Errorf("grammar: end category %q not in alphabet", c)
		}
		g.end[c] = true
	}

	g.alphabet = sortedKeys(g.categories)
	g.starts = sortedKeys(g.start)
	return g, nil
}

// Alphabet returns the category alphabet in sorted order. The returned
// slice must not be modified.
func (g *Grammar) Alphabet() []Category { return g.alphabet }

// Starts returns the legal start categories in sorted order. The
// returned slice must not be modified.
func (g *Grammar) Starts() []Category { return g.starts }

// Successors returns the legal successors of c in sorted order. The
// returned slice must not be modified.
func (g *Grammar) Successors(c Category) []Category { return g.transitions[c] }

// Contains reports whether c is in the category alphabet.
func (g *Grammar) Contains(c Category) bool { return g.categories[c] }

// IsStart reports whether c is a legal start category.
func (g *Grammar) IsStart(c Category) bool { return g.start[c] }

// IsEnd reports whether c is a legal end category.
func (g *Grammar) IsEnd(c Category) bool { return g.end[c] }

// IsGrammatical reports whether seq is a legal start-to-end walk. It is
// pure and total: empty sequences, out-of-alphabet categories, and
// broken walks all return false rather than an error.
func (g *Grammar) IsGrammatical(seq Sequence) bool {
	if len(seq) == 0 {
		return false
	}
	for _, c := range seq {
		if !g.categories[c] {
			return false
		}
	}
	if !g.start[seq[0]] {
		return false
	}
	for i := 0; i < len(seq)-1; i++ {
		if !containsCategory(g.transitions[seq[i]], seq[i+1]) {
			return false
		}
	}
	return g.end[seq[len(seq)-1]]
}

// ValidateSequence returns a descriptive error naming the first
// out-of-alphabet category in seq, or nil if all categories are known.
// Loaders use this to fail fast on malformed input; scoring paths use
// IsGrammatical, which never errors.
func (g *Grammar) ValidateSequence(seq Sequence) error {
	for i, c := range seq {
		if !g.categories[c] {
			return fmt.Errorf("grammar: unknown category %q at position %d", c, i)
		}
	}
	return nil
}

func containsCategory(cs []Category, c Category) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}

func sortedKeys(m map[Category]bool) []Category {
	out := make([]Category, 0, len(m))
	for c := range m {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
