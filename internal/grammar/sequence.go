package grammar

import "strings"

// Category is a grammatical-class symbol in the artificial grammar.
// Categories compare by value; the zero value is not a valid category.
type Category string

// Sequence is an ordered run of categories, the unit judged for
// grammaticality. Sequences are value types: copy freely, compare
// element-wise.
type Sequence []Category

// ParseSequence parses a whitespace-separated line of category symbols.
// An empty or all-whitespace line yields an empty sequence.
func ParseSequence(line string) Sequence {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	seq := make(Sequence, len(fields))
	for i, f := range fields {
		seq[i] = Category(f)
	}
	return seq
}

// String renders the sequence in the fixture format: symbols joined by
// single spaces.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, c := range s {
		parts[i] = string(c)
	}
	return strings.Join(parts, " ")
}

// Equal reports whether two sequences contain the same categories in
// the same order.
func (s Sequence) Equal(other Sequence) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Compare orders sequences lexicographically by category, with a shorter
// sequence sorting before any sequence it prefixes. This is the single
// tie-break order used by the enumerator and by judgment ranking.
func (s Sequence) Compare(other Sequence) int {
	n := len(s)
	if len(other) < n {
		n = len(other)
	}
	for i := 0; i < n; i++ {
		if s[i] != other[i] {
			if s[i] < other[i] {
				return -1
			}
			return 1
		}
	}
	switch {
	case len(s) < len(other):
		return -1
	case len(s) > len(other):
		return 1
	default:
		return 0
	}
}

// Clone returns an independent copy of the sequence.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)
	return out
}
