package fixtures

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/enumerate"
)

// ErrOracleMismatch marks a divergence between the enumerator and an
// oracle fixture. It means the grammar definition and the enumerator
// no longer agree and must be treated as build-breaking, never
// silently ignored.
var ErrOracleMismatch = errors.New("fixtures: enumeration does not match oracle")

// Verify compares an enumerated set against oracle lines. Comparison
// is order-normalized, so only membership matters; the error lists
// every missing and unexpected sequence by name.
func Verify(set *enumerate.SequenceSet, oracle []string) error {
	want := make(map[string]bool, len(oracle))
	for _, line := range oracle {
		want[strings.Join(strings.Fields(line), " ")] = true
	}
	got := make(map[string]bool, set.Len())
	for _, seq := range set.Sequences() {
		got[seq.String()] = true
	}

	var missing, extra []string
	for key := range want {
		if !got[key] {
			missing = append(missing, key)
		}
	}
	for key := range got {
		if !want[key] {
			extra = append(extra, key)
		}
	}
	if len(missing) == 0 && len(extra) == 0 {
		return nil
	}
	sort.Strings(missing)
	sort.Strings(extra)
	return fmt.Errorf("%w: missing %d %v, unexpected %d %v",
		ErrOracleMismatch, len(missing), missing, len(extra), extra)
}

// VerifyAll checks the enumerator against both oracle fixtures: the
// full set at FullLength and its ShortLength truncation.
func VerifyAll(e *enumerate.Enumerator) error {
	full := e.All(FullLength)
	if err := Verify(full, FullSequences()); err != nil {
		return fmt.Errorf("full set (length %d): %w", FullLength, err)
	}
	if err := Verify(full.Truncate(ShortLength), ShortSequences()); err != nil {
		return fmt.Errorf("truncated set (length %d): %w", ShortLength, err)
	}
	return nil
}
