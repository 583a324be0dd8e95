// Package fixtures ships the fixed data tables of the reference study
// as embedded assets: the oracle sequence lists, the exposure-phase
// training stream, the test items, and the published human-accuracy
// table. The oracle files are golden outputs: the enumerator must
// reproduce them exactly, and Verify surfaces any divergence loudly.
package fixtures

import (
	"embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/config"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/evaluate"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

//go:embed data/*.txt data/*.yaml
var data embed.FS

// Study bounds: every legal sentence of the study grammar fits in
// FullLength categories; the truncated set keeps those up to
// ShortLength.
const (
	FullLength  = 7
	ShortLength = 5
)

// Grammar returns the study grammar: the finite-state transition
// structure over the six-category alphabet, with a as the only start
// and f as the only end category. The definition lives in
// config.Default so configured and fixture runs share one source.
func Grammar() *grammar.Grammar {
	g, err := config.Default().Grammar.ToGrammar()
	if err != nil {
		// The grammar is a compile-time constant; a construction
		// failure is a programming error.
		panic(fmt.Sprintf("fixtures: study grammar: %v", err))
	}
	return g
}

// FullSequences returns the oracle list of all legal sequences up to
// FullLength, one per line in enumeration order.
func FullSequences() []string { return mustLines("data/sequences_full.txt") }

// ShortSequences returns the oracle list truncated to ShortLength.
func ShortSequences() []string { return mustLines("data/sequences_short.txt") }

// ExposureLines returns the exposure-phase training stream.
func ExposureLines() []string { return mustLines("data/exposure.txt") }

// TestItems returns the test-phase items as parsed sequences, in file
// order. The set deliberately includes one item absent from the
// accuracy table so evaluation always exercises exclusion reporting.
func TestItems() []grammar.Sequence {
	lines := mustLines("data/test_items.txt")
	out := make([]grammar.Sequence, len(lines))
	for i, l := range lines {
		out[i] = grammar.ParseSequence(l)
	}
	return out
}

// ReferenceAccuracy returns the published per-item human accuracy
// table.
func ReferenceAccuracy() (evaluate.ReferenceTable, error) {
	raw, err := data.ReadFile("data/accuracy.yaml")
	if err != nil {
		return nil, fmt.Errorf("fixtures: read accuracy table: %w", err)
	}
	var doc struct {
		Items map[string]float64 `yaml:"items"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("fixtures: parse accuracy table: %w", err)
	}
	table := make(evaluate.ReferenceTable, len(doc.Items))
	for item, acc := range doc.Items {
		if acc < 0 || acc > 1 {
			return nil, fmt.Errorf("fixtures: accuracy for %q is %v, outside [0, 1]", item, acc)
		}
		// Normalize key spacing so lookups by Sequence.String always hit.
		table[grammar.ParseSequence(item).String()] = acc
	}
	return table, nil
}

// ExposureSequences parses and validates the exposure stream against
// the study grammar's alphabet.
func ExposureSequences(g *grammar.Grammar) ([]grammar.Sequence, error) {
	var out []grammar.Sequence
	for i, line := range ExposureLines() {
		seq := grammar.ParseSequence(line)
		if err := g.ValidateSequence(seq); err != nil {
			return nil, fmt.Errorf("fixtures: exposure line %d: %w", i+1, err)
		}
		out = append(out, seq)
	}
	return out, nil
}

func mustLines(name string) []string {
	raw, err := data.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("fixtures: embedded file %s: %v", name, err))
	}
	var out []string
	for _, line := range strings.Split(string(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}
