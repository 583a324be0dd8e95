package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/config"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/evaluate"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/exposure"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/fixtures"
	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

// loadConfig resolves the --config flag into a validated configuration.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

// loadExposure reads the exposure stream from path, or falls back to
// the embedded study stream when path is empty.
func loadExposure(path string, g *grammar.Grammar) ([]grammar.Sequence, error) {
	if path == "" {
		return fixtures.ExposureSequences(g)
	}
	return exposure.LoadFile(path, g)
}

// loadTestItems reads the test set from path, or falls back to the
// embedded study items. Items are validated against the alphabet:
// out-of-alphabet symbols in a data file are a config problem, not a
// judged condition.
func loadTestItems(path string, g *grammar.Grammar) ([]grammar.Sequence, error) {
	if path == "" {
		return fixtures.TestItems(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening test items: %w", err)
	}
	defer f.Close()
	items, err := exposure.ParseStream(f, g)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

// loadAccuracy reads a reference accuracy table from a YAML file, or
// falls back to the embedded published table when path is empty.
func loadAccuracy(path string) (evaluate.ReferenceTable, error) {
	if path == "" {
		return fixtures.ReferenceAccuracy()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading accuracy table: %w", err)
	}
	var doc struct {
		Items map[string]float64 `yaml:"items"`
	}
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parsing accuracy table %s: %w", path, err)
	}
	table := make(evaluate.ReferenceTable, len(doc.Items))
	for item, acc := range doc.Items {
		if acc < 0 || acc > 1 {
			return nil, fmt.Errorf("accuracy table %s: %q has accuracy %v, outside [0, 1]", path, item, acc)
		}
		table[grammar.ParseSequence(item).String()] = acc
	}
	return table, nil
}
