// Package config provides unified configuration loading for aglearn.
// It supports loading from YAML files and environment variables; the
// defaults describe the reference study setup.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

// Config contains all aglearn configuration settings.
type Config struct {
	// Grammar defines the finite-state grammar under study.
	Grammar GrammarConfig `json:"grammar" yaml:"grammar"`

	// Lengths bound the enumeration.
	Lengths LengthConfig `json:"lengths" yaml:"lengths"`

	// Logging configures operational and judgment logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// GrammarConfig is the declarative form of a finite-state grammar.
// Transitions are written "from to" pairs, e.g. "a c".
type GrammarConfig struct {
	Categories  []string `json:"categories" yaml:"categories"`
	Start       []string `json:"start" yaml:"start"`
	End         []string `json:"end" yaml:"end"`
	Transitions []string `json:"transitions" yaml:"transitions"`
}

// LengthConfig bounds sequence enumeration.
type LengthConfig struct {
	// Full is the maximum length of the complete sequence set.
	Full int `json:"full" yaml:"full"`

	// Short is the bound of the truncated set; must not exceed Full.
	Short int `json:"short" yaml:"short"`
}

// LoggingConfig configures aglearn's logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or
	// "trace". "debug" enables per-judgment logging to
	// .aglearn/judgments.jsonl.
	Level string `json:"level" yaml:"level"`
}

// Default returns the reference study configuration: the six-category
// grammar with start a and end f, enumerated to length 7 with a
// length-5 truncation.
func Default() *Config {
	return &Config{
		Grammar: GrammarConfig{
			Categories: []string{"a", "c", "d", "e", "f", "g"},
			Start:      []string{"a"},
			End:        []string{"f"},
			Transitions: []string{
				"a c", "a d",
				"c e", "c f", "c g",
				"d c", "e c", "g f",
			},
		},
		Lengths: LengthConfig{Full: 7, Short: 5},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load loads configuration with the usual precedence:
// defaults -> optional YAML file at path -> environment variables.
// An empty path skips the file step.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg
	}
	applyEnvOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile loads configuration from a specific YAML file, applied
// on top of the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
// Grammar-level validation (unknown categories in transitions etc.)
// happens in ToGrammar.
func (c *Config) Validate() error {
	if c.Lengths.Full < 1 {
		return fmt.Errorf("lengths.full must be at least 1, got %d", c.Lengths.Full)
	}
	if c.Lengths.Short < 1 || c.Lengths.Short > c.Lengths.Full {
		return fmt.Errorf("lengths.short must be between 1 and lengths.full (%d), got %d",
			c.Lengths.Full, c.Lengths.Short)
	}
	validLevels := map[string]bool{"": true, "info": true, "debug": true, "trace": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}
	return nil
}

// ToGrammar builds the immutable grammar from the declarative config.
func (gc GrammarConfig) ToGrammar() (*grammar.Grammar, error) {
	categories := make([]grammar.Category, len(gc.Categories))
	for i, c := range gc.Categories {
		categories[i] = grammar.Category(c)
	}
	transitions := make([]grammar.Transition, 0, len(gc.Transitions))
	for _, t := range gc.Transitions {
		fields := strings.Fields(t)
		if len(fields) != 2 {
			return nil, fmt.Errorf("config: transition %q must be a \"from to\" pair", t)
		}
		transitions = append(transitions, grammar.Transition{
			From: grammar.Category(fields[0]),
			To:   grammar.Category(fields[1]),
		})
	}
	return grammar.New(categories, transitions, toCategories(gc.Start), toCategories(gc.End))
}

func toCategories(ss []string) []grammar.Category {
	out := make([]grammar.Category, len(ss))
	for i, s := range ss {
		out[i] = grammar.Category(s)
	}
	return out
}

// applyEnvOverrides applies environment variable overrides.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AGLEARN_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}
