package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/grammar"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate(): %v", err)
	}
	g, err := cfg.Grammar.ToGrammar()
	if err != nil {
		t.Fatalf("Default().Grammar.ToGrammar(): %v", err)
	}
	if !g.IsGrammatical(grammar.ParseSequence("a c f")) {
		t.Error("default grammar should accept a c f")
	}
	if g.IsGrammatical(grammar.ParseSequence("a g f")) {
		t.Error("default grammar should reject a g f")
	}
}

func TestLoadFromFile_OverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "aglearn.yaml")
	content := `
grammar:
  categories: [x, y]
  start: [x]
  end: [y]
  transitions:
    - x y
lengths:
  full: 3
  short: 2
logging:
  level: debug
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Lengths.Full != 3 || cfg.Lengths.Short != 2 {
		t.Errorf("lengths = %+v, want full 3 short 2", cfg.Lengths)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	g, err := cfg.Grammar.ToGrammar()
	if err != nil {
		t.Fatalf("ToGrammar: %v", err)
	}
	if !g.IsGrammatical(grammar.ParseSequence("x y")) {
		t.Error("configured grammar should accept x y")
	}
}

func TestLoad_MissingFileErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of a missing explicit path should fail")
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("AGLEARN_LOG_LEVEL", "trace")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Logging.Level != "trace" {
		t.Errorf("level = %q, want trace from environment", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"full below one", func(c *Config) { c.Lengths.Full = 0 }, "lengths.full"},
		{"short above full", func(c *Config) { c.Lengths.Short = 99 }, "lengths.short"},
		{"short below one", func(c *Config) { c.Lengths.Short = 0 }, "lengths.short"},
		{"bad level", func(c *Config) { c.Logging.Level = "chatty" }, "invalid log level"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestToGrammar_BadTransitionSyntax(t *testing.T) {
	gc := GrammarConfig{
		Categories:  []string{"a", "b"},
		Start:       []string{"a"},
		End:         []string{"b"},
		Transitions: []string{"a b c"},
	}
	if _, err := gc.ToGrammar(); err == nil {
		t.Error("three-field transition should be rejected")
	}
}
