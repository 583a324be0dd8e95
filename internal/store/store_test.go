package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/evaluate"
)

func newTestStore(t *testing.T) *RunStore {
	t.Helper()
	s, err := NewRunStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewRunStore: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResults() []evaluate.ComparisonResult {
	return []evaluate.ComparisonResult{
		{Judge: "transitional", Items: 12, Excluded: 1, Spearman: 0.42, Agreement: 0.83, GrammaticalMean: 0.6, UngrammaticalMean: 0.1},
		{Judge: "positional", Items: 12, Excluded: 1, Spearman: 0.31, Agreement: 0.75, GrammaticalMean: 0.5, UngrammaticalMean: 0.3},
	}
}

func TestSaveRun_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	saved, err := s.SaveRun(ctx, sampleResults())
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	if saved.ID == "" {
		t.Fatal("SaveRun should assign a run id")
	}

	runs, err := s.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	run := runs[0]
	if run.ID != saved.ID {
		t.Errorf("run id = %q, want %q", run.ID, saved.ID)
	}
	if len(run.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(run.Results))
	}
	if run.Results[0] != sampleResults()[0] {
		t.Errorf("first result = %+v, want %+v", run.Results[0], sampleResults()[0])
	}
	if run.Results[1].Judge != "positional" {
		t.Errorf("results out of insertion order: %+v", run.Results)
	}
}

func TestListRuns_NewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.SaveRun(ctx, sampleResults()[:1])
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	second, err := s.SaveRun(ctx, sampleResults()[:1])
	if err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	runs, err := s.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].ID != second.ID || runs[1].ID != first.ID {
		t.Errorf("runs not newest-first: %q then %q, want %q then %q",
			runs[0].ID, runs[1].ID, second.ID, first.ID)
	}
}

func TestListRuns_Empty(t *testing.T) {
	s := newTestStore(t)
	runs, err := s.ListRuns(context.Background())
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want 0", len(runs))
	}
}

func TestNewRunStore_CreatesDotDir(t *testing.T) {
	root := t.TempDir()
	s, err := NewRunStore(root)
	if err != nil {
		t.Fatalf("NewRunStore: %v", err)
	}
	defer s.Close()
	if s.dbPath != filepath.Join(root, ".aglearn", "aglearn.db") {
		t.Errorf("dbPath = %q", s.dbPath)
	}
}

func TestRunStore_ReopenSeesData(t *testing.T) {
	root := t.TempDir()
	ctx := context.Background()

	s, err := NewRunStore(root)
	if err != nil {
		t.Fatalf("NewRunStore: %v", err)
	}
	if _, err := s.SaveRun(ctx, sampleResults()); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}
	s.Close()

	again, err := NewRunStore(root)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer again.Close()
	runs, err := again.ListRuns(ctx)
	if err != nil {
		t.Fatalf("ListRuns after reopen: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("got %d runs after reopen, want 1", len(runs))
	}
}
