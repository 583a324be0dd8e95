package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/ConstantineLignos/ArtificialLangLearning/internal/evaluate"
)

// Run is one saved evaluation: a run id, its timestamp, and the
// per-judge comparison results produced side by side.
type Run struct {
	ID        string
	CreatedAt time.Time
	Results   []evaluate.ComparisonResult
}

// RunStore persists evaluation runs in SQLite under <root>/.aglearn.
type RunStore struct {
	db     *sql.DB
	dbPath string
}

// NewRunStore opens (creating if needed) the run store rooted at
// projectRoot.
func NewRunStore(projectRoot string) (*RunStore, error) {
	dir := filepath.Join(projectRoot, ".aglearn")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create .aglearn directory: %w", err)
	}

	dbPath := filepath.Join(dir, "aglearn.db")
	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// SQLite works best with a single writer.
	db.SetMaxOpenConns(1)

	if err := InitSchema(context.Background(), db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return &RunStore{db: db, dbPath: dbPath}, nil
}

// SaveRun stores one evaluation's per-judge results under a fresh run
// id and returns the saved run.
func (s *RunStore) SaveRun(ctx context.Context, results []evaluate.ComparisonResult) (Run, error) {
	run := Run{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Results:   results,
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	for _, r := range results {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO runs (run_id, created_at, judge, items, excluded,
				spearman, agreement, grammatical_mean, ungrammatical_mean)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID, run.CreatedAt.Format(time.RFC3339Nano),
			r.Judge, r.Items, r.Excluded,
			r.Spearman, r.Agreement, r.GrammaticalMean, r.UngrammaticalMean,
		)
		if err != nil {
			return Run{}, fmt.Errorf("insert result for %s: %w", r.Judge, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("commit: %w", err)
	}
	return run, nil
}

// ListRuns returns saved runs newest-first, each with its per-judge
// results in insertion order.
func (s *RunStore) ListRuns(ctx context.Context) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, created_at, judge, items, excluded,
			spearman, agreement, grammatical_mean, ungrammatical_mean
		FROM runs
		ORDER BY created_at DESC, run_id, rowid`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	index := make(map[string]int)
	for rows.Next() {
		var (
			id, created string
			res         evaluate.ComparisonResult
		)
		if err := rows.Scan(&id, &created, &res.Judge, &res.Items, &res.Excluded,
			&res.Spearman, &res.Agreement, &res.GrammaticalMean, &res.UngrammaticalMean); err != nil {
			return nil, fmt.Errorf("scan run row: %w", err)
		}
		i, ok := index[id]
		if !ok {
			ts, err := time.Parse(time.RFC3339Nano, created)
			if err != nil {
				return nil, fmt.Errorf("parse run timestamp %q: %w", created, err)
			}
			runs = append(runs, Run{ID: id, CreatedAt: ts})
			i = len(runs) - 1
			index[id] = i
		}
		runs[i].Results = append(runs[i].Results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// Close closes the underlying database.
func (s *RunStore) Close() error {
	return s.db.Close()
}
