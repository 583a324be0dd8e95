// Package store persists evaluation run history.
package store

import (
	"context"
	"database/sql"
	"fmt"
)

// SchemaVersion is the current schema version.
const SchemaVersion = 1

// schemaV1 is the initial schema for the SQLite run store.
const schemaV1 = `
-- One row per (run, judge) comparison result.
CREATE TABLE IF NOT EXISTS runs (
    run_id TEXT NOT NULL,
    created_at TEXT NOT NULL,

    judge TEXT NOT NULL,
    items INTEGER NOT NULL,
    excluded INTEGER NOT NULL,
    spearman REAL NOT NULL,
    agreement REAL NOT NULL,
    grammatical_mean REAL NOT NULL,
    ungrammatical_mean REAL NOT NULL,

    PRIMARY KEY (run_id, judge)
);
CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at);

-- Schema version tracking
CREATE TABLE IF NOT EXISTS schema_info (
    version INTEGER PRIMARY KEY
);
`

// InitSchema creates the tables if needed and records the schema
// version.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaV1); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	if _, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO schema_info (version) VALUES (?)`, SchemaVersion); err != nil {
		return fmt.Errorf("recording schema version: %w", err)
	}
	return nil
}
