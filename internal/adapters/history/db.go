// Package history persists one summary row per analysis run to a local
// libsql database, so past runs can be listed and compared.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/tursodatabase/go-libsql"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id TEXT PRIMARY KEY,
	folder TEXT NOT NULL,
	started_at TEXT NOT NULL,
	finished_at TEXT NOT NULL,
	total_games INTEGER NOT NULL,
	total_wins INTEGER NOT NULL,
	win_rate TEXT NOT NULL,
	total_files INTEGER NOT NULL,
	skipped_files INTEGER NOT NULL,
	cache_hits INTEGER NOT NULL,
	newly_cached INTEGER NOT NULL,
	cancelled INTEGER NOT NULL DEFAULT 0,
	criteria TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_runs_finished_at ON runs(finished_at);
`

// NewDB opens the run-history database at path, creating the parent
// directory and the schema when missing.
func NewDB(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("libsql", "file:"+path)
	if err != nil {
		return nil, fmt.Errorf("open history database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping history database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ensure history schema: %w", err)
	}
	return db, nil
}
