package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/emiliopalmerini/slipscope/internal/domain"
)

// Repository implements ports.RunRepository on the runs table.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a run repository.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Save persists one run summary.
func (r *Repository) Save(ctx context.Context, run *domain.RunRecord) error {
	criteriaJSON, err := json.Marshal(run.Criteria)
	if err != nil {
		return fmt.Errorf("marshal criteria: %w", err)
	}

	query := `
		INSERT INTO runs (
			id, folder, started_at, finished_at,
			total_games, total_wins, win_rate,
			total_files, skipped_files, cache_hits, newly_cached,
			cancelled, criteria
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	cancelled := 0
	if run.Cancelled {
		cancelled = 1
	}
	_, err = r.db.ExecContext(ctx, query,
		run.ID,
		run.Folder,
		run.StartedAt.UTC().Format(time.RFC3339),
		run.FinishedAt.UTC().Format(time.RFC3339),
		run.TotalGames,
		run.TotalWins,
		run.WinRate,
		run.TotalFiles,
		run.SkippedFiles,
		run.CacheHits,
		run.NewlyCached,
		cancelled,
		string(criteriaJSON),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	return nil
}

// ListRecent returns the most recent runs, newest first.
func (r *Repository) ListRecent(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	query := `
		SELECT id, folder, started_at, finished_at,
			total_games, total_wins, win_rate,
			total_files, skipped_files, cache_hits, newly_cached,
			cancelled, criteria
		FROM runs
		ORDER BY finished_at DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []domain.RunRecord
	for rows.Next() {
		var (
			run          domain.RunRecord
			startedAt    string
			finishedAt   string
			cancelled    int
			criteriaJSON string
		)
		if err := rows.Scan(
			&run.ID, &run.Folder, &startedAt, &finishedAt,
			&run.TotalGames, &run.TotalWins, &run.WinRate,
			&run.TotalFiles, &run.SkippedFiles, &run.CacheHits, &run.NewlyCached,
			&cancelled, &criteriaJSON,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		run.FinishedAt, _ = time.Parse(time.RFC3339, finishedAt)
		run.Cancelled = cancelled == 1
		if err := json.Unmarshal([]byte(criteriaJSON), &run.Criteria); err != nil {
			return nil, fmt.Errorf("unmarshal criteria: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
