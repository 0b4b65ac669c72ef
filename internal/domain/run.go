package domain

import "time"

// RunRecord is the history row persisted for one completed analysis run.
type RunRecord struct {
	ID         string
	Folder     string
	StartedAt  time.Time
	FinishedAt time.Time

	TotalGames   int
	TotalWins    int
	WinRate      string
	TotalFiles   int
	SkippedFiles int
	CacheHits    int
	NewlyCached  int
	Cancelled    bool

	Criteria Criteria
}
