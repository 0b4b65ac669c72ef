package ports

import "context"

// MetricsExporter exports run metrics to an external observability system.
type MetricsExporter interface {
	// ExportRunMetrics exports enriched metrics for a completed analysis run.
	ExportRunMetrics(ctx context.Context, m *RunMetrics) error
	// Close shuts down the exporter and flushes any pending metrics.
	Close(ctx context.Context) error
}

// RunMetrics contains the corpus-level counters for one completed run.
type RunMetrics struct {
	RunID  string
	Folder string

	TotalGames   int64
	TotalWins    int64
	SkippedFiles int64
	CacheHits    int64
	NewlyCached  int64

	DurationSeconds float64
	Cancelled       bool
}
