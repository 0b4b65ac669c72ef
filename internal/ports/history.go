package ports

import (
	"context"

	"github.com/emiliopalmerini/slipscope/internal/domain"
)

// RunRepository persists one summary row per completed analysis run.
type RunRepository interface {
	Save(ctx context.Context, run *domain.RunRecord) error
	ListRecent(ctx context.Context, limit int) ([]domain.RunRecord, error)
}
