package stats

import (
	"context"

	"github.com/orgball2608/event-poster-api/internal/domain"
)

type Repository interface {
	Totals(ctx context.Context) (*domain.Stats, error)
}
