package poster

import (
	"context"

	"github.com/orgball2608/event-poster-api/internal/domain"
)

type Repository interface {
	ListActive(ctx context.Context) ([]domain.Poster, error)
	Latest(ctx context.Context) (*domain.Poster, error)
	GetByID(ctx context.Context, id int) (*domain.Poster, error)
}
