package story

import (
	"context"

	"github.com/orgball2608/event-poster-api/internal/domain"
)

type Repository interface {
	ListActive(ctx context.Context) ([]domain.Story, error)
	Create(ctx context.Context, fileID string, caption *string, orderNum int) (*domain.Story, error)
	Update(ctx context.Context, id int, patch domain.StoryPatch) (*domain.Story, error)
	Delete(ctx context.Context, id int) error

	// ReplaceSlot deactivates every active story in the slot and
	// inserts a new active one, inside a single transaction.
	ReplaceSlot(ctx context.Context, slotNumber int, fileID string, caption *string) (*domain.Story, error)
}
