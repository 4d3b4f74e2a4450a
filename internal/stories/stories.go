package stories

import (
	"context"

	"github.com/orgball2608/event-poster-api/internal/admin"
	"github.com/orgball2608/event-poster-api/internal/domain"
	"github.com/orgball2608/event-poster-api/internal/photo"
	"github.com/orgball2608/event-poster-api/internal/repositories/story"
	apperrors "github.com/orgball2608/event-poster-api/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Repo     story.Repository
	Gate     *admin.Gate
	Resolver *photo.Resolver
}

// Manager owns the story lifecycle: admin authorization, slot
// validation and the at-most-one-active-story-per-slot invariant.
type Manager struct {
	repo     story.Repository
	gate     *admin.Gate
	resolver *photo.Resolver
}

func New(opts Opts) *Manager {
	return &Manager{
		repo:     opts.Repo,
		gate:     opts.Gate,
		resolver: opts.Resolver,
	}
}

func (m *Manager) ListActive(ctx context.Context) ([]domain.StoryView, error) {
	stories, err := m.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(stories, func(s domain.Story, _ int) domain.StoryView {
		return m.view(s)
	}), nil
}

func (m *Manager) Create(ctx context.Context, adminID int64, fileID string, caption *string, orderNum int) (*domain.StoryView, error) {
	if err := m.authorize(adminID); err != nil {
		return nil, err
	}

	created, err := m.repo.Create(ctx, fileID, caption, orderNum)
	if err != nil {
		return nil, err
	}

	view := m.view(*created)
	return &view, nil
}

func (m *Manager) Update(ctx context.Context, adminID int64, id int, patch domain.StoryPatch) (*domain.StoryView, error) {
	if err := m.authorize(adminID); err != nil {
		return nil, err
	}
	if patch.IsEmpty() {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "no fields to update")
	}

	updated, err := m.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	view := m.view(*updated)
	return &view, nil
}

func (m *Manager) Delete(ctx context.Context, adminID int64, id int) error {
	if err := m.authorize(adminID); err != nil {
		return err
	}

	return m.repo.Delete(ctx, id)
}

// ReplaceSlot rotates a slot: the currently active story, if any, is
// deactivated and the new one takes its place atomically.
func (m *Manager) ReplaceSlot(ctx context.Context, adminID int64, slotNumber int, fileID string, caption *string) (*domain.StoryView, error) {
	if err := m.authorize(adminID); err != nil {
		return nil, err
	}
	if slotNumber < 1 || slotNumber > 3 {
		return nil, apperrors.Wrap(apperrors.ErrInvalidInput, "slot number must be 1, 2, or 3")
	}

	created, err := m.repo.ReplaceSlot(ctx, slotNumber, fileID, caption)
	if err != nil {
		return nil, err
	}

	view := m.view(*created)
	return &view, nil
}

// authorize runs before any store access so unauthorized callers
// never cause side effects.
func (m *Manager) authorize(adminID int64) error {
	if !m.gate.IsAdmin(adminID) {
		return apperrors.Wrap(apperrors.ErrForbidden, "access denied, admins only")
	}
	return nil
}

func (m *Manager) view(s domain.Story) domain.StoryView {
	return domain.StoryView{
		ID:         s.ID,
		FileID:     s.FileID,
		PhotoURL:   m.resolver.ResolveURL(s.FileID),
		Caption:    s.Caption,
		SlotNumber: s.SlotNumber,
		OrderNum:   s.OrderNum,
		CreatedAt:  s.CreatedAt,
		IsActive:   s.IsActive,
	}
}
