package posters

import (
	"context"
	"testing"
	"time"

	"github.com/orgball2608/event-poster-api/internal/domain"
	"github.com/orgball2608/event-poster-api/internal/photo"
	"github.com/orgball2608/event-poster-api/pkg/config"
	apperrors "github.com/orgball2608/event-poster-api/pkg/errors"
	"github.com/orgball2608/event-poster-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPosterRepository is a mock implementation of poster.Repository.
type MockPosterRepository struct {
	mock.Mock
}

func (m *MockPosterRepository) ListActive(ctx context.Context) ([]domain.Poster, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Poster), args.Error(1)
}

func (m *MockPosterRepository) Latest(ctx context.Context) (*domain.Poster, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Poster), args.Error(1)
}

func (m *MockPosterRepository) GetByID(ctx context.Context, id int) (*domain.Poster, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Poster), args.Error(1)
}

func newReader(repo *MockPosterRepository) *Reader {
	cfg := &config.Config{}
	cfg.App.DefaultPosterTitle = "Event"
	resolver := photo.New(photo.Opts{Config: cfg, Logger: logger.New(logger.Opts{})})
	return New(Opts{Repo: repo, Resolver: resolver, Config: cfg})
}

func strPtr(s string) *string { return &s }

func TestViewCaptionSplit(t *testing.T) {
	r := newReader(&MockPosterRepository{})

	tests := []struct {
		name         string
		caption      *string
		wantTitle    string
		wantSubtitle string
	}{
		{
			name:         "title and subtitle",
			caption:      strPtr("Summer Party\nSaturday, 22:00\nFree entry"),
			wantTitle:    "Summer Party",
			wantSubtitle: "Saturday, 22:00\nFree entry",
		},
		{
			name:         "title only",
			caption:      strPtr("Summer Party"),
			wantTitle:    "Summer Party",
			wantSubtitle: "",
		},
		{
			name:         "nil caption falls back to default",
			caption:      nil,
			wantTitle:    "Event",
			wantSubtitle: "",
		},
		{
			name:         "empty caption falls back to default",
			caption:      strPtr(""),
			wantTitle:    "Event",
			wantSubtitle: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := r.View(domain.Poster{ID: 1, FileID: "file", Caption: tt.caption})
			assert.Equal(t, tt.wantTitle, view.Title)
			assert.Equal(t, tt.wantSubtitle, view.Subtitle)
		})
	}
}

func TestViewPhotoURL(t *testing.T) {
	r := newReader(&MockPosterRepository{})

	local := r.View(domain.Poster{FileID: "posters/poster_5.jpg"})
	assert.Equal(t, "/posters/poster_5.jpg", local.PhotoURL)

	foreign := r.View(domain.Poster{FileID: "AgACAgIAAxkBAAIB"})
	assert.Equal(t, "/photo/AgACAgIAAxkBAAIB", foreign.PhotoURL)
}

func TestListActive(t *testing.T) {
	repo := &MockPosterRepository{}
	r := newReader(repo)

	now := time.Now()
	repo.On("ListActive", mock.Anything).Return([]domain.Poster{
		{ID: 2, FileID: "a", Caption: strPtr("Second\ndetails"), CreatedAt: now, IsActive: true},
		{ID: 1, FileID: "b", CreatedAt: now.Add(-time.Hour), IsActive: true},
	}, nil)

	views, err := r.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, 2, views[0].ID)
	assert.Equal(t, "Second", views[0].Title)
	assert.Equal(t, "Event", views[1].Title)

	repo.AssertExpectations(t)
}

func TestLatestNotFound(t *testing.T) {
	repo := &MockPosterRepository{}
	r := newReader(repo)

	repo.On("Latest", mock.Anything).Return(nil, apperrors.Wrap(apperrors.ErrNotFound, "no active posters found"))

	_, err := r.Latest(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestGetByID(t *testing.T) {
	repo := &MockPosterRepository{}
	r := newReader(repo)

	repo.On("GetByID", mock.Anything, 7).Return(&domain.Poster{ID: 7, FileID: "f", Caption: strPtr("Hello\nWorld")}, nil)

	view, err := r.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 7, view.ID)
	assert.Equal(t, "Hello", view.Title)
	assert.Equal(t, "World", view.Subtitle)
}
