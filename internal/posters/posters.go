package posters

import (
	"context"
	"strings"

	"github.com/orgball2608/event-poster-api/internal/domain"
	"github.com/orgball2608/event-poster-api/internal/photo"
	"github.com/orgball2608/event-poster-api/internal/repositories/poster"
	"github.com/orgball2608/event-poster-api/pkg/config"
	"github.com/samber/lo"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Repo     poster.Repository
	Resolver *photo.Resolver
	Config   *config.Config
}

// Reader is the read-only projection of poster rows into client
// views.
type Reader struct {
	repo         poster.Repository
	resolver     *photo.Resolver
	defaultTitle string
}

func New(opts Opts) *Reader {
	return &Reader{
		repo:         opts.Repo,
		resolver:     opts.Resolver,
		defaultTitle: opts.Config.App.DefaultPosterTitle,
	}
}

func (r *Reader) ListActive(ctx context.Context) ([]domain.PosterView, error) {
	posters, err := r.repo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	return lo.Map(posters, func(p domain.Poster, _ int) domain.PosterView {
		return r.View(p)
	}), nil
}

func (r *Reader) Latest(ctx context.Context) (*domain.PosterView, error) {
	poster, err := r.repo.Latest(ctx)
	if err != nil {
		return nil, err
	}

	view := r.View(*poster)
	return &view, nil
}

func (r *Reader) GetByID(ctx context.Context, id int) (*domain.PosterView, error) {
	poster, err := r.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	view := r.View(*poster)
	return &view, nil
}

// View derives the client projection: the caption's first line is the
// title (falling back to the configured default when the caption is
// empty), the remainder the subtitle.
func (r *Reader) View(p domain.Poster) domain.PosterView {
	caption := ""
	if p.Caption != nil {
		caption = *p.Caption
	}

	title := r.defaultTitle
	subtitle := ""
	if caption != "" {
		parts := strings.SplitN(caption, "\n", 2)
		title = parts[0]
		if len(parts) > 1 {
			subtitle = parts[1]
		}
	}

	return domain.PosterView{
		ID:             p.ID,
		FileID:         p.FileID,
		PhotoURL:       r.resolver.ResolveURL(p.FileID),
		Caption:        caption,
		Title:          title,
		Subtitle:       subtitle,
		TicketURL:      p.TicketURL,
		VenueMapFileID: p.VenueMapFileID,
		CreatedAt:      p.CreatedAt,
		IsActive:       p.IsActive,
	}
}
