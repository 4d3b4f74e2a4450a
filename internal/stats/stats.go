package stats

import (
	"context"

	"github.com/orgball2608/event-poster-api/internal/domain"
	statsrepo "github.com/orgball2608/event-poster-api/internal/repositories/stats"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Repo statsrepo.Repository
}

type Reader struct {
	repo statsrepo.Repository
}

func New(opts Opts) *Reader {
	return &Reader{repo: opts.Repo}
}

func (r *Reader) Totals(ctx context.Context) (*domain.Stats, error) {
	return r.repo.Totals(ctx)
}
