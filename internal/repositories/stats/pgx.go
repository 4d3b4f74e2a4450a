package stats

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/event-poster-api/internal/domain"
	"github.com/orgball2608/event-poster-api/internal/repository"
)

func NewPgx(pg *pgxpool.Pool) *Pgx {
	return &Pgx{
		pg: pg,
	}
}

var _ Repository = (*Pgx)(nil)

type Pgx struct {
	pg *pgxpool.Pool
}

const userStatsQuery = `
	SELECT
		COUNT(*) AS total_users,
		COUNT(vk_id) AS users_with_vk,
		COUNT(CASE WHEN gender = 'male' THEN 1 END) AS male_users,
		COUNT(CASE WHEN gender = 'female' THEN 1 END) AS female_users
	FROM users
`

const posterStatsQuery = `
	SELECT
		COUNT(*) AS total_posters,
		COUNT(CASE WHEN is_active = true THEN 1 END) AS active_posters
	FROM posters
`

func (p *Pgx) Totals(ctx context.Context) (*domain.Stats, error) {
	var stats domain.Stats

	err := p.pg.QueryRow(ctx, userStatsQuery).Scan(
		&stats.Users.Total,
		&stats.Users.WithVK,
		&stats.Users.Male,
		&stats.Users.Female,
	)
	if err != nil {
		return nil, repository.ClassifyError(err, "failed to query user stats")
	}

	err = p.pg.QueryRow(ctx, posterStatsQuery).Scan(
		&stats.Posters.Total,
		&stats.Posters.Active,
	)
	if err != nil {
		return nil, repository.ClassifyError(err, "failed to query poster stats")
	}

	return &stats, nil
}
