package poster

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/orgball2608/event-poster-api/internal/domain"
	"github.com/orgball2608/event-poster-api/internal/repository"
	apperrors "github.com/orgball2608/event-poster-api/pkg/errors"
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

var posterColumns = []string{"id", "file_id", "caption", "ticket_url", "venue_map_file_id", "created_at", "is_active"}

func (p *Pgx) ListActive(ctx context.Context) ([]domain.Poster, error) {
	query, args, err := repository.SqBuilder.
		Select(posterColumns...).
		From("posters").
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.ClassifyError(err, "failed to query posters")
	}
	defer rows.Close()

	var posters []domain.Poster
	for rows.Next() {
		var poster domain.Poster
		if err := scanPoster(rows, &poster); err != nil {
			return nil, repository.ClassifyError(err, "failed to scan poster row")
		}
		posters = append(posters, poster)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ClassifyError(err, "error iterating poster rows")
	}

	return posters, nil
}

func (p *Pgx) Latest(ctx context.Context) (*domain.Poster, error) {
	query, args, err := repository.SqBuilder.
		Select(posterColumns...).
		From("posters").
		Where(sq.Eq{"is_active": true}).
		OrderBy("created_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	var poster domain.Poster
	if err := scanPoster(p.pg.QueryRow(ctx, query, args...), &poster); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "no active posters found")
		}
		return nil, repository.ClassifyError(err, "failed to get latest poster")
	}

	return &poster, nil
}

func (p *Pgx) GetByID(ctx context.Context, id int) (*domain.Poster, error) {
	query, args, err := repository.SqBuilder.
		Select(posterColumns...).
		From("posters").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	var poster domain.Poster
	if err := scanPoster(p.pg.QueryRow(ctx, query, args...), &poster); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "poster not found")
		}
		return nil, repository.ClassifyError(err, "failed to get poster by id")
	}

	return &poster, nil
}

func scanPoster(row pgx.Row, poster *domain.Poster) error {
	return row.Scan(
		&poster.ID,
		&poster.FileID,
		&poster.Caption,
		&poster.TicketURL,
		&poster.VenueMapFileID,
		&poster.CreatedAt,
		&poster.IsActive,
	)
}
