package story

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

var storyColumns = []string{"id", "file_id", "caption", "slot_number", "order_num", "created_at", "is_active"}

func (p *Pgx) ListActive(ctx context.Context) ([]domain.Story, error) {
	query, args, err := repository.SqBuilder.
		Select(storyColumns...).
		From("stories").
		Where(sq.Eq{"is_active": true}).
		OrderBy("slot_number ASC").
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	rows, err := p.pg.Query(ctx, query, args...)
	if err != nil {
		return nil, repository.ClassifyError(err, "failed to query stories")
	}
	defer rows.Close()

	var stories []domain.Story
	for rows.Next() {
		var story domain.Story
		if err := scanStory(rows, &story); err != nil {
			return nil, repository.ClassifyError(err, "failed to scan story row")
		}
		stories = append(stories, story)
	}
	if err := rows.Err(); err != nil {
		return nil, repository.ClassifyError(err, "error iterating story rows")
	}

	return stories, nil
}

func (p *Pgx) Create(ctx context.Context, fileID string, caption *string, orderNum int) (*domain.Story, error) {
	query, args, err := repository.SqBuilder.
		Insert("stories").
		Columns("file_id", "caption", "order_num", "is_active").
		Values(fileID, caption, orderNum, true).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	var story domain.Story
	if err := scanStory(p.pg.QueryRow(ctx, query, args...), &story); err != nil {
		return nil, repository.ClassifyError(err, "failed to create story")
	}

	return &story, nil
}

func (p *Pgx) Update(ctx context.Context, id int, patch domain.StoryPatch) (*domain.Story, error) {
	query, args, err := buildUpdate(id, patch)
	if err != nil {
		return nil, err
	}

	var story domain.Story
	if err := scanStory(p.pg.QueryRow(ctx, query, args...), &story); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.Wrap(apperrors.ErrNotFound, "story not found")
		}
		return nil, repository.ClassifyError(err, "failed to update story")
	}

	return &story, nil
}

func (p *Pgx) Delete(ctx context.Context, id int) error {
	query, args, err := repository.SqBuilder.
		Delete("stories").
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return repository.ErrBadQuery
	}

	tag, err := p.pg.Exec(ctx, query, args...)
	if err != nil {
		return repository.ClassifyError(err, "failed to delete story")
	}
	if tag.RowsAffected() == 0 {
		return apperrors.Wrap(apperrors.ErrNotFound, "story not found")
	}

	return nil
}

func (p *Pgx) ReplaceSlot(ctx context.Context, slotNumber int, fileID string, caption *string) (*domain.Story, error) {
	deactivate, deactivateArgs, err := repository.SqBuilder.
		Update("stories").
		Set("is_active", false).
		Where(sq.Eq{"slot_number": slotNumber, "is_active": true}).
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	insert, insertArgs, err := repository.SqBuilder.
		Insert("stories").
		Columns("file_id", "caption", "slot_number", "is_active").
		Values(fileID, caption, slotNumber, true).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		return nil, repository.ErrBadQuery
	}

	tx, err := p.pg.Begin(ctx)
	if err != nil {
		return nil, repository.ClassifyError(err, "failed to begin slot rotation")
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op after commit

	if _, err := tx.Exec(ctx, deactivate, deactivateArgs...); err != nil {
		return nil, repository.ClassifyError(err, "failed to deactivate slot")
	}

	var story domain.Story
	if err := scanStory(tx.QueryRow(ctx, insert, insertArgs...), &story); err != nil {
		return nil, repository.ClassifyError(err, "failed to insert story into slot")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, repository.ClassifyError(err, "failed to commit slot rotation")
	}

	return &story, nil
}

const returningColumns = "id, file_id, caption, slot_number, order_num, created_at, is_active"

// buildUpdate emits only the assignments present in the patch, so
// omitted fields are left untouched.
func buildUpdate(id int, patch domain.StoryPatch) (string, []interface{}, error) {
	if patch.IsEmpty() {
		return "", nil, apperrors.Wrap(apperrors.ErrInvalidInput, "no fields to update")
	}

	builder := repository.SqBuilder.Update("stories")
	if patch.Caption != nil {
		builder = builder.Set("caption", *patch.Caption)
	}
	if patch.OrderNum != nil {
		builder = builder.Set("order_num", *patch.OrderNum)
	}
	if patch.IsActive != nil {
		builder = builder.Set("is_active", *patch.IsActive)
	}

	query, args, err := builder.
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + returningColumns).
		ToSql()
	if err != nil {
		return "", nil, repository.ErrBadQuery
	}

	return query, args, nil
}

func scanStory(row pgx.Row, story *domain.Story) error {
	return row.Scan(
		&story.ID,
		&story.FileID,
		&story.Caption,
		&story.SlotNumber,
		&story.OrderNum,
		&story.CreatedAt,
		&story.IsActive,
	)
}
