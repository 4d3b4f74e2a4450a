package repository

import (
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgconn"
	apperrors "github.com/orgball2608/event-poster-api/pkg/errors"
)

var SqBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

var ErrBadQuery = errors.New("bad query")

// ClassifyError maps low-level store failures onto the API error
// taxonomy: an unreachable server is a 503, everything else an
// internal error carrying the store's message.
func ClassifyError(err error, message string) error {
	if err == nil {
		return nil
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return apperrors.Wrap(apperrors.ErrServiceUnavailable, message)
	}
	return apperrors.Internal(err, message)
}
