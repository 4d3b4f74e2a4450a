package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/orgball2608/event-poster-api/internal/domain"
	apperrors "github.com/orgball2608/event-poster-api/pkg/errors"
)

func (s *Server) getPosters(c echo.Context) error {
	views, err := s.posters.ListActive(c.Request().Context())
	if err != nil {
		return s.respondError(c, err)
	}
	if views == nil {
		views = []domain.PosterView{}
	}

	return c.JSON(http.StatusOK, views)
}

func (s *Server) getLatestPoster(c echo.Context) error {
	view, err := s.posters.Latest(c.Request().Context())
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

func (s *Server) getPoster(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return s.respondError(c, apperrors.Wrap(apperrors.ErrInvalidInput, "poster id must be an integer"))
	}

	view, err := s.posters.GetByID(c.Request().Context(), id)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}
