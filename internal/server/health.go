package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) root(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"message": "Event Poster API",
		"version": "1.0.0",
		"endpoints": echo.Map{
			"/posters":        "List all active posters",
			"/posters/latest": "Get the most recent active poster",
			"/posters/{id}":   "Get a poster by id",
			"/stories":        "List active stories ordered by slot",
		},
	})
}

func (s *Server) health(c echo.Context) error {
	if err := s.pool.Ping(c.Request().Context()); err != nil {
		s.logger.Error("Health check failed", "error", err)
		return c.JSON(http.StatusServiceUnavailable, echo.Map{
			"detail": "database connection failed: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status":   "healthy",
		"database": "connected",
	})
}

func (s *Server) getStats(c echo.Context) error {
	totals, err := s.stats.Totals(c.Request().Context())
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, totals)
}
