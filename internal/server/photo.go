package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Proxied photos are immutable on Telegram's side, so the client may
// cache them for a day.
const photoCacheControl = "public, max-age=86400"

func (s *Server) getPhoto(c echo.Context) error {
	data, err := s.photos.Fetch(c.Request().Context(), c.Param("file_id"))
	if err != nil {
		return s.respondError(c, err)
	}

	c.Response().Header().Set("Cache-Control", photoCacheControl)
	return c.Blob(http.StatusOK, "image/jpeg", data)
}
