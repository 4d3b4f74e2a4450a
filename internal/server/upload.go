package server

import (
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
	apperrors "github.com/orgball2608/event-poster-api/pkg/errors"
)

func (s *Server) uploadStoryPhoto(c echo.Context) error {
	adminID, err := adminIDFromForm(c)
	if err != nil {
		return s.respondError(c, err)
	}
	if !s.gate.IsAdmin(adminID) {
		return s.respondError(c, apperrors.Wrap(apperrors.ErrForbidden, "access denied"))
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return s.respondError(c, apperrors.Wrap(apperrors.ErrInvalidInput, "file is required"))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return s.respondError(c, apperrors.Internal(err, "failed to open uploaded file"))
	}
	defer src.Close()

	path, err := s.uploads.Save(fileHeader.Header.Get("Content-Type"), fileHeader.Filename, src)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":   true,
		"photo_url": path,
		"filename":  filepath.Base(path),
	})
}

func (s *Server) getStoryPhoto(c echo.Context) error {
	path, err := s.uploads.Path(c.Param("filename"))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.File(path)
}
