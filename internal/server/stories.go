package server

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/orgball2608/event-poster-api/internal/domain"
	apperrors "github.com/orgball2608/event-poster-api/pkg/errors"
)

type createStoryRequest struct {
	FileID   string  `json:"file_id"`
	Caption  *string `json:"caption"`
	OrderNum int     `json:"order_num"`
}

func (s *Server) getStories(c echo.Context) error {
	views, err := s.stories.ListActive(c.Request().Context())
	if err != nil {
		return s.respondError(c, err)
	}
	if views == nil {
		views = []domain.StoryView{}
	}

	return c.JSON(http.StatusOK, views)
}

func (s *Server) createStory(c echo.Context) error {
	adminID, err := adminIDFromQuery(c)
	if err != nil {
		return s.respondError(c, err)
	}

	var req createStoryRequest
	if err := c.Bind(&req); err != nil {
		return s.respondError(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid request body"))
	}
	if req.FileID == "" {
		return s.respondError(c, apperrors.Wrap(apperrors.ErrInvalidInput, "file_id is required"))
	}

	view, err := s.stories.Create(c.Request().Context(), adminID, req.FileID, req.Caption, req.OrderNum)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

func (s *Server) updateStory(c echo.Context) error {
	adminID, err := adminIDFromQuery(c)
	if err != nil {
		return s.respondError(c, err)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return s.respondError(c, apperrors.Wrap(apperrors.ErrInvalidInput, "story id must be an integer"))
	}

	var patch domain.StoryPatch
	if err := c.Bind(&patch); err != nil {
		return s.respondError(c, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid request body"))
	}

	view, err := s.stories.Update(c.Request().Context(), adminID, id, patch)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

func (s *Server) deleteStory(c echo.Context) error {
	adminID, err := adminIDFromQuery(c)
	if err != nil {
		return s.respondError(c, err)
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return s.respondError(c, apperrors.Wrap(apperrors.ErrInvalidInput, "story id must be an integer"))
	}

	if err := s.stories.Delete(c.Request().Context(), adminID, id); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Story deleted successfully"})
}

func (s *Server) createStoryInSlot(c echo.Context) error {
	adminID, err := adminIDFromForm(c)
	if err != nil {
		return s.respondError(c, err)
	}

	slotNumber, err := strconv.Atoi(c.FormValue("slot_number"))
	if err != nil {
		return s.respondError(c, apperrors.Wrap(apperrors.ErrInvalidInput, "slot_number must be an integer"))
	}

	fileID := c.FormValue("file_id")
	if fileID == "" {
		return s.respondError(c, apperrors.Wrap(apperrors.ErrInvalidInput, "file_id is required"))
	}

	var caption *string
	if v := c.FormValue("caption"); v != "" {
		caption = &v
	}

	view, err := s.stories.ReplaceSlot(c.Request().Context(), adminID, slotNumber, fileID, caption)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, view)
}

func (s *Server) checkAdmin(c echo.Context) error {
	id, err := parseAdminID(c.Param("user_id"))
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(http.StatusOK, echo.Map{"is_admin": s.gate.IsAdmin(id)})
}
