package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "vespera/internal/errors"
	"vespera/internal/model"
	"vespera/internal/service"
)

// DiaryHandler handles the diary API endpoints.
type DiaryHandler struct {
	diaryService service.DiaryService
}

// NewDiaryHandler creates a new diary handler.
func NewDiaryHandler(diaryService service.DiaryService) *DiaryHandler {
	return &DiaryHandler{diaryService: diaryService}
}

// CreateEntryRequest represents a new diary entry draft.
type CreateEntryRequest struct {
	Date        string `form:"data" json:"data" validate:"required"`
	Emoji       string `form:"emoji" json:"emoji" validate:"required"`
	Title       string `form:"titulo" json:"titulo" validate:"required"`
	Description string `form:"descricao" json:"descricao"`
}

// CreateEntryResponse echoes the stored entry and its generated identifier.
type CreateEntryResponse struct {
	Success bool            `json:"sucesso"`
	ID      string          `json:"id"`
	Entry   model.EntryView `json:"registro"`
}

// ListEntriesResponse carries every entry sorted by date descending.
type ListEntriesResponse struct {
	Success bool              `json:"sucesso"`
	Entries []model.EntryView `json:"registros"`
}

// Create godoc
// @Summary Save a diary entry
// @Tags diary
// @Accept json
// @Produce json
// @Param request body CreateEntryRequest true "Entry draft"
// @Success 200 {object} CreateEntryResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/diario [post]
func (h *DiaryHandler) Create(c echo.Context) error {
	var req CreateEntryRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrMissingEntryFields)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrMissingEntryFields)
	}

	entry, err := h.diaryService.CreateEntry(c.Request().Context(), model.EntryDraft{
		Date:        req.Date,
		Emoji:       req.Emoji,
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, CreateEntryResponse{
		Success: true,
		ID:      entry.ID.String(),
		Entry:   entry.View(),
	})
}

// List godoc
// @Summary List diary entries, newest date first
// @Tags diary
// @Produce json
// @Success 200 {object} ListEntriesResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /api/diario [get]
func (h *DiaryHandler) List(c echo.Context) error {
	entries, err := h.diaryService.ListEntries(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, ListEntriesResponse{
		Success: true,
		Entries: entries,
	})
}
