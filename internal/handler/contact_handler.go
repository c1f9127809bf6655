package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "vespera/internal/errors"
	"vespera/internal/service"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string `form:"nome" json:"nome" validate:"required"`
	Email   string `form:"email" json:"email" validate:"required"`
	Message string `form:"mensagem" json:"mensagem" validate:"required"`
}

// Submit godoc
// @Summary Submit a contact form message
// @Tags contact
// @Accept x-www-form-urlencoded
// @Accept json
// @Param nome formData string true "Name"
// @Param email formData string true "Email"
// @Param mensagem formData string true "Message"
// @Success 303 "Redirects to /"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /contato [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrMissingFields)
	}

	if err := h.contactService.Submit(c.Request().Context(), req.Name, req.Email, req.Message); err != nil {
		return respondError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/")
}
