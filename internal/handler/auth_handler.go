package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"vespera/internal/auth"
	apperrors "vespera/internal/errors"
	"vespera/internal/model"
	"vespera/internal/service"
)

// IdentityContextKey is where the session middleware stores the resolved
// identity for protected routes.
const IdentityContextKey = "identity"

// AuthHandler handles registration, login, logout and the welcome view.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents a user registration form.
type RegisterRequest struct {
	Name     string `form:"nome" json:"nome" validate:"required"`
	Email    string `form:"email" json:"email" validate:"required"`
	Password string `form:"senha" json:"senha" validate:"required"`
}

// LoginRequest represents a login form.
type LoginRequest struct {
	Email    string `form:"email" json:"email" validate:"required"`
	Password string `form:"senha" json:"senha" validate:"required"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Param nome formData string true "Display name"
// @Param email formData string true "Email (unique)"
// @Param senha formData string true "Password"
// @Success 303 "Redirects to /login"
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /registro [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrMissingFields)
	}
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrMissingFields)
	}

	if _, err := h.authService.Register(c.Request().Context(), req.Name, req.Email, req.Password); err != nil {
		return respondError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/login")
}

// Login godoc
// @Summary Login with email and password
// @Tags auth
// @Accept x-www-form-urlencoded
// @Accept json
// @Param email formData string true "Email"
// @Param senha formData string true "Password"
// @Success 303 "Sets session cookie, redirects to /bemvindo"
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidCredentials)
	}
	// A missing field can only mean bad credentials; keep the generic notice.
	if err := c.Validate(&req); err != nil {
		return respondError(c, apperrors.ErrInvalidCredentials)
	}

	token, _, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	c.SetCookie(auth.NewSessionCookie(token))
	return c.Redirect(http.StatusSeeOther, "/bemvindo")
}

// Logout godoc
// @Summary Destroy the session and redirect to login
// @Tags auth
// @Success 302 "Redirects to /login"
// @Router /sair [get]
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(auth.SessionCookie); err == nil && cookie.Value != "" {
		// Teardown failure is logged but never blocks the redirect.
		if err := h.authService.Logout(c.Request().Context(), cookie.Value); err != nil {
			c.Logger().Errorf("session teardown: %v", err)
		}
	}

	c.SetCookie(auth.ExpiredSessionCookie())
	return c.Redirect(http.StatusFound, "/login")
}

// Welcome godoc
// @Summary Welcome view for an authenticated session
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 302 "Redirects to /login when anonymous"
// @Router /bemvindo [get]
func (h *AuthHandler) Welcome(c echo.Context) error {
	identity, ok := c.Get(IdentityContextKey).(*model.Identity)
	if !ok {
		return c.Redirect(http.StatusFound, "/login")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"sucesso":  true,
		"mensagem": fmt.Sprintf("Login efetuado com sucesso! Bem-vindo(a), %s!", identity.Name),
	})
}
