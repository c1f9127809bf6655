package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMissingFields is returned when a registration or contact form is
	// missing required fields.
	ErrMissingFields = errors.New("Preencha todos os campos!")
	// ErrEmailTaken is returned when the email is already registered.
	ErrEmailTaken = errors.New("E-mail já cadastrado!")
	// ErrInvalidCredentials is returned on any login failure. The message is
	// deliberately the same for an unknown email and a wrong password.
	ErrInvalidCredentials = errors.New("E-mail ou senha incorretos!")
	// ErrMissingEntryFields is returned when a diary entry draft lacks a
	// required field.
	ErrMissingEntryFields = errors.New("Campos obrigatórios: data, emoji e título")
	// ErrInvalidEntryDate is returned when the diary entry date cannot be
	// parsed as a calendar date.
	ErrInvalidEntryDate = errors.New("Data inválida")
)

// ErrorResponse represents a standardized error response. The original
// frontend reads the `erro` key.
type ErrorResponse struct {
	Error string `json:"erro"`
	Code  string `json:"code,omitempty"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors. Validation and duplicate
// errors keep their user-facing text; anything else is an opaque internal
// error so storage details never leak to the caller.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMissingFields):
		return NewHTTPError(http.StatusBadRequest, ErrMissingFields.Error(), "MISSING_FIELDS")
	case errors.Is(err, ErrMissingEntryFields):
		return NewHTTPError(http.StatusBadRequest, ErrMissingEntryFields.Error(), "MISSING_ENTRY_FIELDS")
	case errors.Is(err, ErrInvalidEntryDate):
		return NewHTTPError(http.StatusBadRequest, ErrInvalidEntryDate.Error(), "INVALID_ENTRY_DATE")
	case errors.Is(err, ErrEmailTaken):
		return NewHTTPError(http.StatusConflict, ErrEmailTaken.Error(), "EMAIL_TAKEN")
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, ErrInvalidCredentials.Error(), "INVALID_CREDENTIALS")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Erro interno.", "INTERNAL_ERROR")
	}
}
