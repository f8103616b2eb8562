package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/shelf-api/internal/api/shared"
	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/service"
	"github.com/phrazzld/shelf-api/internal/service/auth"
	"github.com/phrazzld/shelf-api/internal/store"
	"github.com/phrazzld/shelf-api/internal/validation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		return http.StatusBadRequest

	// Authentication errors
	case errors.Is(err, auth.ErrMissingToken):
		return http.StatusUnauthorized
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrBookNotFound),
		errors.Is(err, store.ErrUserNotFound):
		return http.StatusNotFound

	// Credential and conflict errors are reported as bad requests
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, store.ErrEmailExists),
		errors.Is(err, service.ErrMissingCredentials),
		errors.Is(err, service.ErrUserNotExist),
		errors.Is(err, service.ErrInvalidPassword):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrInvalidID):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client-facing message for err.
// Validation errors carry their aggregated messages; everything unknown
// collapses to the generic internal error text.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return shared.InternalErrorMessage
	}

	var vErr *validation.Error
	switch {
	case errors.As(err, &vErr):
		return vErr.Error()

	case errors.Is(err, auth.ErrMissingToken):
		return "Token is required"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid):
		return "Forbidden"

	case errors.Is(err, store.ErrBookNotFound):
		return "Book not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, store.ErrEmailExists):
		return "User already exists"
	case errors.Is(err, service.ErrMissingCredentials):
		return "All fields are required"
	case errors.Is(err, service.ErrUserNotExist):
		return "User does not exist"
	case errors.Is(err, service.ErrInvalidPassword):
		return "Invalid password"

	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"
	case errors.Is(err, store.ErrInvalidEntity):
		return "Invalid entity data"

	default:
		return shared.InternalErrorMessage
	}
}

// HandleAPIError writes the response for err. The status and message come
// from MapErrorToStatusCode and GetSafeErrorMessage; action describes what
// the handler was doing and only appears in the log.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, action string) {
	status := MapErrorToStatusCode(err)
	logged := err
	if action != "" {
		logged = fmt.Errorf("%s: %w", action, err)
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), logged)
}
