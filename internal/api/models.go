package api

import (
	"github.com/phrazzld/shelf-api/internal/config"
	"github.com/phrazzld/shelf-api/internal/domain"
)

// ResponsePolicy controls how user records are shaped in responses.
type ResponsePolicy struct {
	// LoginOmitsID removes "id" from the user object in the login response.
	LoginOmitsID bool

	// ProfileOmitsID removes "id" from the profile fetch response.
	ProfileOmitsID bool

	// SignupExposesErrors returns unexpected signup failures as
	// 400 {"error": "<raw error>"} instead of the generic 500 body.
	SignupExposesErrors bool
}

// DefaultResponsePolicy returns the policy used when nothing is configured.
func DefaultResponsePolicy() ResponsePolicy {
	return ResponsePolicy{
		LoginOmitsID:        true,
		ProfileOmitsID:      false,
		SignupExposesErrors: false,
	}
}

// PolicyFromConfig builds a ResponsePolicy from the api configuration group.
func PolicyFromConfig(cfg config.APIConfig) ResponsePolicy {
	return ResponsePolicy{
		LoginOmitsID:        cfg.LoginOmitsID,
		ProfileOmitsID:      cfg.ProfileOmitsID,
		SignupExposesErrors: cfg.SignupExposesErrors,
	}
}

// BookListResponse wraps the full book collection.
type BookListResponse struct {
	Books []*domain.Book `json:"books"`
}

// BookDeletedResponse is returned after a book is removed.
// Status mirrors the legacy body and is not the HTTP status.
type BookDeletedResponse struct {
	Message string       `json:"message"`
	Status  int          `json:"status"`
	Data    *domain.Book `json:"data"`
}

// LoginResponse defines the successful response for the login endpoint.
type LoginResponse struct {
	User  map[string]any `json:"user"`
	Token string         `json:"token"`
}

// UserUpdatedResponse is returned after a profile update.
type UserUpdatedResponse struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data"`
	Status  int            `json:"status"`
}

// MessageResponse carries a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
	Status  int    `json:"status,omitempty"`
}
