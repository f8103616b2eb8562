package store

import (
	"context"

	"github.com/phrazzld/shelf-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user. The caller must have hashed the password already.
	// The store assigns ID, CreatedAt and UpdatedAt.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by exact (case-sensitive) email match.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns every user ordered by ID ascending.
	List(ctx context.Context) ([]*domain.User, error)

	// Update persists the profile fields of an existing user and refreshes UpdatedAt.
	// The password hash is not touched.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists if the new email belongs to another user.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user and returns its last stored state.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id int64) (*domain.User, error)
}
