package store

import (
	"context"

	"github.com/phrazzld/shelf-api/internal/domain"
)

// BookStore defines the interface for book data persistence.
// Every method is a single statement against the backing store.
type BookStore interface {
	// Create inserts a new book. The store assigns ID, CreatedAt and UpdatedAt
	// and writes them back into the given book.
	Create(ctx context.Context, book *domain.Book) error

	// GetByID retrieves a book by its ID.
	// Returns ErrBookNotFound if the book does not exist.
	GetByID(ctx context.Context, id int64) (*domain.Book, error)

	// List returns every book ordered by ID ascending.
	List(ctx context.Context) ([]*domain.Book, error)

	// Update persists all mutable fields of an existing book and refreshes
	// UpdatedAt, which is written back into the given book.
	// Returns ErrBookNotFound if the book does not exist.
	Update(ctx context.Context, book *domain.Book) error

	// Delete removes a book and returns its last stored state.
	// Returns ErrBookNotFound if the book does not exist.
	Delete(ctx context.Context, id int64) (*domain.Book, error)
}
