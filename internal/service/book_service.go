package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/platform/logger"
	"github.com/phrazzld/shelf-api/internal/store"
	"github.com/phrazzld/shelf-api/internal/validation"
)

// BookService provides the book catalogue operations.
type BookService interface {
	// Create validates the input and stores a new book.
	Create(ctx context.Context, in CreateBookInput) (*domain.Book, error)

	// Get retrieves a book by ID. Returns store.ErrBookNotFound if absent.
	Get(ctx context.Context, id int64) (*domain.Book, error)

	// List returns all books ordered by ID.
	List(ctx context.Context) ([]*domain.Book, error)

	// Update merges a validated partial update onto an already loaded book
	// and persists the result.
	Update(ctx context.Context, existing *domain.Book, in UpdateBookInput) (*domain.Book, error)

	// Delete removes a book and returns its last state.
	// Returns store.ErrBookNotFound if absent.
	Delete(ctx context.Context, id int64) (*domain.Book, error)
}

// BookServiceImpl implements the BookService interface
type BookServiceImpl struct {
	bookStore store.BookStore
	validator *validation.Validator
	logger    *slog.Logger
}

var _ BookService = (*BookServiceImpl)(nil)

// NewBookService creates a new BookService.
func NewBookService(
	bookStore store.BookStore,
	validator *validation.Validator,
	logger *slog.Logger,
) *BookServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookServiceImpl{
		bookStore: bookStore,
		validator: validator,
		logger:    logger.With("component", "book_service"),
	}
}

// Create implements BookService.
func (s *BookServiceImpl) Create(ctx context.Context, in CreateBookInput) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Struct(in, createBookMessages); err != nil {
		log.Debug("book create payload rejected", "error", err)
		return nil, err
	}

	book := in.Book()
	if err := s.bookStore.Create(ctx, book); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	log.Debug("book created", "book_id", book.ID)
	return book, nil
}

// Get implements BookService.
func (s *BookServiceImpl) Get(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.bookStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve book: %w", err)
	}
	return book, nil
}

// List implements BookService.
func (s *BookServiceImpl) List(ctx context.Context) ([]*domain.Book, error) {
	books, err := s.bookStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}

// Update implements BookService. An empty patch returns the book unchanged
// without touching the store.
func (s *BookServiceImpl) Update(
	ctx context.Context,
	existing *domain.Book,
	in UpdateBookInput,
) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Struct(in, updateBookMessages); err != nil {
		log.Debug("book update payload rejected", "error", err, "book_id", existing.ID)
		return nil, err
	}

	patch := in.Patch()
	if patch.IsEmpty() {
		return existing, nil
	}

	merged := *existing
	merged.Apply(patch)
	if err := s.bookStore.Update(ctx, &merged); err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	log.Debug("book updated", "book_id", merged.ID)
	return &merged, nil
}

// Delete implements BookService.
func (s *BookServiceImpl) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.bookStore.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}
	return book, nil
}
