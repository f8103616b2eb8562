package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/platform/logger"
	"github.com/phrazzld/shelf-api/internal/redact"
	"github.com/phrazzld/shelf-api/internal/store"
)

const bookColumns = `id, title, author, genre, description, available, created_at, updated_at`

// PostgresBookStore implements the store.BookStore interface
// using a PostgreSQL database as the storage backend.
type PostgresBookStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresBookStore creates a new PostgreSQL implementation of the BookStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresBookStore(db store.DBTX, logger *slog.Logger) *PostgresBookStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresBookStore{
		db:     db,
		logger: logger.With(slog.String("component", "book_store")),
	}
}

// Ensure PostgresBookStore implements store.BookStore interface
var _ store.BookStore = (*PostgresBookStore)(nil)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBook(row rowScanner) (*domain.Book, error) {
	var b domain.Book
	err := row.Scan(
		&b.ID,
		&b.Title,
		&b.Author,
		&b.Genre,
		&b.Description,
		&b.Available,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create implements store.BookStore.Create
func (s *PostgresBookStore) Create(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO books (title, author, genre, description, available)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		book.Title,
		book.Author,
		book.Genre,
		book.Description,
		book.Available,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		log.Error("failed to create book", slog.String("error", redact.Error(err)))
		return MapError(err, store.ErrBookNotFound)
	}

	log.Info("book created", slog.Int64("book_id", book.ID))
	return nil
}

// GetByID implements store.BookStore.GetByID
func (s *PostgresBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + bookColumns + ` FROM books WHERE id = $1`
	book, err := scanBook(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		mapped := MapError(err, store.ErrBookNotFound)
		if store.IsNotFoundError(mapped) {
			log.Debug("book not found", slog.Int64("book_id", id))
		} else {
			log.Error("failed to get book by ID",
				slog.String("error", redact.Error(err)),
				slog.Int64("book_id", id))
		}
		return nil, mapped
	}

	return book, nil
}

// List implements store.BookStore.List
func (s *PostgresBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + bookColumns + ` FROM books ORDER BY id ASC`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list books", slog.String("error", redact.Error(err)))
		return nil, MapError(err, nil)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	books := make([]*domain.Book, 0)
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			log.Error("failed to scan book row", slog.String("error", redact.Error(err)))
			return nil, store.NewStoreError("book", "list", "failed to scan row", err)
		}
		books = append(books, book)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating book rows", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("book", "list", "row iteration failed", err)
	}

	return books, nil
}

// Update implements store.BookStore.Update
func (s *PostgresBookStore) Update(ctx context.Context, book *domain.Book) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE books
		SET title = $1, author = $2, genre = $3, description = $4, available = $5,
		    updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		book.Title,
		book.Author,
		book.Genre,
		book.Description,
		book.Available,
		book.ID,
	).Scan(&book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		mapped := MapError(err, store.ErrBookNotFound)
		if store.IsNotFoundError(mapped) {
			log.Debug("book not found for update", slog.Int64("book_id", book.ID))
		} else {
			log.Error("failed to update book",
				slog.String("error", redact.Error(err)),
				slog.Int64("book_id", book.ID))
		}
		return mapped
	}

	log.Info("book updated", slog.Int64("book_id", book.ID))
	return nil
}

// Delete implements store.BookStore.Delete
func (s *PostgresBookStore) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM books WHERE id = $1 RETURNING ` + bookColumns
	book, err := scanBook(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		mapped := MapError(err, store.ErrBookNotFound)
		if store.IsNotFoundError(mapped) {
			log.Debug("book not found for delete", slog.Int64("book_id", id))
		} else {
			log.Error("failed to delete book",
				slog.String("error", redact.Error(err)),
				slog.Int64("book_id", id))
		}
		return nil, mapped
	}

	log.Info("book deleted", slog.Int64("book_id", id))
	return book, nil
}
