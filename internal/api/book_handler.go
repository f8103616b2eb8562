package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/shelf-api/internal/api/middleware"
	"github.com/phrazzld/shelf-api/internal/api/shared"
	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/platform/logger"
	"github.com/phrazzld/shelf-api/internal/service"
)

// BookHandler handles book-related API requests.
type BookHandler struct {
	books  service.BookService
	logger *slog.Logger
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(books service.BookService, logger *slog.Logger) *BookHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &BookHandler{
		books:  books,
		logger: logger.With(slog.String("component", "book_handler")),
	}
}

// Create handles POST /api/books/create-book.
func (h *BookHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in service.CreateBookInput
	if !decodeRequest(w, r, &in) {
		return
	}

	book, err := h.books.Create(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err, "create book")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("book created", slog.Int64("book_id", book.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, book)
}

// List handles GET /api/books.
func (h *BookHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.books.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "list books")
		return
	}
	if books == nil {
		books = []*domain.Book{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, BookListResponse{Books: books})
}

// Get handles GET /api/books/{bookID}.
// A malformed ID cannot name a book, so it is reported as not found.
func (h *BookHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, middleware.BookIDParam)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Book not found")
		return
	}

	book, err := h.books.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "get book")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// Update handles PUT /api/books/{bookID}. The book is resolved by
// middleware.AttachBook before this handler runs.
func (h *BookHandler) Update(w http.ResponseWriter, r *http.Request) {
	existing, ok := shared.BookFromContext(r.Context())
	if !ok {
		shared.RespondWithError(w, r, http.StatusNotFound, "Book not found")
		return
	}

	var in service.UpdateBookInput
	if !decodeRequest(w, r, &in) {
		return
	}

	book, err := h.books.Update(r.Context(), existing, in)
	if err != nil {
		HandleAPIError(w, r, err, "update book")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, book)
}

// Delete handles DELETE /api/books/{bookID}.
func (h *BookHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, middleware.BookIDParam)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "Book not found")
		return
	}

	book, err := h.books.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "delete book")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("book deleted", slog.Int64("book_id", book.ID))
	shared.RespondWithJSON(w, r, http.StatusOK, BookDeletedResponse{
		Message: "Book deleted successfully",
		Status:  http.StatusNoContent,
		Data:    book,
	})
}

// AttachBook returns the middleware resolving {bookID} through this handler's service.
func (h *BookHandler) AttachBook() func(http.Handler) http.Handler {
	return middleware.AttachBook(h.books)
}
