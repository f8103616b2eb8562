package middleware

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/shelf-api/internal/api/shared"
	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/store"
)

// BookIDParam is the chi URL parameter holding a book ID.
const BookIDParam = "bookID"

// BookLoader fetches a single book.
type BookLoader interface {
	Get(ctx context.Context, id int64) (*domain.Book, error)
}

// AttachBook resolves the book named by the {bookID} path parameter and
// stores it in the request context for the next handler.
func AttachBook(books BookLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := strconv.ParseInt(chi.URLParam(r, BookIDParam), 10, 64)
			if err != nil {
				shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid book ID")
				return
			}

			book, err := books.Get(r.Context(), id)
			if err != nil {
				if errors.Is(err, store.ErrBookNotFound) {
					shared.RespondWithError(w, r, http.StatusNotFound, "Book not found")
					return
				}
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
					shared.InternalErrorMessage, err)
				return
			}

			next.ServeHTTP(w, r.WithContext(shared.WithBook(r.Context(), book)))
		})
	}
}
