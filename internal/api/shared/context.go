package shared

import (
	"context"

	"github.com/google/uuid"
	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/service/auth"
)

// ContextKey is the type of request-scoped values set by middleware.
type ContextKey string

// Context keys for various values
const (
	// ClaimsContextKey holds the *auth.Claims of an authenticated request.
	ClaimsContextKey ContextKey = "claims"

	// BookContextKey holds the *domain.Book resolved from the path.
	BookContextKey ContextKey = "book"

	// TraceIDKey is the key for the trace ID in the request context
	TraceIDKey ContextKey = "traceID"
)

// SetTraceID stores traceID in ctx, generating a UUID when it is empty.
func SetTraceID(ctx context.Context, traceID string) context.Context {
	if traceID == "" {
		traceID = uuid.NewString()
	}
	return context.WithValue(ctx, TraceIDKey, traceID)
}

// GetTraceID retrieves the trace ID from the context.
// If no trace ID exists, it returns an empty string.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// WithClaims stores authenticated claims in ctx.
func WithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, ClaimsContextKey, claims)
}

// ClaimsFromContext returns the claims set by the auth middleware.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ClaimsContextKey).(*auth.Claims)
	return claims, ok && claims != nil
}

// WithBook stores a resolved book in ctx.
func WithBook(ctx context.Context, book *domain.Book) context.Context {
	return context.WithValue(ctx, BookContextKey, book)
}

// BookFromContext returns the book attached by the book middleware.
func BookFromContext(ctx context.Context) (*domain.Book, bool) {
	book, ok := ctx.Value(BookContextKey).(*domain.Book)
	return book, ok && book != nil
}
