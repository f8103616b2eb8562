package middleware

import (
	"net/http"
	"strings"

	"github.com/phrazzld/shelf-api/internal/api/shared"
	"github.com/phrazzld/shelf-api/internal/platform/logger"
	"github.com/phrazzld/shelf-api/internal/redact"
	"github.com/phrazzld/shelf-api/internal/service/auth"
)

// AuthMiddleware provides bearer token authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the token carried in the Authorization header and
// adds its claims to the request context.
//
// The token is the second space-separated part of the header, so both
// "Bearer <token>" and any other scheme word are accepted. A missing token
// yields 401; any verification failure yields 403.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromHeader(r.Header.Get("Authorization"))
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Token is required")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			logger.FromContext(r.Context()).Debug("token rejected",
				"error", redact.Error(err))
			shared.RespondWithError(w, r, http.StatusForbidden, "Forbidden")
			return
		}

		ctx := shared.WithClaims(r.Context(), claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromHeader(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// GetUserID extracts the authenticated user's ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (int64, bool) {
	claims, ok := shared.ClaimsFromContext(r.Context())
	if !ok {
		return 0, false
	}
	return claims.UserID, true
}
