package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/phrazzld/shelf-api/internal/api/middleware"
	"github.com/phrazzld/shelf-api/internal/api/shared"
	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/platform/logger"
	"github.com/phrazzld/shelf-api/internal/service"
)

// TokenCookieName is the cookie that carries the session token after login.
const TokenCookieName = "token"

// UserHandler handles account and profile API requests.
type UserHandler struct {
	users        service.UserService
	policy       ResponsePolicy
	cookieSecure bool
	logger       *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(
	users service.UserService,
	policy ResponsePolicy,
	cookieSecure bool,
	logger *slog.Logger,
) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:        users,
		policy:       policy,
		cookieSecure: cookieSecure,
		logger:       logger.With(slog.String("component", "user_handler")),
	}
}

// Signup handles POST /api/users/signup.
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var in service.SignupInput
	if !decodeRequest(w, r, &in) {
		return
	}

	user, err := h.users.Signup(r.Context(), in)
	if err != nil {
		if h.policy.SignupExposesErrors && MapErrorToStatusCode(err) == http.StatusInternalServerError {
			shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, err.Error(), err)
			return
		}
		HandleAPIError(w, r, err, "signup")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// Login handles POST /api/users/login.
// The token is returned in the body, in the Authorization header and in an
// HttpOnly cookie.
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var in service.LoginInput
	if !decodeRequest(w, r, &in) {
		return
	}

	user, token, err := h.users.Login(r.Context(), in)
	if err != nil {
		HandleAPIError(w, r, err, "login")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set("Authorization", "Bearer "+token)

	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{
		User:  shapeUser(user, h.policy.LoginOmitsID),
		Token: token,
	})
}

// Logout handles POST /api/users/logout by expiring the token cookie.
func (h *UserHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "User logged out successfully"})
}

// Get handles GET /api/users/{userID}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, UserIDParam)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.users.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "get user")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, shapeUser(user, h.policy.ProfileOmitsID))
}

// List handles GET /api/users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "list users")
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// Update handles PUT /api/users/{userID}.
// Any authenticated caller may update any profile.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token is required")
		return
	}

	id, err := getPathID(r, UserIDParam)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	var in service.UpdateUserInput
	if !decodeRequest(w, r, &in) {
		return
	}

	user, err := h.users.Update(r.Context(), id, in)
	if err != nil {
		HandleAPIError(w, r, err, "update user")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("user updated",
		slog.Int64("user_id", user.ID),
		slog.Int64("actor_id", actorID))
	shared.RespondWithJSON(w, r, http.StatusOK, UserUpdatedResponse{
		Message: "User updated successfully",
		Data:    user.Public(),
		Status:  http.StatusOK,
	})
}

// Delete handles DELETE /api/users/{userID}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actorID, ok := middleware.GetUserID(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Token is required")
		return
	}

	id, err := getPathID(r, UserIDParam)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.users.Delete(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "delete user")
		return
	}

	logger.FromContextOrDefault(r.Context(), h.logger).Info("user deleted",
		slog.Int64("user_id", user.ID),
		slog.Int64("actor_id", actorID))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "User deleted successfully",
		Status:  http.StatusOK,
	})
}

func shapeUser(u *domain.User, omitID bool) map[string]any {
	out := u.Public()
	if omitID {
		delete(out, "id")
	}
	return out
}
