package api_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/shelf-api/internal/api"
	"github.com/phrazzld/shelf-api/internal/api/middleware"
	"github.com/phrazzld/shelf-api/internal/config"
	"github.com/phrazzld/shelf-api/internal/platform/memory"
	"github.com/phrazzld/shelf-api/internal/service"
	"github.com/phrazzld/shelf-api/internal/service/auth"
	"github.com/phrazzld/shelf-api/internal/store"
	"github.com/phrazzld/shelf-api/internal/validation"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

type testServer struct {
	handler http.Handler
	books   *memory.BookStore
	users   store.UserStore
	jwt     auth.JWTService
}

type serverOption func(*serverOptions)

type serverOptions struct {
	policy api.ResponsePolicy
	users  store.UserStore
	logger *slog.Logger
}

func withPolicy(p api.ResponsePolicy) serverOption {
	return func(o *serverOptions) { o.policy = p }
}

func withUserStore(s store.UserStore) serverOption {
	return func(o *serverOptions) { o.users = s }
}

func withLogger(l *slog.Logger) serverOption {
	return func(o *serverOptions) { o.logger = l }
}

func newTestServer(t *testing.T, opts ...serverOption) *testServer {
	t.Helper()

	o := serverOptions{policy: api.DefaultResponsePolicy(), users: memory.NewUserStore()}
	for _, opt := range opts {
		opt(&o)
	}

	jwtSvc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            testSecret,
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)

	v := validation.New()
	books := memory.NewBookStore()

	bookSvc := service.NewBookService(books, v, nil)
	userSvc := service.NewUserService(o.users, auth.NewBcryptHasher(bcrypt.MinCost), jwtSvc, v, nil)

	r := chi.NewRouter()
	r.Use(middleware.Trace(o.logger))
	r.Mount("/api", api.Routes(
		api.NewBookHandler(bookSvc, nil),
		api.NewUserHandler(userSvc, o.policy, false, nil),
		middleware.NewAuthMiddleware(jwtSvc),
	))

	return &testServer{handler: r, books: books, users: o.users, jwt: jwtSvc}
}

func (s *testServer) do(t *testing.T, method, path string, body any, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	msg, _ := decodeBody(t, w)["error"].(string)
	return msg
}

func signupPayload(email string) map[string]any {
	return map[string]any{
		"firstName":   "Ada",
		"lastName":    "Lovelace",
		"dateOfBirth": "1815-12-10",
		"country":     "UK",
		"email":       email,
		"password":    "secret1",
	}
}
