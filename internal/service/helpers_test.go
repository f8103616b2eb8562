package service_test

import (
	"testing"

	"github.com/phrazzld/shelf-api/internal/config"
	"github.com/phrazzld/shelf-api/internal/platform/memory"
	"github.com/phrazzld/shelf-api/internal/service"
	"github.com/phrazzld/shelf-api/internal/service/auth"
	"github.com/phrazzld/shelf-api/internal/validation"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func newBookService(t *testing.T) (*service.BookServiceImpl, *memory.BookStore) {
	t.Helper()
	books := memory.NewBookStore()
	return service.NewBookService(books, validation.New(), nil), books
}

func newUserService(t *testing.T) (*service.UserServiceImpl, *memory.UserStore, auth.JWTService) {
	t.Helper()
	users := memory.NewUserStore()
	jwtSvc, err := auth.NewJWTService(config.AuthConfig{
		JWTSecret:            "test-secret-that-is-long-enough-for-testing",
		TokenLifetimeMinutes: 60,
	})
	require.NoError(t, err)
	svc := service.NewUserService(
		users,
		auth.NewBcryptHasher(bcrypt.MinCost),
		jwtSvc,
		validation.New(),
		nil,
	)
	return svc, users, jwtSvc
}

func validSignup(email string) service.SignupInput {
	return service.SignupInput{
		FirstName:   "Ada",
		LastName:    "Lovelace",
		DateOfBirth: "1815-12-10",
		Country:     "UK",
		Email:       email,
		Password:    "analytical",
	}
}
