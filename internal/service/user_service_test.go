package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/shelf-api/internal/service"
	"github.com/phrazzld/shelf-api/internal/store"
	"github.com/phrazzld/shelf-api/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_Signup(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("stores a hash, never the plaintext", func(t *testing.T) {
		svc, users, _ := newUserService(t)
		user, err := svc.Signup(ctx, validSignup("ada@example.com"))
		require.NoError(t, err)

		stored, err := users.GetByID(ctx, user.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, stored.HashedPassword)
		assert.NotEqual(t, "analytical", stored.HashedPassword)
		assert.True(t, time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC).Equal(stored.DateOfBirth))
	})

	t.Run("duplicate email is rejected without a second record", func(t *testing.T) {
		svc, users, _ := newUserService(t)
		_, err := svc.Signup(ctx, validSignup("ada@example.com"))
		require.NoError(t, err)

		_, err = svc.Signup(ctx, validSignup("ada@example.com"))
		assert.ErrorIs(t, err, service.ErrUserExists)

		all, err := users.List(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("validation messages", func(t *testing.T) {
		svc, _, _ := newUserService(t)
		_, err := svc.Signup(ctx, service.SignupInput{
			DateOfBirth: "not a date",
			Email:       "not-an-email",
			Password:    "123",
		})

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{
			"First name is required",
			"Last name is required",
			"Invalid date format, expected YYYY-MM-DD",
			"Country is required",
			"Invalid email address",
			"Password must be at least 6 characters long",
		}, verr.Messages)
	})

	t.Run("passwords bcrypt cannot hash are rejected as invalid input", func(t *testing.T) {
		tests := []struct {
			name     string
			password string
		}{
			{name: "too many characters", password: strings.Repeat("p", 80)},
			{name: "too many bytes", password: strings.Repeat("é", 40)},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc, users, _ := newUserService(t)
				in := validSignup("ada@example.com")
				in.Password = tt.password

				_, err := svc.Signup(ctx, in)

				var verr *validation.Error
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, []string{"Password must be at most 72 characters long"}, verr.Messages)
				all, err := users.List(ctx)
				require.NoError(t, err)
				assert.Empty(t, all)
			})
		}
	})

	t.Run("text fields are capped at the column width", func(t *testing.T) {
		svc, _, _ := newUserService(t)
		in := validSignup("ada@example.com")
		in.FirstName = strings.Repeat("a", 256)
		in.Country = strings.Repeat("c", 256)

		_, err := svc.Signup(ctx, in)

		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{
			"First name must be at most 255 characters long",
			"Country must be at most 255 characters long",
		}, verr.Messages)

		in.FirstName = strings.Repeat("a", 255)
		in.Country = strings.Repeat("c", 255)
		_, err = svc.Signup(ctx, in)
		assert.NoError(t, err)
	})
}

func TestUserService_Login(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, jwtSvc := newUserService(t)

	created, err := svc.Signup(ctx, validSignup("ada@example.com"))
	require.NoError(t, err)

	tests := []struct {
		name    string
		in      service.LoginInput
		wantErr error
	}{
		{name: "missing email", in: service.LoginInput{Password: "analytical"}, wantErr: service.ErrMissingCredentials},
		{name: "missing password", in: service.LoginInput{Email: "ada@example.com"}, wantErr: service.ErrMissingCredentials},
		{name: "unknown email", in: service.LoginInput{Email: "bob@example.com", Password: "analytical"}, wantErr: service.ErrUserNotExist},
		{name: "wrong password", in: service.LoginInput{Email: "ada@example.com", Password: "difference"}, wantErr: service.ErrInvalidPassword},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, token, err := svc.Login(ctx, tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, user)
			assert.Empty(t, token)
		})
	}

	t.Run("success issues a verifiable token", func(t *testing.T) {
		user, token, err := svc.Login(ctx, service.LoginInput{Email: "ada@example.com", Password: "analytical"})
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)

		claims, err := jwtSvc.ValidateToken(ctx, token)
		require.NoError(t, err)
		assert.Equal(t, created.ID, claims.UserID)
		assert.Equal(t, "ada@example.com", claims.Email)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("partial update keeps other fields and the password", func(t *testing.T) {
		svc, users, _ := newUserService(t)
		created, err := svc.Signup(ctx, validSignup("ada@example.com"))
		require.NoError(t, err)
		before, err := users.GetByID(ctx, created.ID)
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, service.UpdateUserInput{
			Country:     strPtr("FR"),
			DateOfBirth: strPtr("1815-12-11"),
		})
		require.NoError(t, err)
		assert.Equal(t, "FR", updated.Country)
		assert.Equal(t, "Ada", updated.FirstName)
		assert.Equal(t, 11, updated.DateOfBirth.Day())

		after, err := users.GetByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, before.HashedPassword, after.HashedPassword)

		_, _, err = svc.Login(ctx, service.LoginInput{Email: "ada@example.com", Password: "analytical"})
		assert.NoError(t, err)
	})

	t.Run("invalid present fields", func(t *testing.T) {
		svc, _, _ := newUserService(t)
		created, err := svc.Signup(ctx, validSignup("ada@example.com"))
		require.NoError(t, err)

		_, err = svc.Update(ctx, created.ID, service.UpdateUserInput{
			Email:       strPtr("nope"),
			DateOfBirth: strPtr("yesterday"),
		})
		var verr *validation.Error
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Invalid date format, expected YYYY-MM-DD", "Invalid email address"}, verr.Messages)

		_, err = svc.Update(ctx, created.ID, service.UpdateUserInput{LastName: strPtr(strings.Repeat("l", 256))})
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Last name must be at most 255 characters long"}, verr.Messages)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		svc, _, _ := newUserService(t)
		_, err := svc.Signup(ctx, validSignup("ada@example.com"))
		require.NoError(t, err)
		bob, err := svc.Signup(ctx, validSignup("bob@example.com"))
		require.NoError(t, err)

		_, err = svc.Update(ctx, bob.ID, service.UpdateUserInput{Email: strPtr("ada@example.com")})
		assert.ErrorIs(t, err, service.ErrUserExists)
	})

	t.Run("unknown user", func(t *testing.T) {
		svc, _, _ := newUserService(t)
		_, err := svc.Update(ctx, 42, service.UpdateUserInput{Country: strPtr("FR")})
		assert.ErrorIs(t, err, store.ErrUserNotFound)
	})
}

func TestUserService_GetListDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc, _, _ := newUserService(t)

	ada, err := svc.Signup(ctx, validSignup("ada@example.com"))
	require.NoError(t, err)
	_, err = svc.Signup(ctx, validSignup("bob@example.com"))
	require.NoError(t, err)

	got, err := svc.Get(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", got.Email)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.Delete(ctx, ada.ID)
	require.NoError(t, err)
	_, err = svc.Get(ctx, ada.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
	_, err = svc.Delete(ctx, ada.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}
