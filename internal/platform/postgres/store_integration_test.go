//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"strings"
	"testing"
	"time"

	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/platform/postgres"
	"github.com/phrazzld/shelf-api/internal/store"
	"github.com/phrazzld/shelf-api/internal/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresBookStore(t *testing.T) {
	db := testdb.Open(t)
	testdb.Truncate(t, db, "books")
	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		testBookStore(t, postgres.NewPostgresBookStore(tx, nil))
	})
}

func testBookStore(t *testing.T, s *postgres.PostgresBookStore) {
	ctx := context.Background()

	dune := &domain.Book{Title: "Dune", Author: "Frank Herbert", Genre: "SF", Available: true}
	require.NoError(t, s.Create(ctx, dune))
	assert.Positive(t, dune.ID)
	assert.False(t, dune.CreatedAt.IsZero())

	again := &domain.Book{Title: "Dune", Author: "Frank Herbert", Genre: "SF", Available: true}
	require.NoError(t, s.Create(ctx, again))
	assert.NotEqual(t, dune.ID, again.ID)

	got, err := s.GetByID(ctx, dune.ID)
	require.NoError(t, err)
	assert.Equal(t, "Dune", got.Title)

	got.Available = false
	require.NoError(t, s.Update(ctx, got))
	reloaded, err := s.GetByID(ctx, dune.ID)
	require.NoError(t, err)
	assert.False(t, reloaded.Available)
	assert.Equal(t, "Frank Herbert", reloaded.Author)

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Less(t, all[0].ID, all[1].ID)

	deleted, err := s.Delete(ctx, dune.ID)
	require.NoError(t, err)
	assert.Equal(t, dune.ID, deleted.ID)

	_, err = s.GetByID(ctx, dune.ID)
	assert.ErrorIs(t, err, store.ErrBookNotFound)
	_, err = s.Delete(ctx, dune.ID)
	assert.ErrorIs(t, err, store.ErrBookNotFound)
	assert.ErrorIs(t, s.Update(ctx, &domain.Book{ID: 9999, Title: "x", Author: "y", Genre: "z"}), store.ErrBookNotFound)
}

// Unique violations abort a transaction, so this test runs on the pool
// against emptied tables instead of inside testdb.WithTx.
func TestPostgresUserStore(t *testing.T) {
	db := testdb.Open(t)
	testdb.Truncate(t, db, "users")
	s := postgres.NewPostgresUserStore(db, nil)
	ctx := context.Background()

	newUser := func(email string) *domain.User {
		return &domain.User{
			FirstName:      "Ada",
			LastName:       "Lovelace",
			DateOfBirth:    time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC),
			Country:        "UK",
			Email:          email,
			HashedPassword: "$2a$10$abcdefghijklmnopqrstuv",
		}
	}

	ada := newUser("ada@example.com")
	require.NoError(t, s.Create(ctx, ada))
	assert.Positive(t, ada.ID)

	err := s.Create(ctx, newUser("ada@example.com"))
	assert.ErrorIs(t, err, store.ErrEmailExists)

	byEmail, err := s.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, ada.ID, byEmail.ID)
	assert.Equal(t, ada.HashedPassword, byEmail.HashedPassword)

	_, err = s.GetByEmail(ctx, "ADA@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	bob := newUser("bob@example.com")
	require.NoError(t, s.Create(ctx, bob))
	bob.Email = "ada@example.com"
	assert.ErrorIs(t, s.Update(ctx, bob), store.ErrEmailExists)

	bob.Email = "robert@example.com"
	bob.Country = "FR"
	require.NoError(t, s.Update(ctx, bob))
	got, err := s.GetByID(ctx, bob.ID)
	require.NoError(t, err)
	assert.Equal(t, "FR", got.Country)

	users, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	deleted, err := s.Delete(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", deleted.Email)
	_, err = s.GetByID(ctx, ada.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	assert.ErrorIs(t, s.Create(ctx, &domain.User{Email: "x@example.com"}), domain.ErrEmptyHashedPassword)

	wide := newUser("wide@example.com")
	wide.FirstName = strings.Repeat("a", 255)
	require.NoError(t, s.Create(ctx, wide))

	tooWide := newUser("too-wide@example.com")
	tooWide.FirstName = strings.Repeat("a", 256)
	assert.ErrorIs(t, s.Create(ctx, tooWide), store.ErrInvalidEntity)
}
