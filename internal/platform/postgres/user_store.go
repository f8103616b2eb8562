package postgres

import (
	"context"
	"log/slog"

	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/platform/logger"
	"github.com/phrazzld/shelf-api/internal/redact"
	"github.com/phrazzld/shelf-api/internal/store"
)

const userColumns = `id, first_name, last_name, date_of_birth, country, email, hashed_password,
	created_at, updated_at`

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID,
		&u.FirstName,
		&u.LastName,
		&u.DateOfBirth,
		&u.Country,
		&u.Email,
		&u.HashedPassword,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// Create implements store.UserStore.Create
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create", slog.String("error", err.Error()))
		return err
	}

	query := `
		INSERT INTO users (first_name, last_name, date_of_birth, country, email, hashed_password)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		user.FirstName,
		user.LastName,
		user.DateOfBirth,
		user.Country,
		user.Email,
		user.HashedPassword,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("email already exists during user creation")
			return MapUniqueViolation(err, store.ErrEmailExists)
		}
		log.Error("failed to create user", slog.String("error", redact.Error(err)))
		return MapError(err, store.ErrUserNotFound)
	}

	log.Info("user created", slog.Int64("user_id", user.ID))
	return nil
}

func (s *PostgresUserStore) getOne(ctx context.Context, where string, arg any) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE ` + where + ` = $1`
	user, err := scanUser(s.db.QueryRowContext(ctx, query, arg))
	if err != nil {
		mapped := MapError(err, store.ErrUserNotFound)
		if store.IsNotFoundError(mapped) {
			log.Debug("user not found", slog.String("lookup", where))
		} else {
			log.Error("failed to get user",
				slog.String("error", redact.Error(err)),
				slog.String("lookup", where))
		}
		return nil, mapped
	}
	return user, nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.getOne(ctx, "id", id)
}

// GetByEmail implements store.UserStore.GetByEmail
func (s *PostgresUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.getOne(ctx, "email", email)
}

// List implements store.UserStore.List
func (s *PostgresUserStore) List(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	rows, err := s.db.QueryContext(ctx, `SELECT `+userColumns+` FROM users ORDER BY id ASC`)
	if err != nil {
		log.Error("failed to list users", slog.String("error", redact.Error(err)))
		return nil, MapError(err, nil)
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			log.Warn("failed to close rows", slog.String("error", cerr.Error()))
		}
	}()

	users := make([]*domain.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			log.Error("failed to scan user row", slog.String("error", redact.Error(err)))
			return nil, store.NewStoreError("user", "list", "failed to scan row", err)
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		log.Error("error iterating user rows", slog.String("error", redact.Error(err)))
		return nil, store.NewStoreError("user", "list", "row iteration failed", err)
	}

	return users, nil
}

// Update implements store.UserStore.Update
func (s *PostgresUserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET first_name = $1, last_name = $2, date_of_birth = $3, country = $4, email = $5,
		    updated_at = NOW()
		WHERE id = $6
		RETURNING created_at, updated_at
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		user.FirstName,
		user.LastName,
		user.DateOfBirth,
		user.Country,
		user.Email,
		user.ID,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("email already exists during user update", slog.Int64("user_id", user.ID))
			return MapUniqueViolation(err, store.ErrEmailExists)
		}
		mapped := MapError(err, store.ErrUserNotFound)
		if store.IsNotFoundError(mapped) {
			log.Debug("user not found for update", slog.Int64("user_id", user.ID))
		} else {
			log.Error("failed to update user",
				slog.String("error", redact.Error(err)),
				slog.Int64("user_id", user.ID))
		}
		return mapped
	}

	log.Info("user updated", slog.Int64("user_id", user.ID))
	return nil
}

// Delete implements store.UserStore.Delete
func (s *PostgresUserStore) Delete(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `DELETE FROM users WHERE id = $1 RETURNING ` + userColumns
	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		mapped := MapError(err, store.ErrUserNotFound)
		if store.IsNotFoundError(mapped) {
			log.Debug("user not found for delete", slog.Int64("user_id", id))
		} else {
			log.Error("failed to delete user",
				slog.String("error", redact.Error(err)),
				slog.Int64("user_id", id))
		}
		return nil, mapped
	}

	log.Info("user deleted", slog.Int64("user_id", id))
	return user, nil
}
