package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/platform/logger"
	"github.com/phrazzld/shelf-api/internal/service/auth"
	"github.com/phrazzld/shelf-api/internal/store"
	"github.com/phrazzld/shelf-api/internal/validation"
)

// UserService provides account and profile operations.
type UserService interface {
	// Signup validates the input, hashes the password and stores a new user.
	// Returns ErrUserExists if the email is taken.
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)

	// Login verifies credentials and issues a token for the user.
	Login(ctx context.Context, in LoginInput) (*domain.User, string, error)

	// Get retrieves a user by ID. Returns store.ErrUserNotFound if absent.
	Get(ctx context.Context, id int64) (*domain.User, error)

	// List returns all users ordered by ID.
	List(ctx context.Context) ([]*domain.User, error)

	// Update loads the user, merges a validated partial update and persists it.
	Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error)

	// Delete removes a user and returns its last state.
	Delete(ctx context.Context, id int64) (*domain.User, error)
}

// UserServiceImpl implements the UserService interface
type UserServiceImpl struct {
	userStore  store.UserStore
	hasher     auth.PasswordHasher
	jwtService auth.JWTService
	validator  *validation.Validator
	logger     *slog.Logger
}

var _ UserService = (*UserServiceImpl)(nil)

// NewUserService creates a new UserService.
func NewUserService(
	userStore store.UserStore,
	hasher auth.PasswordHasher,
	jwtService auth.JWTService,
	validator *validation.Validator,
	logger *slog.Logger,
) *UserServiceImpl {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserServiceImpl{
		userStore:  userStore,
		hasher:     hasher,
		jwtService: jwtService,
		validator:  validator,
		logger:     logger.With("component", "user_service"),
	}
}

// Signup implements UserService.
func (s *UserServiceImpl) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Struct(in, signupMessages); err != nil {
		log.Debug("signup payload rejected", "error", err)
		return nil, err
	}

	_, err := s.userStore.GetByEmail(ctx, in.Email)
	switch {
	case err == nil:
		log.Debug("attempted signup with existing email")
		return nil, ErrUserExists
	case !errors.Is(err, store.ErrUserNotFound):
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}

	dob, err := validation.ParseDate(in.DateOfBirth)
	if err != nil {
		return nil, fmt.Errorf("failed to parse date of birth: %w", err)
	}

	hashed, err := s.hasher.Hash(in.Password)
	if err != nil {
		// The max tag counts runes; bcrypt's limit is in bytes.
		if errors.Is(err, auth.ErrPasswordTooLong) {
			return nil, &validation.Error{Messages: []string{passwordTooLongMessage}}
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	user := &domain.User{
		FirstName:      in.FirstName,
		LastName:       in.LastName,
		DateOfBirth:    dob,
		Country:        in.Country,
		Email:          in.Email,
		HashedPassword: hashed,
	}
	if err := s.userStore.Create(ctx, user); err != nil {
		// A concurrent signup can win the race after the lookup above.
		if store.IsDuplicateError(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("user signed up", "user_id", user.ID)
	return user, nil
}

// Login implements UserService.
func (s *UserServiceImpl) Login(ctx context.Context, in LoginInput) (*domain.User, string, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if in.Email == "" || in.Password == "" {
		return nil, "", ErrMissingCredentials
	}

	user, err := s.userStore.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug("login for unknown email")
			return nil, "", ErrUserNotExist
		}
		return nil, "", fmt.Errorf("failed to retrieve user for login: %w", err)
	}

	if err := s.hasher.Compare(user.HashedPassword, in.Password); err != nil {
		if !errors.Is(err, auth.ErrPasswordMismatch) {
			log.Warn("password comparison failed", "error", err, "user_id", user.ID)
		}
		return nil, "", fmt.Errorf("%w: %v", ErrInvalidPassword, err)
	}

	token, err := s.jwtService.GenerateToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate token: %w", err)
	}

	log.Info("user logged in", "user_id", user.ID)
	return user, token, nil
}

// Get implements UserService.
func (s *UserServiceImpl) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user: %w", err)
	}
	return user, nil
}

// List implements UserService.
func (s *UserServiceImpl) List(ctx context.Context) ([]*domain.User, error) {
	users, err := s.userStore.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Update implements UserService.
func (s *UserServiceImpl) Update(ctx context.Context, id int64, in UpdateUserInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := s.validator.Struct(in, updateUserMessages); err != nil {
		log.Debug("profile update payload rejected", "error", err, "user_id", id)
		return nil, err
	}

	patch, err := in.Patch()
	if err != nil {
		return nil, fmt.Errorf("failed to build user patch: %w", err)
	}

	user, err := s.userStore.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve user for update: %w", err)
	}

	user.Apply(patch)
	if err := s.userStore.Update(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	log.Info("user updated", "user_id", user.ID)
	return user, nil
}

// Delete implements UserService.
func (s *UserServiceImpl) Delete(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userStore.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return user, nil
}
