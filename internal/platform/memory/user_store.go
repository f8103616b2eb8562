package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/store"
)

// UserStore is a mutex-guarded map implementation of store.UserStore.
// Email uniqueness is exact-match, like the unique index in PostgreSQL.
type UserStore struct {
	mu     sync.RWMutex
	nextID int64
	users  map[int64]domain.User
	now    func() time.Time
}

var _ store.UserStore = (*UserStore)(nil)

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{users: make(map[int64]domain.User), now: time.Now}
}

// emailTakenLocked reports whether email belongs to a user other than exceptID.
func (s *UserStore) emailTakenLocked(email string, exceptID int64) bool {
	for id, u := range s.users {
		if id != exceptID && u.Email == email {
			return true
		}
	}
	return false
}

// Create implements store.UserStore.
func (s *UserStore) Create(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := user.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTakenLocked(user.Email, 0) {
		return store.ErrEmailExists
	}

	s.nextID++
	ts := s.now().UTC()
	user.ID = s.nextID
	user.CreatedAt = ts
	user.UpdatedAt = ts
	s.users[user.ID] = *user
	return nil
}

// GetByID implements store.UserStore.
func (s *UserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return &u, nil
}

// GetByEmail implements store.UserStore.
func (s *UserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			u := u
			return &u, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// List implements store.UserStore.
func (s *UserStore) List(ctx context.Context) ([]*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.User, 0, len(s.users))
	for _, u := range s.users {
		u := u
		out = append(out, &u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update implements store.UserStore. The stored password hash is kept.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.users[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}
	if s.emailTakenLocked(user.Email, user.ID) {
		return store.ErrEmailExists
	}

	updated := *user
	updated.HashedPassword = existing.HashedPassword
	updated.CreatedAt = existing.CreatedAt
	updated.UpdatedAt = s.now().UTC()
	s.users[user.ID] = updated

	user.CreatedAt = updated.CreatedAt
	user.UpdatedAt = updated.UpdatedAt
	return nil
}

// Delete implements store.UserStore.
func (s *UserStore) Delete(ctx context.Context, id int64) (*domain.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	u, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	delete(s.users, id)
	return &u, nil
}
