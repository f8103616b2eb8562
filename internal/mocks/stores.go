package mocks

import (
	"context"

	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/store"
)

// MockBookStore implements store.BookStore for testing.
// Unset functions return Err.
type MockBookStore struct {
	CreateFn  func(ctx context.Context, book *domain.Book) error
	GetByIDFn func(ctx context.Context, id int64) (*domain.Book, error)
	ListFn    func(ctx context.Context) ([]*domain.Book, error)
	UpdateFn  func(ctx context.Context, book *domain.Book) error
	DeleteFn  func(ctx context.Context, id int64) (*domain.Book, error)

	Err error
}

var _ store.BookStore = (*MockBookStore)(nil)

func (m *MockBookStore) Create(ctx context.Context, book *domain.Book) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, book)
	}
	return m.Err
}

func (m *MockBookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, m.Err
}

func (m *MockBookStore) List(ctx context.Context) ([]*domain.Book, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, m.Err
}

func (m *MockBookStore) Update(ctx context.Context, book *domain.Book) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, book)
	}
	return m.Err
}

func (m *MockBookStore) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil, m.Err
}

// MockUserStore implements store.UserStore for testing.
// Unset functions return Err; GetByEmail falls back to store.ErrUserNotFound
// when Err is nil so that signup can proceed.
type MockUserStore struct {
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	ListFn       func(ctx context.Context) ([]*domain.User, error)
	UpdateFn     func(ctx context.Context, user *domain.User) error
	DeleteFn     func(ctx context.Context, id int64) (*domain.User, error)

	Err error
}

var _ store.UserStore = (*MockUserStore)(nil)

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, m.Err
}

func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	if m.Err == nil {
		return nil, store.ErrUserNotFound
	}
	return nil, m.Err
}

func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}
	return nil, m.Err
}

func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return m.Err
}

func (m *MockUserStore) Delete(ctx context.Context, id int64) (*domain.User, error) {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil, m.Err
}
