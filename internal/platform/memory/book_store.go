package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/phrazzld/shelf-api/internal/domain"
	"github.com/phrazzld/shelf-api/internal/store"
)

// BookStore is a mutex-guarded map implementation of store.BookStore.
type BookStore struct {
	mu     sync.RWMutex
	nextID int64
	books  map[int64]domain.Book
	now    func() time.Time
}

var _ store.BookStore = (*BookStore)(nil)

// NewBookStore creates an empty BookStore.
func NewBookStore() *BookStore {
	return &BookStore{books: make(map[int64]domain.Book), now: time.Now}
}

// Create implements store.BookStore.
func (s *BookStore) Create(ctx context.Context, book *domain.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	ts := s.now().UTC()
	book.ID = s.nextID
	book.CreatedAt = ts
	book.UpdatedAt = ts
	s.books[book.ID] = *book
	return nil
}

// GetByID implements store.BookStore.
func (s *BookStore) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	b, ok := s.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	return &b, nil
}

// List implements store.BookStore.
func (s *BookStore) List(ctx context.Context) ([]*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Book, 0, len(s.books))
	for _, b := range s.books {
		b := b
		out = append(out, &b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Update implements store.BookStore.
func (s *BookStore) Update(ctx context.Context, book *domain.Book) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.books[book.ID]
	if !ok {
		return store.ErrBookNotFound
	}
	book.CreatedAt = existing.CreatedAt
	book.UpdatedAt = s.now().UTC()
	s.books[book.ID] = *book
	return nil
}

// Delete implements store.BookStore.
func (s *BookStore) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.books[id]
	if !ok {
		return nil, store.ErrBookNotFound
	}
	delete(s.books, id)
	return &b, nil
}
