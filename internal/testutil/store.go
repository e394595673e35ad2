package testutil

import (
	"context"
	"sort"
	"sync"

	ierr "github.com/smsdesk/smsdesk/internal/errors"
)

// FilterFunc is a generic filter function type
type FilterFunc[T any] func(ctx context.Context, item T) bool

// SortFunc is a generic sort function type
type SortFunc[T any] func(i, j T) bool

// InMemoryStore implements a generic in-memory store
type InMemoryStore[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	// failWith makes every operation return this error, simulating an unavailable store
	failWith error
}

// NewInMemoryStore creates a new InMemoryStore
func NewInMemoryStore[T any]() *InMemoryStore[T] {
	return &InMemoryStore[T]{
		items: make(map[string]T),
	}
}

// FailWith makes every subsequent operation fail with err until cleared with nil
func (s *InMemoryStore[T]) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failWith = err
}

func (s *InMemoryStore[T]) failure() error {
	if s.failWith == nil {
		return nil
	}
	return ierr.WithError(s.failWith).
		WithHint("Something went wrong, please try again").
		Mark(ierr.ErrDatabase)
}

// Create adds a new item to the store
func (s *InMemoryStore[T]) Create(ctx context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failure(); err != nil {
		return err
	}
	if _, exists := s.items[id]; exists {
		return ierr.NewError("item already exists").
			WithHintf("Item %s already exists", id).
			Mark(ierr.ErrAlreadyExists)
	}

	s.items[id] = item
	return nil
}

// Get retrieves an item by ID
func (s *InMemoryStore[T]) Get(ctx context.Context, id string) (T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var zero T
	if err := s.failure(); err != nil {
		return zero, err
	}
	if item, exists := s.items[id]; exists {
		return item, nil
	}

	return zero, ierr.NewError("item not found").
		WithHintf("Item %s was not found", id).
		Mark(ierr.ErrNotFound)
}

// List retrieves items matching filterFn ordered by sortFn
func (s *InMemoryStore[T]) List(ctx context.Context, filterFn FilterFunc[T], sortFn SortFunc[T]) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.failure(); err != nil {
		return nil, err
	}

	result := make([]T, 0, len(s.items))
	for _, item := range s.items {
		if filterFn == nil || filterFn(ctx, item) {
			result = append(result, item)
		}
	}

	if sortFn != nil {
		sort.Slice(result, func(i, j int) bool {
			return sortFn(result[i], result[j])
		})
	}

	return result, nil
}

// Count returns the total number of items matching the filter
func (s *InMemoryStore[T]) Count(ctx context.Context, filterFn FilterFunc[T]) (int, error) {
	items, err := s.List(ctx, filterFn, nil)
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Update updates an existing item
func (s *InMemoryStore[T]) Update(ctx context.Context, id string, item T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failure(); err != nil {
		return err
	}
	if _, exists := s.items[id]; !exists {
		return ierr.NewError("item not found").
			WithHintf("Item %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	s.items[id] = item
	return nil
}

// Delete removes an item from the store
func (s *InMemoryStore[T]) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failure(); err != nil {
		return err
	}
	if _, exists := s.items[id]; !exists {
		return ierr.NewError("item not found").
			WithHintf("Item %s was not found", id).
			Mark(ierr.ErrNotFound)
	}

	delete(s.items, id)
	return nil
}

// DeleteWhere removes every item matching filterFn and returns how many were removed
func (s *InMemoryStore[T]) DeleteWhere(ctx context.Context, filterFn FilterFunc[T]) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.failure(); err != nil {
		return 0, err
	}

	var n int64
	for id, item := range s.items {
		if filterFn(ctx, item) {
			delete(s.items, id)
			n++
		}
	}
	return n, nil
}

// Clear removes all items from the store
func (s *InMemoryStore[T]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]T)
	s.failWith = nil
}
