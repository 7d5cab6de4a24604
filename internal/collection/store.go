package collection

import (
	"context"
	"fmt"
	"sync"

	"github.com/cobusiness02/forgefyt/internal/models"
)

// Entity ограничение на тип сущности: указатель на T со служебными полями.
type Entity[T any] interface {
	*T
	Meta() *models.Base
}

// Store хранилище записей одной коллекции. List возвращает записи
// в порядке первой вставки.
type Store[T any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (T, error)
	Put(ctx context.Context, item T) error
	Delete(ctx context.Context, id string) error
}

// MemoryStore хранилище в памяти процесса.
type MemoryStore[T any, P Entity[T]] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string
}

// NewMemoryStore создаёт пустое хранилище в памяти.
func NewMemoryStore[T any, P Entity[T]]() *MemoryStore[T, P] {
	return &MemoryStore[T, P]{items: make(map[string]T)}
}

func (s *MemoryStore[T, P]) List(_ context.Context) ([]T, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out, nil
}

func (s *MemoryStore[T, P]) Get(_ context.Context, id string) (T, error) {
	const op = "collection.MemoryStore.Get"
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.items[id]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return item, nil
}

func (s *MemoryStore[T, P]) Put(_ context.Context, item T) error {
	id := P(&item).Meta().ID
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		s.order = append(s.order, id)
	}
	s.items[id] = item
	return nil
}

func (s *MemoryStore[T, P]) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return nil
	}
	delete(s.items, id)
	for i, v := range s.order {
		if v == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
