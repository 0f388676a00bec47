package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/polarxpression/batterybuddy-golang/internal/models"
)

// ErrTypesNotConfigured is returned by the memory store before any type list
// has been saved, so callers exercise the same fallback path as a missing
// settings row in MySQL.
var ErrTypesNotConfigured = errors.New("battery types not configured")

// MemoryStore is an in-memory Store used by tests. It mirrors the MySQL
// semantics: store-assigned IDs, whole-record overwrite, and the
// non-negative check on adjust.
type MemoryStore struct {
	mu      sync.Mutex
	items   map[int64]models.BatteryItem
	types   []string
	counter int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[int64]models.BatteryItem)}
}

func (s *MemoryStore) ListItems(ctx context.Context) ([]models.BatteryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make([]models.BatteryItem, 0, len(s.items))
	for _, item := range s.items {
		items = append(items, item)
	}
	return items, nil
}

func (s *MemoryStore) GetItem(ctx context.Context, id int64) (models.BatteryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return models.BatteryItem{}, ErrNotFound
	}
	return item, nil
}

func (s *MemoryStore) CreateItem(ctx context.Context, item models.BatteryItem) (models.BatteryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.counter++
	item.ID = s.counter
	item.UpdatedAt = time.Now()
	s.items[item.ID] = item
	return item, nil
}

func (s *MemoryStore) UpdateItem(ctx context.Context, item models.BatteryItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[item.ID]; !ok {
		return ErrNotFound
	}
	item.UpdatedAt = time.Now()
	s.items[item.ID] = item
	return nil
}

func (s *MemoryStore) DeleteItem(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *MemoryStore) AdjustQuantity(ctx context.Context, id int64, delta int) (models.BatteryItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.items[id]
	if !ok {
		return models.BatteryItem{}, ErrNotFound
	}
	if item.Quantity+delta < 0 {
		return models.BatteryItem{}, ErrNegativeQuantity
	}
	item.Quantity += delta
	item.UpdatedAt = time.Now()
	s.items[id] = item
	return item, nil
}

func (s *MemoryStore) GetBatteryTypes(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.types == nil {
		return nil, ErrTypesNotConfigured
	}
	return append([]string(nil), s.types...), nil
}

func (s *MemoryStore) SaveBatteryTypes(ctx context.Context, types []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.types = append([]string(nil), types...)
	return nil
}
