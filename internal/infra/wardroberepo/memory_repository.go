package wardroberepo

import (
	"context"
	"sync"

	"github.com/yanqian/weather-outfit/internal/domain/wardrobe"
)

// MemoryRepository is an in-memory wardrobe.Repository used for tests/dev.
// Insertion order is preserved per user, which the engine relies on for
// deterministic tie-breaking.
type MemoryRepository struct {
	mu    sync.RWMutex
	items map[string][]wardrobe.Item
}

// NewMemoryRepository constructs a repo backed by memory.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string][]wardrobe.Item)}
}

// ListItems implements wardrobe.Repository.
func (r *MemoryRepository) ListItems(_ context.Context, userID string) ([]wardrobe.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	stored := r.items[userID]
	out := make([]wardrobe.Item, len(stored))
	copy(out, stored)
	return out, nil
}

// InsertItem implements wardrobe.Repository.
func (r *MemoryRepository) InsertItem(_ context.Context, userID string, item wardrobe.Item) (wardrobe.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	item.Colors = append([]string(nil), item.Colors...)
	r.items[userID] = append(r.items[userID], item)
	return item, nil
}

var _ wardrobe.Repository = (*MemoryRepository)(nil)
