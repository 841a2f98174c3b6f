package storage

import (
	"context"
	"sync"

	"github.com/Alturino/audiophile/cart/store"
)

// Memory is the in-memory Storage used by tests.
type Memory struct {
	mu        sync.Mutex
	items     map[string][]store.LineItem
	saveCount int
}

func NewMemory() *Memory {
	return &Memory{items: map[string][]store.LineItem{}}
}

func (m *Memory) Save(_ context.Context, ownerID string, items []store.LineItem) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := make([]store.LineItem, len(items))
	copy(copied, items)
	m.items[ownerID] = copied
	m.saveCount++
	return nil
}

func (m *Memory) Load(_ context.Context, ownerID string) ([]store.LineItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	items, ok := m.items[ownerID]
	if !ok {
		return nil, nil
	}
	copied := make([]store.LineItem, len(items))
	copy(copied, items)
	return copied, nil
}

func (m *Memory) Clear(_ context.Context, ownerID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.items, ownerID)
	return nil
}

func (m *Memory) SaveCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCount
}
