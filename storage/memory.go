package storage

import (
	"context"
	"sync"

	"zaykaa/models"
)

// MemoryMirror is an in-memory MirrorStore, safe for concurrent use.
type MemoryMirror struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryMirror() *MemoryMirror {
	return &MemoryMirror{values: make(map[string][]byte)}
}

func (m *MemoryMirror) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (m *MemoryMirror) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	v := make([]byte, len(value))
	copy(v, value)
	m.values[key] = v
	return nil
}

func (m *MemoryMirror) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.values, key)
	return nil
}

// MemoryCarts is an in-memory CartStore, safe for concurrent use.
type MemoryCarts struct {
	mu    sync.RWMutex
	carts map[string][]models.CartLine
}

func NewMemoryCarts() *MemoryCarts {
	return &MemoryCarts{carts: make(map[string][]models.CartLine)}
}

func (c *MemoryCarts) Load(ctx context.Context, userID string) ([]models.CartLine, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	lines, ok := c.carts[userID]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

func (c *MemoryCarts) Save(ctx context.Context, userID string, lines []models.CartLine) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := make([]models.CartLine, len(lines))
	copy(v, lines)
	c.carts[userID] = v
	return nil
}

func (c *MemoryCarts) Delete(ctx context.Context, userID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.carts, userID)
	return nil
}
