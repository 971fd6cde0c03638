package tokenstore

import (
	"context"
	"sync"
)

// Memory is an in-process Store guarded by a mutex. Suitable for tests and
// for processes whose token lifetime matches their own.
type Memory struct {
	mu    sync.Mutex
	token string
	set   bool
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-process store.
func NewMemory() *Memory {
	return &Memory{}
}

// Get returns the stored token, or ErrNoToken when none is stored.
func (m *Memory) Get(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.set {
		return "", ErrNoToken
	}
	return m.token, nil
}

// Save replaces the stored token.
func (m *Memory) Save(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = token
	m.set = true
	return nil
}

// Clear removes the stored token.
func (m *Memory) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.token = ""
	m.set = false
	return nil
}
