package core

import "sync"

// HighScoreStore is a minimal integer key-value store used to persist the
// best score across sessions. Missing keys read as 0.
type HighScoreStore interface {
	Get(key string) int
	Set(key string, value int)
}

// MemoryStore is an in-process HighScoreStore.
// Used when no database is available and in tests.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]int
	writes int
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]int)}
}

// Get returns the value stored under key, or 0.
func (m *MemoryStore) Get(key string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.values[key]
}

// Set stores value under key.
func (m *MemoryStore) Set(key string, value int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	m.writes++
}

// Writes returns how many times Set has been called.
func (m *MemoryStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
