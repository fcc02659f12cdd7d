package calendarstore

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	document []byte
	expires  time.Time
}

type MemoryStore struct {
	Now func() time.Time

	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		Now:     time.Now,
		entries: map[string]memoryEntry{},
	}
}

func (m *MemoryStore) Put(_ context.Context, token string, document []byte, ttl time.Duration) error {
	if ttl <= 0 {
		return ErrInvalidTTL
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.Now()
	m.sweep(now)

	m.entries[token] = memoryEntry{
		document: append([]byte(nil), document...),
		expires:  now.Add(ttl),
	}

	return nil
}

func (m *MemoryStore) Get(_ context.Context, token string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[token]
	if !ok {
		return nil, ErrNotFound
	}

	if !m.Now().Before(entry.expires) {
		delete(m.entries, token)
		return nil, ErrNotFound
	}

	return append([]byte(nil), entry.document...), nil
}

func (m *MemoryStore) Evict(_ context.Context, token string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, token)

	return nil
}

func (m *MemoryStore) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	return len(m.entries)
}

// sweep drops expired entries, the caller holds the lock
func (m *MemoryStore) sweep(now time.Time) {
	for token, entry := range m.entries {
		if !now.Before(entry.expires) {
			delete(m.entries, token)
		}
	}
}
