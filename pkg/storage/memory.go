package storage

import (
	"context"
	"encoding/json"
	"sync"
	"time"
)

// MemoryStorage is a map-backed Storage used in tests and when no
// Redis backend is configured. Values survive only for the process
// lifetime, matching the volatile nature of the original state.
type MemoryStorage struct {
	mu      sync.RWMutex
	data    map[string][]byte
	expires map[string]time.Time

	// FailWrites makes every SetJSON return an error; tests use it to
	// exercise the swallow-persistence-failures path.
	FailWrites bool
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		data:    make(map[string][]byte),
		expires: make(map[string]time.Time),
	}
}

func (m *MemoryStorage) Ping(ctx context.Context) error {
	return nil
}

func (m *MemoryStorage) GetJSON(ctx context.Context, key string, dest interface{}) error {
	m.mu.RLock()
	raw, ok := m.data[key]
	exp, hasExp := m.expires[key]
	m.mu.RUnlock()

	if ok && hasExp && time.Now().After(exp) {
		m.mu.Lock()
		delete(m.data, key)
		delete(m.expires, key)
		m.mu.Unlock()
		ok = false
	}
	if !ok {
		return ErrKeyNotFound
	}
	return json.Unmarshal(raw, dest)
}

func (m *MemoryStorage) SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	if m.FailWrites {
		return errQuotaExceeded
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = data
	if expiration > 0 {
		m.expires[key] = time.Now().Add(expiration)
	} else {
		delete(m.expires, key)
	}
	return nil
}

func (m *MemoryStorage) Delete(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
		delete(m.expires, key)
	}
	return nil
}

func (m *MemoryStorage) Close() error {
	return nil
}

var errQuotaExceeded = quotaError("storage: quota exceeded")

type quotaError string

func (e quotaError) Error() string { return string(e) }
