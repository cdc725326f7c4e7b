package kvstore

import (
	"context"
	"sync"
	"time"
)

var _ Store = (*MemStore)(nil)

type memEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemStore is a map backed Store, used in tests and for the "memory" backend.
type MemStore struct {
	mutex   sync.Mutex
	entries map[string]memEntry
	now     func() time.Time

	// FailWith, when set, makes every call return it.
	FailWith error
}

func NewMemStore() *MemStore {
	return &MemStore{
		entries: make(map[string]memEntry),
		now:     time.Now,
	}
}

// NewMemStoreWithClock lets tests drive expiry.
func NewMemStoreWithClock(now func() time.Time) *MemStore {
	s := NewMemStore()
	s.now = now
	return s
}

func (s *MemStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.FailWith != nil {
		return nil, s.FailWith
	}

	e, ok := s.entries[key]
	if !ok {
		return nil, ErrNotFound
	}
	if !e.expiresAt.IsZero() && !s.now().Before(e.expiresAt) {
		delete(s.entries, key)
		return nil, ErrNotFound
	}

	val := make([]byte, len(e.value))
	copy(val, e.value)
	return val, nil
}

func (s *MemStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}

	e := memEntry{value: make([]byte, len(value))}
	copy(e.value, value)
	if ttl > 0 {
		e.expiresAt = s.now().Add(ttl)
	}
	s.entries[key] = e
	return nil
}

func (s *MemStore) Delete(_ context.Context, key string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.FailWith != nil {
		return s.FailWith
	}
	delete(s.entries, key)
	return nil
}

func (s *MemStore) Len() int {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return len(s.entries)
}

// Keys returns the stored keys, in no particular order.
func (s *MemStore) Keys() []string {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	keys := make([]string, 0, len(s.entries))
	for k := range s.entries {
		keys = append(keys, k)
	}
	return keys
}
