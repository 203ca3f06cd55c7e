package session

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	data   Data
	expire time.Time
}

// MemoryStore keeps sessions in process memory. Sessions do not survive a
// restart and are not shared between instances.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	now      func() time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]memoryEntry),
		now:      time.Now,
	}
}

func (s *MemoryStore) Get(_ context.Context, sid string) (*Data, error) {
	s.mu.RLock()
	e, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok || !s.now().Before(e.expire) {
		return nil, ErrNotFound
	}
	data := e.data
	return &data, nil
}

func (s *MemoryStore) Set(_ context.Context, sid string, data Data, ttl time.Duration) error {
	s.mu.Lock()
	s.sessions[sid] = memoryEntry{data: data, expire: s.now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	return nil
}

// PruneExpired drops expired entries.
func (s *MemoryStore) PruneExpired(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	var n int64
	for sid, e := range s.sessions {
		if !now.Before(e.expire) {
			delete(s.sessions, sid)
			n++
		}
	}
	return n, nil
}

// Len returns the number of stored entries, expired ones included.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
