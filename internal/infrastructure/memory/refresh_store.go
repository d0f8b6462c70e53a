package memory

import (
	"context"
	"sync"
	"time"
)

type refreshEntry struct {
	userID    string
	expiresAt time.Time
}

// RefreshTokenStore is the in-process session store used by tests and
// SESSION_STORE=memory. Expired ids behave as if they were never saved.
type RefreshTokenStore struct {
	mu      sync.Mutex
	entries map[string]refreshEntry
	now     func() time.Time
}

func NewRefreshTokenStore() *RefreshTokenStore {
	return &RefreshTokenStore{
		entries: make(map[string]refreshEntry),
		now:     time.Now,
	}
}

func (s *RefreshTokenStore) Save(_ context.Context, jti, userID string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for id, e := range s.entries {
		if !now.Before(e.expiresAt) {
			delete(s.entries, id)
		}
	}

	s.entries[jti] = refreshEntry{userID: userID, expiresAt: now.Add(ttl)}
	return nil
}

// Len counts stored ids, expired ones included until the next Save
func (s *RefreshTokenStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Consume removes jti and reports whether it was live
func (s *RefreshTokenStore) Consume(_ context.Context, jti string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[jti]
	if !ok {
		return false, nil
	}
	delete(s.entries, jti)
	return s.now().Before(entry.expiresAt), nil
}

func (s *RefreshTokenStore) Revoke(_ context.Context, jti string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, jti)
	return nil
}
