package session

import (
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/agrocraft-dev/agrocraft-go/internal/logger"
)

// MemoryStore keeps session values in process memory. It backs tests and
// one-shot CLI invocations that do not need a persisted session.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	now     func() time.Time
	log     *zap.Logger
}

type memoryEntry struct {
	value   string
	expires time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
		log:     logger.Get(),
	}
}

// SetClock replaces the store's notion of now. Tests use it to step past
// expiry deadlines without sleeping.
func (s *MemoryStore) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Get returns the currently valid value for key.
func (s *MemoryStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[key]
	if !ok {
		return "", false
	}
	if !s.now().Before(entry.expires) {
		// Expired entries read the same as absent ones.
		delete(s.entries, key)
		return "", false
	}
	return entry.value, true
}

// Set persists value under key. An empty value is a logged no-op so that a
// missing value never clobbers a live session.
func (s *MemoryStore) Set(key, value string, ttl time.Duration) error {
	if value == "" {
		s.log.Warn("refusing to store empty session value", zap.String("key", key))
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = memoryEntry{value: value, expires: s.now().Add(ttl)}
	return nil
}

// Clear expires the entry immediately.
func (s *MemoryStore) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}
