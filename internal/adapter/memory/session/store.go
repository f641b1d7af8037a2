package session

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/heartmarshall/infofinder-backend/internal/domain"
)

// ErrSessionNotFound is returned for unknown, evicted or malformed session ids.
var ErrSessionNotFound = fmt.Errorf("session %w", domain.ErrNotFound)

// Store keeps search sessions in memory, evicting the least recently used
// session once capacity is reached. It is safe for concurrent use.
type Store struct {
	cache *lru.Cache[string, *domain.Session]
	log   *slog.Logger
}

// NewStore creates a store holding at most capacity sessions.
func NewStore(capacity int, logger *slog.Logger) (*Store, error) {
	log := logger.With("adapter", "session")

	cache, err := lru.NewWithEvict(capacity, func(id string, _ *domain.Session) {
		log.Debug("session evicted", slog.String("session_id", id))
	})
	if err != nil {
		return nil, fmt.Errorf("create session cache: %w", err)
	}

	return &Store{cache: cache, log: log}, nil
}

// Create registers a new session under a fresh id.
func (s *Store) Create() *domain.Session {
	sess := domain.NewSession(uuid.NewString())
	s.cache.Add(sess.ID, sess)
	return sess
}

// Get returns the session with the given id.
func (s *Store) Get(id string) (*domain.Session, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrSessionNotFound
	}
	sess, ok := s.cache.Get(id)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return sess, nil
}

// GetOrCreate returns the session with the given id, or a new one when id is
// empty or unknown.
func (s *Store) GetOrCreate(id string) *domain.Session {
	if id != "" {
		if sess, err := s.Get(id); err == nil {
			return sess
		}
	}
	return s.Create()
}

// Delete removes the session. It reports whether the session existed.
func (s *Store) Delete(id string) bool {
	return s.cache.Remove(id)
}

// Len returns the number of stored sessions.
func (s *Store) Len() int {
	return s.cache.Len()
}
