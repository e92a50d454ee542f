package service

import (
	"log/slog"
	"sync"
	"time"

	"github.com/cloo-solutions/moviescreen/internal/domain"
	"github.com/cloo-solutions/moviescreen/internal/words"
	"github.com/google/uuid"
)

// UUIDGenerator generates session identifiers
type UUIDGenerator interface {
	Generate() string
}

// DefaultUUIDGenerator uses google/uuid
type DefaultUUIDGenerator struct{}

func (g *DefaultUUIDGenerator) Generate() string {
	return uuid.New().String()
}

type sessionEntry struct {
	screen   *Screen
	lastSeen time.Time
}

// SessionStore keeps one Screen per client session in memory. Nothing
// survives a restart.
type SessionStore struct {
	resolver Resolver
	words    words.Generator
	uuidGen  UUIDGenerator
	logger   *slog.Logger
	now      func() time.Time

	mu       sync.Mutex
	sessions map[string]*sessionEntry
}

func NewSessionStore(resolver Resolver, gen words.Generator, uuidGen UUIDGenerator, logger *slog.Logger) *SessionStore {
	return &SessionStore{
		resolver: resolver,
		words:    gen,
		uuidGen:  uuidGen,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*sessionEntry),
	}
}

// Create starts a new session with an empty screen.
func (s *SessionStore) Create() (string, *Screen) {
	id := s.uuidGen.Generate()
	screen := NewScreen(s.resolver, s.words, s.logger.With(slog.String("session_id", id)))

	s.mu.Lock()
	s.sessions[id] = &sessionEntry{screen: screen, lastSeen: s.now()}
	s.mu.Unlock()

	s.logger.Info("session_created", slog.String("session_id", id))
	return id, screen
}

// Get returns the session's screen and marks the session as used.
func (s *SessionStore) Get(id string) (*Screen, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	entry.lastSeen = s.now()
	return entry.screen, nil
}

func (s *SessionStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return domain.ErrSessionNotFound
	}
	delete(s.sessions, id)
	s.logger.Info("session_deleted", slog.String("session_id", id))
	return nil
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// EvictIdle drops sessions not used for longer than maxIdle and returns how
// many were dropped. A non-positive maxIdle keeps everything.
func (s *SessionStore) EvictIdle(maxIdle time.Duration) int {
	if maxIdle <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-maxIdle)
	evicted := 0
	for id, entry := range s.sessions {
		if entry.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			evicted++
			s.logger.Info("session_expired",
				slog.String("session_id", id),
				slog.Int("favorites", len(entry.screen.Favorites())))
		}
	}
	return evicted
}
