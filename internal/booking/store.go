package booking

import (
	"context"
	"fmt"
	"time"

	"cinebook/internal/shared/constants"
	"cinebook/pkg/cache"
)

// Store persists Session records in Redis keyed by the storefront session ID.
// Only one page is active per session at a time, so last-write-wins is enough;
// concurrent tabs sharing a session may read stale state, which is accepted.
type Store struct {
	cache cache.Service
	ttl   time.Duration
}

// NewStore creates a session store with the configured TTL
func NewStore(cacheService cache.Service, ttl time.Duration) *Store {
	return &Store{
		cache: cacheService,
		ttl:   ttl,
	}
}

// Get loads the session, returning a fresh empty one when nothing is stored yet
func (s *Store) Get(ctx context.Context, sessionID string) (*Session, error) {
	var session Session
	err := s.cache.Get(ctx, constants.BuildSessionKey(sessionID), &session)
	if err == cache.ErrCacheMiss {
		return &Session{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	return &session, nil
}

// Save writes the session back, refreshing its TTL
func (s *Store) Save(ctx context.Context, sessionID string, session *Session) error {
	if err := s.cache.Set(ctx, constants.BuildSessionKey(sessionID), session, s.ttl); err != nil {
		return fmt.Errorf("save session %s: %w", sessionID, err)
	}
	return nil
}

// Clear drops the session entirely
func (s *Store) Clear(ctx context.Context, sessionID string) error {
	return s.cache.Delete(ctx, constants.BuildSessionKey(sessionID))
}

// Update loads the session, applies fn, and saves the result
func (s *Store) Update(ctx context.Context, sessionID string, fn func(*Session) error) (*Session, error) {
	session, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if err := fn(session); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, sessionID, session); err != nil {
		return nil, err
	}
	return session, nil
}
