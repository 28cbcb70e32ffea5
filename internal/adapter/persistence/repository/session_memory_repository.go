package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"depannel_dispatch/internal/domain/entities"
	"depannel_dispatch/internal/usecase/interfaces"
)

type sessionEntry struct {
	principal entities.Principal
	expiresAt time.Time
}

// SessionMemoryRepository keeps sessions in process. Expired entries are
// dropped on lookup.
type SessionMemoryRepository struct {
	mu       sync.Mutex
	sessions map[string]sessionEntry
	now      func() time.Time
}

var _ interfaces.ISessionStore = (*SessionMemoryRepository)(nil)

func NewSessionMemoryRepository() *SessionMemoryRepository {
	return &SessionMemoryRepository{sessions: make(map[string]sessionEntry), now: time.Now}
}

func (r *SessionMemoryRepository) Save(_ context.Context, p entities.Principal, ttl time.Duration) error {
	if p.Token == "" {
		return errors.New("session token is required")
	}
	e := sessionEntry{principal: p}
	if ttl > 0 {
		e.expiresAt = r.now().Add(ttl)
	}
	r.mu.Lock()
	r.sessions[p.Token] = e
	r.mu.Unlock()
	return nil
}

func (r *SessionMemoryRepository) Lookup(_ context.Context, token string) (entities.Principal, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	e, ok := r.sessions[token]
	if !ok {
		return entities.Principal{}, false, nil
	}
	if !e.expiresAt.IsZero() && !r.now().Before(e.expiresAt) {
		delete(r.sessions, token)
		return entities.Principal{}, false, nil
	}
	return e.principal, true, nil
}

func (r *SessionMemoryRepository) Invalidate(_ context.Context, token string) error {
	r.mu.Lock()
	delete(r.sessions, token)
	r.mu.Unlock()
	return nil
}
