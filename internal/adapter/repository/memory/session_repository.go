package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/trip_planner/internal/core/domain"
)

// SessionRepository keeps sessions in process memory. Values are copied on the
// way in and out so callers never share a session with the store.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*domain.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{sessions: make(map[uuid.UUID]*domain.Session)}
}

func (r *SessionRepository) Create(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = clone(session)

	return nil
}

func (r *SessionRepository) GetByID(_ context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	session, ok := r.sessions[sessionID]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}

	return clone(session), nil
}

func (r *SessionRepository) Save(_ context.Context, session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[session.ID]; !ok {
		return domain.ErrSessionNotFound
	}

	r.sessions[session.ID] = clone(session)

	return nil
}

func (r *SessionRepository) Delete(_ context.Context, sessionID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return domain.ErrSessionNotFound
	}

	delete(r.sessions, sessionID)

	return nil
}

func (r *SessionRepository) GetIdleSessions(_ context.Context, updatedBefore time.Time) ([]uuid.UUID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var ids []uuid.UUID
	for id, session := range r.sessions {
		if session.UpdatedAt.Before(updatedBefore) {
			ids = append(ids, id)
		}
	}

	return ids, nil
}

func clone(s *domain.Session) *domain.Session {
	c := *s
	c.Bookings = s.Log()

	return &c
}
