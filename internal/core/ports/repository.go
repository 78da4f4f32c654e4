package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/trip_planner/internal/core/domain"
)

// SessionRepository stores live booking sessions. GetByID returns
// domain.ErrSessionNotFound for unknown or expired sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error)
	Save(ctx context.Context, session *domain.Session) error
	Delete(ctx context.Context, sessionID uuid.UUID) error
	GetIdleSessions(ctx context.Context, updatedBefore time.Time) ([]uuid.UUID, error)
}
