package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/srgjo27/trip_planner/internal/core/domain"
)

const keyPrefix = "trip:session:"

// SessionRepository stores each session as JSON under its own key. The key
// TTL is the idle timeout and is refreshed on every write, so an abandoned
// session simply disappears.
type SessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSessionRepository(client *redis.Client, ttl time.Duration) *SessionRepository {
	return &SessionRepository{client: client, ttl: ttl}
}

func Key(sessionID uuid.UUID) string {
	return keyPrefix + sessionID.String()
}

func (r *SessionRepository) Create(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ok, err := r.client.SetNX(ctx, Key(session.ID), payload, r.ttl).Result()
	if err != nil {
		log.Error().Err(err).Str("key", Key(session.ID)).Msg("failed to create session")
		return fmt.Errorf("failed to create session: %w", err)
	}

	if !ok {
		return fmt.Errorf("session %s already exists", session.ID)
	}

	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID uuid.UUID) (*domain.Session, error) {
	raw, err := r.client.Get(ctx, Key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrSessionNotFound
		}

		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(raw, &session); err != nil {
		log.Error().Err(err).Str("key", Key(sessionID)).Msg("failed to unmarshal session")
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

func (r *SessionRepository) Save(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ok, err := r.client.SetXX(ctx, Key(session.ID), payload, r.ttl).Result()
	if err != nil {
		log.Error().Err(err).Str("key", Key(session.ID)).Msg("failed to save session")
		return fmt.Errorf("failed to save session: %w", err)
	}

	if !ok {
		return domain.ErrSessionNotFound
	}

	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID uuid.UUID) error {
	n, err := r.client.Del(ctx, Key(sessionID)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}

	if n == 0 {
		return domain.ErrSessionNotFound
	}

	return nil
}

// GetIdleSessions reports nothing: redis expires idle sessions itself.
func (r *SessionRepository) GetIdleSessions(_ context.Context, _ time.Time) ([]uuid.UUID, error) {
	return nil, nil
}
