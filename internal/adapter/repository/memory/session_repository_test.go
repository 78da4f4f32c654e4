package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/trip_planner/internal/adapter/repository/memory"
	"github.com/srgjo27/trip_planner/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Lifecycle(t *testing.T) {
	repo := memory.NewSessionRepository()
	ctx := context.Background()

	session := domain.NewSession(time.Now())
	require.NoError(t, repo.Create(ctx, session))

	loaded, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, session.ID, loaded.ID)

	loaded.Record(domain.Booking{Category: domain.Hotel, Cost: 30000, CreatedAt: time.Now()})

	stored, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.RunningTotal, "unsaved changes must not leak into the store")

	require.NoError(t, repo.Save(ctx, loaded))

	stored, err = repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 30000.0, stored.RunningTotal)
	assert.Len(t, stored.Bookings, 1)

	require.NoError(t, repo.Delete(ctx, session.ID))

	_, err = repo.GetByID(ctx, session.ID)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionRepository_Unknown(t *testing.T) {
	repo := memory.NewSessionRepository()
	ctx := context.Background()

	assert.ErrorIs(t, repo.Save(ctx, domain.NewSession(time.Now())), domain.ErrSessionNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, uuid.New()), domain.ErrSessionNotFound)
}

func TestSessionRepository_GetIdleSessions(t *testing.T) {
	repo := memory.NewSessionRepository()
	ctx := context.Background()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

	stale := domain.NewSession(now.Add(-time.Hour))
	fresh := domain.NewSession(now.Add(-time.Minute))
	require.NoError(t, repo.Create(ctx, stale))
	require.NoError(t, repo.Create(ctx, fresh))

	ids, err := repo.GetIdleSessions(ctx, now.Add(-30*time.Minute))
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{stale.ID}, ids)
}
