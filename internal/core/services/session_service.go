package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/srgjo27/trip_planner/internal/core/domain"
	"github.com/srgjo27/trip_planner/internal/core/ports"
	"github.com/srgjo27/trip_planner/internal/platform/failure"
)

type CreateBookingRequest struct {
	// CategoryIndex is nil when nothing was selected.
	CategoryIndex *int   `json:"category_index"`
	Destination   string `json:"destination" validate:"max=200"`
	FromDate      string `json:"from_date" validate:"required"`
	ToDate        string `json:"to_date" validate:"required"`
}

type CreateBookingResponse struct {
	BookingID         string          `json:"booking_id"`
	Category          domain.Category `json:"category"`
	Label             string          `json:"label"`
	Days              int             `json:"days"`
	Cost              float64         `json:"cost"`
	ConfirmationTitle string          `json:"confirmation_title"`
	Confirmation      string          `json:"confirmation"`
	RunningTotal      float64         `json:"running_total"`
}

type SessionSummary struct {
	SessionID    string           `json:"session_id"`
	RunningTotal float64          `json:"running_total"`
	Bookings     []domain.Booking `json:"bookings"`
}

type CategoryView struct {
	Index int             `json:"index"`
	Slug  domain.Category `json:"slug"`
	Label string          `json:"label"`
}

type SessionOptions struct {
	IdleTimeout     time.Duration
	CleanupInterval time.Duration
}

// SessionService keeps one independent BookingSession per client on top of a
// SessionRepository. Load, book and save run under a single lock.
type SessionService struct {
	registry    *Registry
	sessionRepo ports.SessionRepository
	opts        SessionOptions
	mu          sync.Mutex
	now         func() time.Time
}

func NewSessionService(registry *Registry, sessionRepo ports.SessionRepository, opts SessionOptions) *SessionService {
	if opts.IdleTimeout <= 0 {
		opts.IdleTimeout = 30 * time.Minute
	}

	if opts.CleanupInterval <= 0 {
		opts.CleanupInterval = time.Minute
	}

	return &SessionService{
		registry:    registry,
		sessionRepo: sessionRepo,
		opts:        opts,
		now:         time.Now,
	}
}

func (s *SessionService) Categories() []CategoryView {
	views := make([]CategoryView, 0, s.registry.Count())
	for i, c := range s.registry.Variants() {
		views = append(views, CategoryView{Index: i, Slug: c, Label: c.Label()})
	}

	return views
}

func (s *SessionService) Category(index int) (*CategoryView, error) {
	c, err := s.registry.VariantAt(index)
	if err != nil {
		return nil, failure.NotFound(err)
	}

	return &CategoryView{Index: index, Slug: c, Label: c.Label()}, nil
}

func (s *SessionService) PriceList() []domain.PriceEntry {
	return s.registry.PriceList()
}

func (s *SessionService) StartSession(ctx context.Context) (*SessionSummary, error) {
	session := domain.NewSession(s.now())

	if err := s.sessionRepo.Create(ctx, session); err != nil {
		log.Error().Err(err).Msg("failed to create session")
		return nil, failure.InternalError(errors.New("failed to create session"))
	}

	log.Info().Str("session_id", session.ID.String()).Msg("session started")

	return summarize(session), nil
}

func (s *SessionService) Book(ctx context.Context, sessionID string, req CreateBookingRequest) (*CreateBookingResponse, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid session id")
	}

	from, err := domain.ParseDate(req.FromDate)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid from_date")
	}

	to, err := domain.ParseDate(req.ToDate)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid to_date")
	}

	index := domain.NoSelection
	if req.CategoryIndex != nil {
		index = *req.CategoryIndex
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	session := ResumeBookingSession(s.registry, state)
	session.now = s.now

	result, err := session.Book(index, req.Destination, from, to)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidSelection):
			return nil, failure.BadRequest(err)
		case errors.Is(err, domain.ErrIndexOutOfRange):
			log.Warn().Err(err).Str("session_id", sessionID).Msg("stale category index")
			return nil, failure.Unprocessable(err)
		}

		return nil, failure.InternalError(err)
	}

	if err := s.sessionRepo.Save(ctx, session.State()); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, failure.NotFound(err)
		}

		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to save session")
		return nil, failure.InternalError(errors.New("failed to save booking"))
	}

	log.Info().
		Str("session_id", sessionID).
		Str("category", result.Booking.Category.String()).
		Int("days", result.Booking.Days).
		Float64("cost", result.Cost).
		Msg("booking recorded")

	return &CreateBookingResponse{
		BookingID:         result.Booking.ID.String(),
		Category:          result.Booking.Category,
		Label:             result.Booking.Label,
		Days:              result.Booking.Days,
		Cost:              result.Cost,
		ConfirmationTitle: result.Booking.Category.ConfirmationTitle(),
		Confirmation:      result.Confirmation,
		RunningTotal:      session.RunningTotal(),
	}, nil
}

func (s *SessionService) GetSession(ctx context.Context, sessionID string) (*SessionSummary, error) {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return nil, failure.BadRequestFromString("invalid session id")
	}

	state, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	return summarize(state), nil
}

func (s *SessionService) EndSession(ctx context.Context, sessionID string) error {
	id, err := uuid.Parse(sessionID)
	if err != nil {
		return failure.BadRequestFromString("invalid session id")
	}

	if err := s.sessionRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return failure.NotFound(err)
		}

		log.Error().Err(err).Str("session_id", sessionID).Msg("failed to delete session")
		return failure.InternalError(errors.New("failed to end session"))
	}

	log.Info().Str("session_id", sessionID).Msg("session ended")

	return nil
}

func (s *SessionService) load(ctx context.Context, id uuid.UUID) (*domain.Session, error) {
	state, err := s.sessionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil, failure.NotFound(err)
		}

		log.Error().Err(err).Str("session_id", id.String()).Msg("failed to load session")
		return nil, failure.InternalError(errors.New("failed to load session"))
	}

	return state, nil
}

func summarize(state *domain.Session) *SessionSummary {
	return &SessionSummary{
		SessionID:    state.ID.String(),
		RunningTotal: state.RunningTotal,
		Bookings:     state.Log(),
	}
}

func (s *SessionService) RunBackgroundCleanup(ctx context.Context) {
	ticker := time.NewTicker(s.opts.CleanupInterval)
	defer ticker.Stop()

	log.Info().Dur("interval", s.opts.CleanupInterval).Msg("Background Worker started: checking idle sessions")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("Background Worker stopped.")
			return
		case <-ticker.C:
			s.processIdleSessions(ctx)
		}
	}
}

func (s *SessionService) processIdleSessions(ctx context.Context) {
	ids, err := s.sessionRepo.GetIdleSessions(ctx, s.now().Add(-s.opts.IdleTimeout))
	if err != nil {
		log.Error().Err(err).Msg("Error fetching idle sessions")
		return
	}

	if len(ids) == 0 {
		return
	}

	log.Info().Int("count", len(ids)).Msg("Found idle sessions. Cleaning up...")

	for _, id := range ids {
		if err := s.sessionRepo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
			log.Error().Err(err).Str("session_id", id.String()).Msg("Failed to end idle session")
		} else {
			log.Debug().Str("session_id", id.String()).Msg("Idle session ended.")
		}
	}
}
