package services

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/srgjo27/trip_planner/internal/core/domain"
)

type BookResult struct {
	Cost         float64
	Confirmation string
	Booking      domain.Booking
}

// BookingSession is the running total and booking log of one user. It is not
// safe for concurrent use; the owner serialises calls.
type BookingSession struct {
	registry *Registry
	state    *domain.Session
	now      func() time.Time
}

func NewBookingSession(registry *Registry) *BookingSession {
	return &BookingSession{
		registry: registry,
		state:    domain.NewSession(time.Now()),
		now:      time.Now,
	}
}

// ResumeBookingSession wraps previously stored state.
func ResumeBookingSession(registry *Registry, state *domain.Session) *BookingSession {
	return &BookingSession{
		registry: registry,
		state:    state,
		now:      time.Now,
	}
}

// Book records a booking of the category at index over the inclusive date
// range. index == domain.NoSelection fails with ErrInvalidSelection and leaves
// the session untouched. A reversed range is not rejected; its day count goes
// to the pricing rule as is.
func (s *BookingSession) Book(index int, destination string, from, to civil.Date) (*BookResult, error) {
	if index == domain.NoSelection {
		return nil, domain.ErrInvalidSelection
	}

	variant, err := s.registry.VariantAt(index)
	if err != nil {
		return nil, err
	}

	days := domain.DaysInclusive(from, to)
	cost := variant.Cost(days)

	booking := domain.Booking{
		ID:          uuid.New(),
		Category:    variant,
		Label:       variant.Label(),
		Destination: destination,
		From:        from,
		To:          to,
		Days:        days,
		Cost:        cost,
		CreatedAt:   s.now(),
	}

	s.state.Record(booking)

	return &BookResult{
		Cost:         cost,
		Confirmation: variant.Confirmation(destination, from, to),
		Booking:      booking,
	}, nil
}

func (s *BookingSession) RunningTotal() float64 {
	return s.state.RunningTotal
}

func (s *BookingSession) Log() []domain.Booking {
	return s.state.Log()
}

func (s *BookingSession) PriceList() []domain.PriceEntry {
	return s.registry.PriceList()
}

// State exposes the underlying session for storage.
func (s *BookingSession) State() *domain.Session {
	return s.state
}
