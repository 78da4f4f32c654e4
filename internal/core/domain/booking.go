package domain

import (
	"time"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
)

// NoSelection is the index sent when the user has not picked a category.
const NoSelection = -1

type Booking struct {
	ID          uuid.UUID  `json:"id"`
	Category    Category   `json:"category"`
	Label       string     `json:"label"`
	Destination string     `json:"destination"`
	From        civil.Date `json:"from_date"`
	To          civil.Date `json:"to_date"`
	Days        int        `json:"days"`
	Cost        float64    `json:"cost"`
	CreatedAt   time.Time  `json:"created_at"`
}

type PriceEntry struct {
	Category   Category `json:"category"`
	Label      string   `json:"label"`
	CostPerDay float64  `json:"cost_per_day"`
}

// Session accumulates the bookings of one client. RunningTotal always equals
// the sum of the recorded booking costs.
type Session struct {
	ID           uuid.UUID `json:"id"`
	RunningTotal float64   `json:"running_total"`
	Bookings     []Booking `json:"bookings"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewSession(now time.Time) *Session {
	return &Session{
		ID:        uuid.New(),
		Bookings:  []Booking{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Record appends a booking and adds its cost to the total.
func (s *Session) Record(b Booking) {
	s.RunningTotal += b.Cost
	s.Bookings = append(s.Bookings, b)
	s.UpdatedAt = b.CreatedAt
}

// Log returns a copy of the bookings in the order they were made.
func (s *Session) Log() []Booking {
	out := make([]Booking, len(s.Bookings))
	copy(out, s.Bookings)
	return out
}
