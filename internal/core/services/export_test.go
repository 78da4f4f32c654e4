package services

import (
	"context"
	"time"
)

func (s *SessionService) ProcessIdleSessions(ctx context.Context) {
	s.processIdleSessions(ctx)
}

func (s *SessionService) SetClock(now func() time.Time) {
	s.now = now
}

func (s *BookingSession) SetClock(now func() time.Time) {
	s.now = now
}
