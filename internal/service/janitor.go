package service

import (
	"context"
	"time"

	"daily_diet/internal/logger"
	"daily_diet/internal/repository"
)

const defaultSweepInterval = 10 * time.Minute

// SessionJanitorService deletes expired sessions on a fixed interval.
type SessionJanitorService struct {
	sessions repository.Sessions
	log      *logger.Logger
	now      func() time.Time
}

func NewSessionJanitor(sessions repository.Sessions, log *logger.Logger) *SessionJanitorService {
	return &SessionJanitorService{
		sessions: sessions,
		log:      log,
		now:      time.Now,
	}
}

// Run ticks at the given interval until ctx is canceled.
func (s *SessionJanitorService) Run(ctx context.Context, tick time.Duration) {
	if tick <= 0 {
		tick = defaultSweepInterval
	}
	t := time.NewTicker(tick)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			s.sweep(ctx)
		}
	}
}

func (s *SessionJanitorService) sweep(ctx context.Context) int64 {
	n, err := s.sessions.DeleteExpired(ctx, s.now())
	if err != nil {
		if s.log != nil {
			s.log.Errorw("session_sweep_failed", "err", err)
		}
		return 0
	}
	if n > 0 && s.log != nil {
		s.log.Debugw("expired_sessions_removed", "count", n)
	}
	return n
}
