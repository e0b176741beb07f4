package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"hostconnect/config"
)

// Sweeper periodically cancels pending bookings whose payment never arrived.
// Its lifetime is bound to the context passed to Run, the HTTP server cancels
// that context during shutdown.
type Sweeper struct {
	svc      Booking
	interval time.Duration
}

func NewSweeper(svc Booking, cfg *config.Config) *Sweeper {
	return &Sweeper{
		svc:      svc,
		interval: time.Duration(cfg.Booking.SweepIntervalMinutes) * time.Minute,
	}
}

func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", s.interval).Msg("booking sweeper started")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("booking sweeper stopped")

			return
		case <-ticker.C:
			if _, err := s.svc.SweepStalePending(ctx); err != nil {
				log.Error().Err(err).Msg("booking sweep failed")
			}
		}
	}
}
