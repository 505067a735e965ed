// Package worker contains background deliveries that run alongside the HTTP
// server.
package worker

import (
	"context"
	"log/slog"
	"time"

	"marquee/config"
	"marquee/internal/delivery"
	"marquee/internal/domain/lifecycle"
	"marquee/internal/usecase"

	"go.uber.org/fx"
)

// sessionSweeper periodically removes expired session rows. Expiry is
// enforced lazily on read regardless; the sweep only reclaims storage.
type sessionSweeper struct {
	interval time.Duration
	authUC   usecase.AuthUsecase
	logger   *slog.Logger
	stop     chan struct{}
	stopped  chan struct{}
}

// SweeperParams holds dependencies for the session sweeper
type SweeperParams struct {
	fx.In

	Lc     fx.Lifecycle
	Cfg    *config.Config
	Logger *slog.Logger
	AuthUC usecase.AuthUsecase
}

// NewSessionSweeper creates the background session sweeper. A zero or
// negative auth.sessionSweepInterval disables it.
func NewSessionSweeper(params SweeperParams) (delivery.Delivery, error) {
	var interval time.Duration
	if params.Cfg.Auth != nil {
		interval = params.Cfg.Auth.SessionSweepInterval
	}

	sweeper := &sessionSweeper{
		interval: interval,
		authUC:   params.AuthUC,
		logger:   params.Logger,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}

	params.Lc.Append(fx.Hook{
		OnStop: sweeper.shutdown,
	})

	return sweeper, nil
}

// Serve runs the sweep loop until shutdown.
func (s *sessionSweeper) Serve(ctx context.Context) error {
	defer close(s.stopped)

	if s.interval <= 0 {
		s.logger.Info("Session sweep disabled")

		return nil
	}

	s.logger.Info("Starting session sweeper", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.sweep(ctx)
		case <-s.stop:
			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *sessionSweeper) sweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	if _, err := s.authUC.CleanupExpiredSessions(sweepCtx); err != nil {
		s.logger.Error("Session sweep failed", slog.Any("error", err))
	}
}

func (s *sessionSweeper) shutdown(ctx context.Context) error {
	close(s.stop)

	select {
	case <-s.stopped:
	case <-ctx.Done():
	}

	return nil
}
