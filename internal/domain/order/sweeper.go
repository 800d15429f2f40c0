// internal/domain/order/sweeper.go
package order

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
)

// Sweeper periodically applies the auto-advance rule across all customers.
// It races with request-driven writers on the same rows; that is safe
// because the advance only matches orders still in the ordered state.
type Sweeper struct {
	service  *Service
	interval time.Duration
	logger   *logrus.Logger
}

// NewSweeper creates a new background sweeper
func NewSweeper(service *Service, interval time.Duration, logger *logrus.Logger) *Sweeper {
	return &Sweeper{
		service:  service,
		interval: interval,
		logger:   logger,
	}
}

// Run sweeps once immediately, then on every tick until the context is
// cancelled. Intended to run in its own goroutine.
func (s *Sweeper) Run(ctx context.Context) {
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("order sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *Sweeper) sweep() {
	advanced, err := s.service.AutoAdvance(nil)
	if err != nil {
		s.logger.WithError(err).Error("order auto-advance sweep failed")
		return
	}
	if advanced > 0 {
		s.logger.WithField("advanced", advanced).Info("orders advanced to preparing")
	}
}
