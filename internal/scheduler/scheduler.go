package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"rentkart-storefront/internal/config"
	"rentkart-storefront/internal/logger"
	"rentkart-storefront/internal/store"
)

// Scheduler keeps the local mirrors from drifting too far from the server.
// The cart is stale after every mutation until re-fetched; a periodic
// refresh bounds that staleness without retrying failed user actions.
type Scheduler struct {
	cron  *cron.Cron
	store *store.Store
}

// NewScheduler registers the refresh jobs from the configured cron specs.
func NewScheduler(cfg config.SchedulerConfig, st *store.Store) *Scheduler {
	// Create cron with UTC timezone and seconds precision
	c := cron.New(
		cron.WithLocation(time.UTC),
		cron.WithSeconds(),
	)

	s := &Scheduler{
		cron:  c,
		store: st,
	}

	_, err := c.AddFunc(cfg.CartRefresh, s.refreshCart)
	if err != nil {
		logger.Error("Failed to register cart refresh job", "error", err)
	}

	_, err = c.AddFunc(cfg.CouponRefresh, s.refreshCoupons)
	if err != nil {
		logger.Error("Failed to register coupon refresh job", "error", err)
	}

	return s
}

func (s *Scheduler) refreshCart() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.store.Cart.Refresh(ctx); err != nil {
		logger.Warn("Scheduled cart refresh failed", "error", err)
	}
}

func (s *Scheduler) refreshCoupons() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.store.Coupons.Refresh(ctx); err != nil {
		logger.Warn("Scheduled coupon refresh failed", "error", err)
	}
}

// Start begins the cron scheduler
func (s *Scheduler) Start() {
	logger.Info("Starting refresh scheduler...")
	s.cron.Start()
}

// Stop gracefully stops the cron scheduler
func (s *Scheduler) Stop() {
	logger.Info("Stopping refresh scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Info("Refresh scheduler stopped")
}

// IsRunning returns true if the scheduler has registered jobs
func (s *Scheduler) IsRunning() bool {
	return len(s.cron.Entries()) > 0
}
