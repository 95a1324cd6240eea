package reaper

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type stalePendingDeleter interface {
	DeleteStalePending(ctx context.Context, olderThan time.Duration) (int64, error)
}

// Reaper periodically removes PENDING registrations that never got a
// payment row. Registration commits the row and its payment in one
// transaction, so these only appear through out-of-band writes; left in
// place they keep the (user, item) pair occupied forever.
type Reaper struct {
	regRepo  stalePendingDeleter
	interval time.Duration
	maxAge   time.Duration
	logger   logger.Logger
}

func New(regRepo stalePendingDeleter, interval, maxAge time.Duration, log logger.Logger) *Reaper {
	return &Reaper{
		regRepo:  regRepo,
		interval: interval,
		maxAge:   maxAge,
		logger:   log,
	}
}

func (r *Reaper) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reaper started",
		logger.Duration("interval", r.interval),
		logger.Duration("max_age", r.maxAge),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reaper stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Reaper) tick(ctx context.Context) {
	n, err := r.regRepo.DeleteStalePending(ctx, r.maxAge)
	if err != nil {
		r.logger.Error("failed to delete stale pending registrations",
			logger.String("error", err.Error()),
		)
		return
	}

	if n > 0 {
		r.logger.Info("stale pending registrations removed",
			logger.Int64("count", n),
		)
	}
}
