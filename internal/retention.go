package internal

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/model"
)

const defaultRetentionWindow = 24 * time.Hour

// Retention archives acknowledged orders placed before the retention window.
type Retention struct {
	repo   IRepository
	clock  Clock
	logger *zap.SugaredLogger
	window time.Duration
}

func NewRetention(repo IRepository, clock Clock, logger *zap.SugaredLogger, window time.Duration) *Retention {
	if clock == nil {
		clock = SystemClock{}
	}
	if window <= 0 {
		window = defaultRetentionWindow
	}
	return &Retention{repo: repo, clock: clock, logger: logger, window: window}
}

// Archive marks old acknowledged orders as archived and returns how many
// records changed. Running it again over the same data archives nothing.
func (r *Retention) Archive(ctx context.Context) (int64, error) {
	cutoff := r.clock.Now().Add(-r.window)

	ids, err := r.repo.GetArchivableOrderIDs(ctx, model.OrderStatusAcknowledged, cutoff)
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	n, err := r.repo.BulkArchive(ctx, ids)
	if err != nil {
		return 0, err
	}

	r.logger.Infof("archived %d acknowledged orders placed before %s", n, cutoff.Format(time.RFC3339))
	return n, nil
}
