package internal

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/model"
)

const (
	defaultPrepBuffer   = 10 * time.Minute
	defaultSweepTimeout = 50 * time.Second
)

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

type QueueConfig struct {
	// PrepBuffer is added to the prep estimate when deciding whether to start.
	PrepBuffer time.Duration
	// SweepTimeout is the soft deadline of a single sweep.
	SweepTimeout time.Duration
}

type SweepResult struct {
	Evaluated int
	Started   int
	Ready     int
	Failed    int
	Skipped   int
}

// Queue advances open orders through their lifecycle. It keeps no state
// between invocations; every pass re-reads the store.
type Queue struct {
	repo     IRepository
	notifier INotifier
	clock    Clock
	logger   *zap.SugaredLogger
	cfg      QueueConfig
}

func NewQueue(repo IRepository, notifier INotifier, clock Clock, logger *zap.SugaredLogger, cfg QueueConfig) *Queue {
	if clock == nil {
		clock = SystemClock{}
	}
	if cfg.PrepBuffer <= 0 {
		cfg.PrepBuffer = defaultPrepBuffer
	}
	if cfg.SweepTimeout <= 0 {
		cfg.SweepTimeout = defaultSweepTimeout
	}
	return &Queue{repo: repo, notifier: notifier, clock: clock, logger: logger, cfg: cfg}
}

// Sweep evaluates every open order once. Failures are logged per order and
// never stop the remaining orders from being processed.
func (q *Queue) Sweep(ctx context.Context) (SweepResult, error) {
	var res SweepResult

	ctx, cancel := context.WithTimeout(ctx, q.cfg.SweepTimeout)
	defer cancel()

	orders, err := q.repo.GetOpenOrders(ctx)
	if err != nil {
		return res, err
	}

	for i, o := range orders {
		if ctx.Err() != nil {
			res.Skipped = len(orders) - i
			q.logger.Warnf("sweep deadline reached, %d orders left for the next sweep", res.Skipped)
			break
		}

		res.Evaluated++
		changed, err := q.advance(ctx, o)
		if err != nil {
			res.Failed++
			if errors.Is(err, ErrNotFound) {
				q.logger.Infof("order %d vanished during sweep", o.ID)
				continue
			}
			if errors.Is(err, ErrStatusConflict) {
				q.logger.Infof("order %d was moved by another writer: %s", o.ID, err.Error())
				continue
			}
			q.logger.Errorf("error processing order %d: %s", o.ID, err.Error())
			continue
		}

		switch changed {
		case model.OrderStatusPreparing:
			res.Started++
		case model.OrderStatusReady:
			res.Ready++
		}
	}

	return res, nil
}

// advance applies at most one automatic transition and returns the new status,
// or an empty status when the order was left as is.
func (q *Queue) advance(ctx context.Context, o model.Order) (model.Status, error) {
	if o.EstimatedPrepMinutes == 0 {
		if err := q.ensureEstimate(ctx, &o); err != nil {
			return "", err
		}
	}

	now := q.clock.Now()
	switch {
	case o.Status == model.OrderStatusReceived && q.shouldStartPreparing(o, now):
		if err := q.repo.UpdateStatus(ctx, o.ID, o.Status, model.OrderStatusPreparing, &now); err != nil {
			return "", err
		}
		q.publish(statusChanged(o.ID, o.Status, model.OrderStatusPreparing, now, &now))
		q.logger.Infof("order %d automatically moved to preparing", o.ID)
		return model.OrderStatusPreparing, nil

	case o.Status == model.OrderStatusPreparing && q.prepElapsed(o, now):
		if err := q.repo.UpdateStatus(ctx, o.ID, o.Status, model.OrderStatusReady, nil); err != nil {
			return "", err
		}
		q.publish(statusChanged(o.ID, o.Status, model.OrderStatusReady, now, nil))
		q.logger.Infof("order %d automatically moved to ready", o.ID)
		return model.OrderStatusReady, nil
	}

	return "", nil
}

// ensureEstimate computes the prep estimate once. Orders without items stay
// at zero, which makes them start within the buffer of their pickup time.
func (q *Queue) ensureEstimate(ctx context.Context, o *model.Order) error {
	items := o.Items
	if items == nil {
		var err error
		items, err = q.repo.GetOrderItems(ctx, o.ID)
		if err != nil {
			return err
		}
	}

	minutes := EstimatePrepMinutes(items)
	if minutes == 0 {
		return nil
	}
	if err := q.repo.SetEstimatedPrep(ctx, o.ID, minutes); err != nil {
		return err
	}
	o.EstimatedPrepMinutes = minutes
	return nil
}

func (q *Queue) shouldStartPreparing(o model.Order, now time.Time) bool {
	if o.PickupDeadline.IsZero() {
		return false
	}
	return o.PickupDeadline.Sub(now) <= o.PrepDuration()+q.cfg.PrepBuffer
}

func (q *Queue) prepElapsed(o model.Order, now time.Time) bool {
	if o.PreparationStartedAt == nil {
		return false
	}
	return !now.Before(o.PreparationStartedAt.Add(o.PrepDuration()))
}

// RecomputePriorities refreshes the priority of every open order and writes
// only the ones that changed. It returns the number of updated orders.
func (q *Queue) RecomputePriorities(ctx context.Context) (int, error) {
	orders, err := q.repo.GetOpenOrders(ctx)
	if err != nil {
		return 0, err
	}

	now := q.clock.Now()
	updated := 0
	for _, o := range orders {
		p := CalculatePriority(o.PickupDeadline, now)
		if p == o.Priority {
			continue
		}

		err = q.repo.UpdatePriority(ctx, o.ID, p)
		if errors.Is(err, ErrStatusConflict) {
			q.logger.Debugf("order %d left the queue before its priority was updated", o.ID)
			continue
		}
		if err != nil {
			q.logger.Errorf("error updating priority of order %d: %s", o.ID, err.Error())
			continue
		}

		updated++
		q.logger.Infof("updated priority for order %d to %s", o.ID, p)
	}

	return updated, nil
}

func (q *Queue) publish(e model.Event) {
	if q.notifier == nil {
		return
	}
	if err := q.notifier.Notify(model.OrderChannel(e.OrderID), e); err != nil {
		q.logger.Warnf("notification for order %d not queued: %s", e.OrderID, err.Error())
	}
}

func statusChanged(id int64, from, to model.Status, at time.Time, startedAt *time.Time) model.Event {
	return model.Event{
		ID:                   uuid.NewString(),
		Type:                 model.EventStatusChanged,
		OrderID:              id,
		OldStatus:            from,
		NewStatus:            to,
		Timestamp:            at,
		PreparationStartedAt: startedAt,
	}
}
