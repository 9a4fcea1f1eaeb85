package internal

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/model"
)

// INotifier accepts events for delivery. Notify must not block the caller.
type INotifier interface {
	Notify(channel string, e model.Event) error
}

// IPublisher performs the actual delivery to a channel.
type IPublisher interface {
	Publish(ctx context.Context, channel string, e model.Event) error
}

type delivery struct {
	channel string
	event   model.Event
}

// Dispatcher queues events and delivers them from a fixed set of workers,
// each delivery bounded by its own timeout. Delivery is at most once.
type Dispatcher struct {
	publisher IPublisher
	logger    *zap.SugaredLogger
	timeout   time.Duration
	queue     chan delivery
	wg        sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(publisher IPublisher, logger *zap.SugaredLogger, queueSize, workers int, timeout time.Duration) *Dispatcher {
	if queueSize <= 0 {
		queueSize = 256
	}
	if workers <= 0 {
		workers = 1
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	d := &Dispatcher{
		publisher: publisher,
		logger:    logger,
		timeout:   timeout,
		queue:     make(chan delivery, queueSize),
	}

	d.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go d.work()
	}
	return d
}

func (d *Dispatcher) Notify(channel string, e model.Event) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Warnf("dispatcher closed, dropping %s event for order %d", e.Type, e.OrderID)
		return ErrDispatcherClosed
	}

	select {
	case d.queue <- delivery{channel: channel, event: e}:
		return nil
	default:
		d.logger.Warnf("notification queue is full, dropping %s event for order %d", e.Type, e.OrderID)
		return ErrQueueFull
	}
}

// Close stops accepting events and waits until the queued ones are delivered.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) work() {
	defer d.wg.Done()
	for dl := range d.queue {
		d.deliver(dl)
	}
}

func (d *Dispatcher) deliver(dl delivery) {
	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.publisher.Publish(ctx, dl.channel, dl.event); err != nil {
		d.logger.Errorf("notify %s about order %d: %s", dl.channel, dl.event.OrderID, err.Error())
	}
}
