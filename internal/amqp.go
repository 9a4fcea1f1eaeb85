package internal

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/devsiddhantbhurtel/Canteen-Ordering-System/internal/model"
)

const defaultNotifyExchange = "canteen.notifications"

// AMQPPublisher publishes events to a topic exchange using the channel key
// as routing key, so subscribers bind queues to order_<id> or admins.
type AMQPPublisher struct {
	conn     *amqp.Connection
	ch       *amqp.Channel
	exchange string
	logger   *zap.SugaredLogger
	mu       sync.Mutex
}

func NewAMQPPublisher(url, exchange string, logger *zap.SugaredLogger) (*AMQPPublisher, error) {
	if exchange == "" {
		exchange = defaultNotifyExchange
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err = ch.ExchangeDeclare(exchange, amqp.ExchangeTopic, true, false, false, false, nil); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, fmt.Errorf("declare %s: %w", exchange, err)
	}

	return &AMQPPublisher{conn: conn, ch: ch, exchange: exchange, logger: logger}, nil
}

// EventPublishing builds the broker message for e. The message timestamp is
// the time of the status change.
func EventPublishing(e model.Event) (amqp.Publishing, error) {
	body, err := json.Marshal(e)
	if err != nil {
		return amqp.Publishing{}, err
	}

	return amqp.Publishing{
		ContentType:   "application/json",
		DeliveryMode:  amqp.Transient,
		MessageId:     e.ID,
		CorrelationId: model.OrderChannel(e.OrderID),
		Timestamp:     e.Timestamp.UTC(),
		Type:          e.Type,
		Body:          body,
	}, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, channel string, e model.Event) error {
	msg, err := EventPublishing(e)
	if err != nil {
		return err
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	if err = p.ch.PublishWithContext(ctx, p.exchange, channel, false, false, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", channel, err)
	}

	p.logger.Debugf("published %s event for order %d to %s", e.Type, e.OrderID, channel)
	return nil
}

func (p *AMQPPublisher) Close() {
	if p.ch != nil {
		_ = p.ch.Close()
	}
	if p.conn != nil {
		_ = p.conn.Close()
	}
}
