package producer

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

const (
	EventOrderPlaced        = "order.placed"
	EventOrderStatusChanged = "order.status_changed"
	EventOrderCancelled     = "order.cancelled"
)

// OrderEvent 訂單事件訊息
type OrderEvent struct {
	EventType   string          `json:"event_type"`
	OrderID     uint            `json:"order_id"`
	UserID      uint            `json:"user_id"`
	Status      string          `json:"status"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	OccurredAt  time.Time       `json:"occurred_at"`
}

// OrderProducer publishes order lifecycle events. A nil receiver or a
// producer built with no brokers is a no-op, so callers never need to
// guard for a disabled event pipeline.
type OrderProducer interface {
	Publish(ctx context.Context, event OrderEvent) error
	Close() error
}

type kafkaOrderProducer struct {
	writer *kafka.Writer
	closed atomic.Bool
}

func NewOrderProducer(brokers []string, topic string) OrderProducer {
	if len(brokers) == 0 || topic == "" {
		return noopProducer{}
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
	return &kafkaOrderProducer{writer: writer}
}

func (p *kafkaOrderProducer) Publish(ctx context.Context, event OrderEvent) error {
	if p.closed.Load() {
		return nil
	}
	value, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.EventType),
		Value: value,
	})
}

func (p *kafkaOrderProducer) Close() error {
	if p.closed.CompareAndSwap(false, true) {
		return p.writer.Close()
	}
	return nil
}

type noopProducer struct{}

func (noopProducer) Publish(ctx context.Context, event OrderEvent) error { return nil }
func (noopProducer) Close() error                                        { return nil }
