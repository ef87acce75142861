package storage

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bitecart/cart-svc/internal/domain"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// KafkaPublisher broadcasts cart and order events. Cart events are keyed by
// user and status events by order, so each key stays ordered on its partition.
type KafkaPublisher struct {
	CartWriter  MessageWriter
	OrderWriter MessageWriter
	// Source is this instance's id; consumers use it to skip their own events.
	Source string
}

func NewKafkaPublisher(cartWriter, orderWriter MessageWriter, source string) *KafkaPublisher {
	return &KafkaPublisher{CartWriter: cartWriter, OrderWriter: orderWriter, Source: source}
}

func (p *KafkaPublisher) PublishCartUpdated(ctx context.Context, userID string) error {
	return p.publish(ctx, p.CartWriter, userID, domain.Event{
		Type:      domain.EventCartUpdated,
		Source:    p.Source,
		UserID:    userID,
		Timestamp: time.Now().UTC(),
	})
}

func (p *KafkaPublisher) PublishStatusChange(ctx context.Context, orderID string, oldStatus, newStatus domain.OrderStatus) error {
	return p.publish(ctx, p.OrderWriter, orderID, domain.Event{
		Type:      domain.EventOrderStatusChanged,
		Source:    p.Source,
		OrderID:   orderID,
		OldStatus: oldStatus,
		NewStatus: newStatus,
		Timestamp: time.Now().UTC(),
	})
}

func (p *KafkaPublisher) publish(ctx context.Context, writer MessageWriter, key string, event domain.Event) error {
	if writer == nil {
		return nil
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: payload,
	})
}

type CartUpdateHandler interface {
	HandleCartUpdated(ctx context.Context, userID string) error
}

// CartEventConsumer reloads local carts when another instance reports a change.
type CartEventConsumer struct {
	Reader  MessageReader
	Handler CartUpdateHandler
	Source  string
	Logger  *zap.Logger
}

func NewCartEventConsumer(reader MessageReader, handler CartUpdateHandler, source string, logger *zap.Logger) *CartEventConsumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartEventConsumer{Reader: reader, Handler: handler, Source: source, Logger: logger}
}

// Start reads until ctx is cancelled.
func (c *CartEventConsumer) Start(ctx context.Context) {
	c.Logger.Info("starting cart event consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.Logger.Info("cart event consumer stopped")
				return
			}
			c.Logger.Warn("error reading cart event", zap.Error(err))
			continue
		}

		var event domain.Event
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Warn("error unmarshaling cart event", zap.Error(err))
			continue
		}
		c.Process(ctx, event)
	}
}

func (c *CartEventConsumer) Process(ctx context.Context, event domain.Event) {
	if event.Type != domain.EventCartUpdated || event.UserID == "" {
		return
	}
	if event.Source != "" && event.Source == c.Source {
		return
	}
	if err := c.Handler.HandleCartUpdated(ctx, event.UserID); err != nil {
		c.Logger.Warn("error reloading cart after remote update",
			zap.String("user_id", event.UserID), zap.Error(err))
	}
}
