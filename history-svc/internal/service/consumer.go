package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"bitecart/history-svc/internal/domain"

	"go.uber.org/zap"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
	Logger *zap.Logger
}

func NewConsumer(reader MessageReader, store StoreInterface, logger *zap.Logger) *Consumer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Consumer{
		Reader: reader,
		Store:  store,
		Logger: logger,
	}
}

func (c *Consumer) Start(ctx context.Context) {
	c.Logger.Info("starting order history consumer")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.Logger.Info("order history consumer stopped")
				return
			}
			c.Logger.Warn("error reading message", zap.Error(err))
			continue
		}

		var event domain.StatusEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			c.Logger.Warn("error unmarshaling message", zap.Error(err))
			continue
		}

		if event.Type == domain.EventOrderStatusChanged {
			c.ProcessStatusChange(ctx, event)
		}
	}
}

func (c *Consumer) ProcessStatusChange(ctx context.Context, event domain.StatusEvent) {
	if event.Type != domain.EventOrderStatusChanged {
		return
	}
	if event.OrderID == "" || !domain.ValidStatus(event.NewStatus) {
		c.Logger.Warn("dropping malformed status event",
			zap.String("order_id", event.OrderID), zap.String("new_status", event.NewStatus))
		return
	}

	changedAt := event.Timestamp
	if changedAt.IsZero() {
		changedAt = time.Now().UTC()
	}
	log := c.Logger.With(
		zap.String("order_id", event.OrderID),
		zap.String("old_status", event.OldStatus),
		zap.String("new_status", event.NewStatus),
	)

	inserted, err := c.Store.RecordTransition(ctx, domain.HistoryEntry{
		OrderID:   event.OrderID,
		OldStatus: event.OldStatus,
		NewStatus: event.NewStatus,
		Source:    event.Source,
		ChangedAt: changedAt,
	})
	if err != nil {
		log.Error("error recording status transition", zap.Error(err))
		return
	}
	if !inserted {
		log.Debug("duplicate status transition ignored")
		return
	}

	if err := c.Store.UpdateLatest(ctx, event.OrderID, event.NewStatus, changedAt); err != nil {
		log.Warn("error updating latest status", zap.Error(err))
		return
	}

	log.Info("recorded status transition")
}
