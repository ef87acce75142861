package service

import (
	"context"
	"time"

	"bitecart/history-svc/internal/domain"
	"bitecart/history-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type StoreInterface interface {
	RecordTransition(ctx context.Context, entry domain.HistoryEntry) (bool, error)
	UpdateLatest(ctx context.Context, orderID, status string, at time.Time) error
}

type HistoryReader interface {
	History(ctx context.Context, orderID string) ([]domain.HistoryEntry, error)
	Latest(ctx context.Context, orderID string) (*domain.LatestStatus, error)
}

type HistoryInterface interface {
	History(ctx context.Context, orderID string) ([]domain.HistoryEntry, error)
	Status(ctx context.Context, orderID string) (*domain.LatestStatus, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	ProcessStatusChange(ctx context.Context, event domain.StatusEvent)
}

var (
	_ StoreInterface    = (*storage.Store)(nil)
	_ HistoryReader     = (*storage.Store)(nil)
	_ HistoryInterface  = (*HistoryService)(nil)
	_ ConsumerInterface = (*Consumer)(nil)
	_ MessageReader     = (*kafka.Reader)(nil)
)
