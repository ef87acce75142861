package service

import (
	"context"
	"errors"

	"bitecart/history-svc/internal/domain"
)

var ErrMissingOrderID = errors.New("order id is required")

type HistoryService struct {
	Store HistoryReader
}

func NewHistoryService(store HistoryReader) *HistoryService {
	return &HistoryService{Store: store}
}

func (s *HistoryService) History(ctx context.Context, orderID string) ([]domain.HistoryEntry, error) {
	if orderID == "" {
		return nil, ErrMissingOrderID
	}
	return s.Store.History(ctx, orderID)
}

func (s *HistoryService) Status(ctx context.Context, orderID string) (*domain.LatestStatus, error) {
	if orderID == "" {
		return nil, ErrMissingOrderID
	}
	return s.Store.Latest(ctx, orderID)
}
