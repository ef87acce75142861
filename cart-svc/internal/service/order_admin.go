package service

import (
	"context"
	"fmt"

	"bitecart/cart-svc/internal/domain"

	"go.uber.org/zap"
)

// OrderAdmin serves the restaurant-side order views and status changes.
// Accepted changes are announced through publisher when it is set.
type OrderAdmin struct {
	backend   OrderAdminBackend
	publisher EventPublisher
	logger    *zap.Logger
}

func NewOrderAdmin(backend OrderAdminBackend, publisher EventPublisher, logger *zap.Logger) *OrderAdmin {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderAdmin{backend: backend, publisher: publisher, logger: logger}
}

// Status reads the backend's current status for orderID.
func (a *OrderAdmin) Status(ctx context.Context, orderID string) (domain.OrderStatus, error) {
	if orderID == "" {
		return "", domain.NewValidationError("order_id", "must not be empty")
	}
	return a.backend.OrderStatus(ctx, orderID)
}

func (a *OrderAdmin) RestaurantOrders(ctx context.Context, token, restaurantID string) ([]domain.Order, error) {
	if restaurantID == "" {
		return nil, domain.NewValidationError("restaurant_id", "must not be empty")
	}
	return a.backend.RestaurantOrders(ctx, token, restaurantID)
}

func (a *OrderAdmin) UserOrders(ctx context.Context, token, userID string) ([]domain.Order, error) {
	if userID == "" {
		return nil, domain.NewValidationError("user_id", "must not be empty")
	}
	return a.backend.UserOrders(ctx, token, userID)
}

// UpdateStatus moves orderID one step along the lifecycle. Skipping a step or
// leaving a terminal status fails with *domain.TransitionError and nothing is
// sent to the backend.
func (a *OrderAdmin) UpdateStatus(ctx context.Context, token, orderID string, next domain.OrderStatus) (domain.OrderStatus, error) {
	if orderID == "" {
		return "", domain.NewValidationError("order_id", "must not be empty")
	}
	if !next.Valid() {
		return "", domain.NewValidationError("status", fmt.Sprintf("unknown status %q", next))
	}

	current, err := a.backend.OrderStatus(ctx, orderID)
	if err != nil {
		return "", fmt.Errorf("read status of order %s: %w", orderID, err)
	}
	if !domain.CanTransition(current, next) {
		return current, &domain.TransitionError{From: current, To: next}
	}

	if err := a.backend.UpdateOrderStatus(ctx, token, orderID, next); err != nil {
		return current, fmt.Errorf("update status of order %s: %w", orderID, err)
	}
	a.logger.Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("old_status", string(current)),
		zap.String("new_status", string(next)))

	if a.publisher != nil {
		if err := a.publisher.PublishStatusChange(ctx, orderID, current, next); err != nil {
			a.logger.Warn("status change broadcast failed", zap.String("order_id", orderID), zap.Error(err))
		}
	}
	return current, nil
}
