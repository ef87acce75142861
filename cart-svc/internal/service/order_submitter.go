package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"bitecart/cart-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const phoneDigits = 11

// OrderSubmitter turns a cart and delivery details into a backend order and
// empties the cart once the order exists.
type OrderSubmitter struct {
	backend     OrderBackend
	idempotency IdempotencyStore
	logger      *zap.Logger
}

// NewOrderSubmitter accepts a nil idempotency store; submissions are then
// still keyed but duplicates are only detected by the backend.
func NewOrderSubmitter(backend OrderBackend, idempotency IdempotencyStore, logger *zap.Logger) *OrderSubmitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderSubmitter{backend: backend, idempotency: idempotency, logger: logger}
}

// Submit validates info without touching the network, snapshots current prices
// and creates the order. On failure the cart is left as it was. If the order is
// created but the cart cannot be cleared, both the order and an error
// wrapping domain.ErrCartNotCleared are returned.
//
// attemptKey is the client's own key for this checkout; when empty the cart's
// checkout id is used instead.
func (s *OrderSubmitter) Submit(ctx context.Context, cart CheckoutCart, info domain.DeliveryInfo, attemptKey string) (*domain.Order, error) {
	if err := ValidateDelivery(info); err != nil {
		return nil, err
	}

	priced, err := cart.CheckoutPriced(ctx)
	if err != nil {
		return nil, fmt.Errorf("submit order: %w", err)
	}
	if len(priced.Lines) == 0 {
		return nil, domain.NewValidationError("items", "cart is empty")
	}

	session := cart.Session()
	draft := BuildOrderDraft(session.UserID, priced, info)
	if attemptKey == "" {
		attemptKey = cart.CheckoutID()
	}
	key := IdempotencyKey(attemptKey, draft)
	logger := s.logger.With(zap.String("user_id", session.UserID), zap.String("idempotency_key", key))

	reserved := false
	if s.idempotency != nil {
		prior, found, err := s.idempotency.Lookup(ctx, key)
		if err != nil {
			logger.Warn("idempotency lookup failed", zap.Error(err))
		} else if found {
			logger.Info("returning previously created order", zap.String("order_id", prior.ID))
			return s.finish(ctx, cart, prior)
		}

		ok, err := s.idempotency.Reserve(ctx, key)
		switch {
		case err != nil:
			logger.Warn("idempotency reservation failed, submitting without it", zap.Error(err))
		case !ok:
			return nil, domain.ErrSubmissionInProgress
		default:
			reserved = true
		}
	}

	order, err := s.backend.CreateOrder(ctx, session.Token, draft, key)
	if err != nil {
		if reserved {
			if releaseErr := s.idempotency.Release(ctx, key); releaseErr != nil {
				logger.Warn("idempotency release failed", zap.Error(releaseErr))
			}
		}
		logger.Info("order submission failed", zap.Error(err))
		return nil, fmt.Errorf("submit order: %w", err)
	}

	if reserved {
		if err := s.idempotency.Complete(ctx, key, *order); err != nil {
			logger.Warn("idempotency completion failed", zap.String("order_id", order.ID), zap.Error(err))
		}
	}

	logger.Info("order created",
		zap.String("order_id", order.ID),
		zap.String("total", order.TotalAmount.StringFixed(2)),
		zap.Int("items", len(order.Items)))
	return s.finish(ctx, cart, order)
}

func (s *OrderSubmitter) finish(ctx context.Context, cart CheckoutCart, order *domain.Order) (*domain.Order, error) {
	if err := cart.Clear(ctx); err != nil {
		s.logger.Warn("cart not cleared after order", zap.String("order_id", order.ID), zap.Error(err))
		return order, fmt.Errorf("order %s: %w: %w", order.ID, domain.ErrCartNotCleared, err)
	}
	return order, nil
}

func ValidateDelivery(info domain.DeliveryInfo) error {
	if strings.TrimSpace(info.Address) == "" {
		return domain.NewValidationError("deliveryAddress", "is required")
	}
	if strings.TrimSpace(info.City) == "" {
		return domain.NewValidationError("city", "is required")
	}
	if !isPhoneNumber(info.Phone) {
		return domain.NewValidationError("phone", fmt.Sprintf("must be exactly %d digits", phoneDigits))
	}
	if !info.PaymentMethod.Valid() {
		return domain.NewValidationError("paymentMethod", fmt.Sprintf("unsupported payment method %q", info.PaymentMethod))
	}
	return nil
}

func isPhoneNumber(phone string) bool {
	if len(phone) != phoneDigits {
		return false
	}
	for _, r := range phone {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// BuildOrderDraft captures each line's price, discount and rounded final
// price; the total is rounded once from the unrounded sum.
func BuildOrderDraft(userID string, priced domain.PricedCart, info domain.DeliveryInfo) domain.Order {
	draft := domain.Order{
		UserID:          userID,
		RestaurantID:    priced.RestaurantID,
		DeliveryAddress: strings.TrimSpace(info.Address),
		City:            strings.TrimSpace(info.City),
		Phone:           info.Phone,
		Allergies:       strings.TrimSpace(info.Allergies),
		PaymentMethod:   info.PaymentMethod,
		TotalAmount:     RoundMoney(priced.Total),
		Status:          domain.StatusPending,
		Items:           make([]domain.OrderItem, 0, len(priced.Lines)),
	}
	for _, line := range priced.Lines {
		draft.Items = append(draft.Items, domain.OrderItem{
			ProductID:  line.Product.ID,
			Name:       line.Product.Name,
			Quantity:   line.Quantity,
			Price:      line.Product.Price,
			Discount:   line.Product.Discount,
			FinalPrice: RoundMoney(line.UnitPrice),
		})
	}
	return draft
}

// IdempotencyKey is stable for one checkout attempt with the same items and
// delivery details, so a retry of a failed or interrupted submission reuses it.
// A new attempt with identical content gets a different key.
func IdempotencyKey(attempt string, draft domain.Order) string {
	items := make([]string, 0, len(draft.Items))
	for _, item := range draft.Items {
		items = append(items, fmt.Sprintf("%s:%d:%s", item.ProductID, item.Quantity, item.FinalPrice.StringFixed(2)))
	}
	sort.Strings(items)

	parts := []string{
		draft.UserID,
		attempt,
		strings.Join(items, ","),
		draft.DeliveryAddress,
		draft.City,
		draft.Phone,
		draft.Allergies,
		string(draft.PaymentMethod),
	}
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte("bitecart:order:"+strings.Join(parts, "|"))).String()
}
