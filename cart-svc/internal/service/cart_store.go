package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"

	"bitecart/cart-svc/internal/backend"
	"bitecart/cart-svc/internal/domain"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CartStore mirrors one user's server-held cart. Every successful mutation is
// followed by a refresh, so local state only ever holds what the backend
// returned. Mutations on one store run one at a time.
//
// The checkout id names the current checkout attempt. It survives failed
// submissions and changes only when the cart is cleared, so a retry reuses
// it and the next order gets a fresh one.
type CartStore struct {
	session   domain.Session
	backend   CartBackend
	products  ProductLookup
	publisher EventPublisher
	logger    *zap.Logger

	opMu sync.Mutex

	mu         sync.RWMutex
	cart       domain.Cart
	loaded     bool
	checkoutID string
	subs       map[int]func(domain.Cart)
	nextID     int
}

func NewCartStore(session domain.Session, backend CartBackend, products ProductLookup, publisher EventPublisher, logger *zap.Logger) *CartStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CartStore{
		session:    session,
		backend:    backend,
		products:   products,
		publisher:  publisher,
		logger:     logger.With(zap.String("user_id", session.UserID)),
		checkoutID: uuid.NewString(),
		subs:       make(map[int]func(domain.Cart)),
	}
}

func (s *CartStore) Session() domain.Session {
	return s.session
}

func (s *CartStore) CheckoutID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checkoutID
}

// Snapshot returns a copy of the last confirmed cart.
func (s *CartStore) Snapshot() domain.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCart(s.cart)
}

// Subscribe registers fn to receive every confirmed cart. The returned func
// removes the subscription.
func (s *CartStore) Subscribe(fn func(domain.Cart)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *CartStore) Refresh(ctx context.Context) (domain.Cart, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.refresh(ctx)
}

// AddOrIncrement adds delta units of productID. A product from a restaurant
// other than the cart's fails with *domain.RestaurantConflictError and leaves
// the cart untouched.
func (s *CartStore) AddOrIncrement(ctx context.Context, productID string, delta int) error {
	if productID == "" {
		return domain.NewValidationError("product_id", "must not be empty")
	}
	if delta < 1 {
		return domain.NewValidationError("quantity", "must be at least 1")
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	product, err := s.products.Product(ctx, productID)
	if err != nil {
		return fmt.Errorf("add %s to cart: %w", productID, err)
	}

	current := s.Snapshot()
	cartRestaurant := current.RestaurantID
	if !current.IsEmpty() {
		if cartRestaurant == "" {
			cartRestaurant = s.resolveRestaurant(ctx, current)
		}
		if cartRestaurant != "" && cartRestaurant != product.RestaurantID {
			return &domain.RestaurantConflictError{
				CartRestaurantID:    cartRestaurant,
				ProductRestaurantID: product.RestaurantID,
			}
		}
	}

	_, present := current.Line(productID)
	for i := 0; i < delta; i++ {
		action := backend.ActionIncrement
		if !present && i == 0 {
			action = backend.ActionAdd
		}
		if err := s.backend.AddToCart(ctx, s.session.Token, productID, action); err != nil {
			err = asRestaurantConflict(err, cartRestaurant, product.RestaurantID)
			return s.abort(ctx, "add to cart", i > 0, err)
		}
	}

	s.logger.Debug("cart line incremented", zap.String("product_id", productID), zap.Int("delta", delta))
	return s.confirm(ctx)
}

// Decrement lowers the quantity of productID. Reaching zero removes the line
// through the remove endpoint; zero or negative quantities are never sent.
func (s *CartStore) Decrement(ctx context.Context, productID string, delta int) error {
	if productID == "" {
		return domain.NewValidationError("product_id", "must not be empty")
	}
	if delta < 1 {
		return domain.NewValidationError("quantity", "must be at least 1")
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	line, ok := s.Snapshot().Line(productID)
	if !ok {
		return nil
	}

	if line.Quantity-delta <= 0 {
		if err := s.removeLine(ctx, productID); err != nil {
			return err
		}
		return s.confirm(ctx)
	}

	for i := 0; i < delta; i++ {
		if err := s.backend.AddToCart(ctx, s.session.Token, productID, backend.ActionDecrement); err != nil {
			return s.abort(ctx, "decrement cart line", i > 0, err)
		}
	}
	return s.confirm(ctx)
}

// Remove deletes the line; removing an absent line is not an error.
func (s *CartStore) Remove(ctx context.Context, productID string) error {
	if productID == "" {
		return domain.NewValidationError("product_id", "must not be empty")
	}

	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.removeLine(ctx, productID); err != nil {
		return err
	}
	return s.confirm(ctx)
}

func (s *CartStore) Clear(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	if err := s.backend.ClearCart(ctx, s.session.Token); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.mu.Lock()
	s.checkoutID = uuid.NewString()
	s.mu.Unlock()
	return s.confirm(ctx)
}

// Priced joins the current cart with catalog products and computes the
// unrounded total.
func (s *CartStore) Priced(ctx context.Context) (domain.PricedCart, error) {
	return s.price(ctx, s.products.Product)
}

// CheckoutPriced is Priced with every product read from the backend rather
// than the catalog cache.
func (s *CartStore) CheckoutPriced(ctx context.Context) (domain.PricedCart, error) {
	return s.price(ctx, s.products.CurrentProduct)
}

func (s *CartStore) price(ctx context.Context, lookup func(context.Context, string) (*domain.Product, error)) (domain.PricedCart, error) {
	s.opMu.Lock()
	err := s.ensureLoaded(ctx)
	s.opMu.Unlock()
	if err != nil {
		return domain.PricedCart{}, err
	}

	cart := s.Snapshot()
	products := make(map[string]domain.Product, len(cart.Lines))
	for _, line := range cart.Lines {
		p, err := lookup(ctx, line.ProductID)
		if err != nil {
			return domain.PricedCart{}, fmt.Errorf("price cart line %s: %w", line.ProductID, err)
		}
		products[line.ProductID] = *p
	}

	priced := PriceLines(cart.Lines, products)
	if priced.RestaurantID == "" {
		priced.RestaurantID = cart.RestaurantID
	}
	return priced, nil
}

func (s *CartStore) removeLine(ctx context.Context, productID string) error {
	err := s.backend.RemoveFromCart(ctx, s.session.Token, productID)
	var rejected *domain.ServerRejected
	if errors.As(err, &rejected) && rejected.Status == http.StatusNotFound {
		return nil
	}
	if err != nil {
		return fmt.Errorf("remove %s from cart: %w", productID, err)
	}
	return nil
}

func (s *CartStore) ensureLoaded(ctx context.Context) error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	_, err := s.refresh(ctx)
	return err
}

func (s *CartStore) refresh(ctx context.Context) (domain.Cart, error) {
	lines, err := s.backend.GetCart(ctx, s.session.Token)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("refresh cart: %w", err)
	}

	cart := domain.Cart{Lines: normalizeLines(lines)}
	cart.RestaurantID = s.resolveRestaurant(ctx, cart)

	s.mu.Lock()
	s.cart = cart
	s.loaded = true
	subs := make([]func(domain.Cart), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(copyCart(cart))
	}
	return copyCart(cart), nil
}

// confirm announces a completed mutation and re-reads the cart.
func (s *CartStore) confirm(ctx context.Context) error {
	if s.publisher != nil {
		if err := s.publisher.PublishCartUpdated(ctx, s.session.UserID); err != nil {
			s.logger.Warn("cart update broadcast failed", zap.Error(err))
		}
	}
	if _, err := s.refresh(ctx); err != nil {
		return fmt.Errorf("cart changed but could not be reloaded: %w", err)
	}
	return nil
}

// abort returns err; when part of a multi-step mutation already reached the
// backend the cart is reloaded first so local state stays server truth.
func (s *CartStore) abort(ctx context.Context, op string, partial bool, err error) error {
	if partial {
		if _, refreshErr := s.refresh(ctx); refreshErr != nil {
			s.logger.Warn("reload after partial mutation failed", zap.String("op", op), zap.Error(refreshErr))
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (s *CartStore) resolveRestaurant(ctx context.Context, cart domain.Cart) string {
	for _, line := range cart.Lines {
		p, err := s.products.Product(ctx, line.ProductID)
		if err != nil {
			s.logger.Warn("cannot resolve cart restaurant", zap.String("product_id", line.ProductID), zap.Error(err))
			continue
		}
		return p.RestaurantID
	}
	return ""
}

// normalizeLines drops non-positive quantities and merges duplicate products.
func normalizeLines(lines []domain.CartLine) []domain.CartLine {
	out := make([]domain.CartLine, 0, len(lines))
	index := make(map[string]int, len(lines))
	for _, line := range lines {
		if line.Quantity <= 0 || line.ProductID == "" {
			continue
		}
		if i, ok := index[line.ProductID]; ok {
			out[i].Quantity += line.Quantity
			continue
		}
		index[line.ProductID] = len(out)
		out = append(out, line)
	}
	return out
}

func asRestaurantConflict(err error, cartRestaurant, productRestaurant string) error {
	var rejected *domain.ServerRejected
	if errors.As(err, &rejected) && rejected.Status == http.StatusBadRequest &&
		strings.Contains(strings.ToLower(rejected.Message), "restaurant") {
		return &domain.RestaurantConflictError{
			CartRestaurantID:    cartRestaurant,
			ProductRestaurantID: productRestaurant,
		}
	}
	return err
}

func copyCart(c domain.Cart) domain.Cart {
	lines := make([]domain.CartLine, len(c.Lines))
	copy(lines, c.Lines)
	return domain.Cart{Lines: lines, RestaurantID: c.RestaurantID}
}
