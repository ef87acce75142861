package service

import (
	"context"
	"strings"
	"time"

	"bitecart/cart-svc/internal/backend"
	"bitecart/cart-svc/internal/domain"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// sharedFetchTimeout bounds a backend fetch shared by concurrent cache misses.
const sharedFetchTimeout = 10 * time.Second

// Catalog is a read-through view of the backend's products. Cache failures are
// logged and bypassed; they never fail a lookup on their own.
type Catalog struct {
	backend ProductBackend
	cache   ProductCache
	group   singleflight.Group
	logger  *zap.Logger
}

func NewCatalog(backend ProductBackend, cache ProductCache, logger *zap.Logger) *Catalog {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Catalog{backend: backend, cache: cache, logger: logger}
}

func (c *Catalog) Product(ctx context.Context, productID string) (*domain.Product, error) {
	if p, ok := c.cached(ctx, productID); ok {
		return p, nil
	}

	// Concurrent misses for one product share a single backend fetch. The fetch
	// is detached from any one caller, so a cancelled request only fails itself.
	ch := c.group.DoChan(productID, func() (interface{}, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedFetchTimeout)
		defer cancel()
		if p, ok := c.cached(fetchCtx, productID); ok {
			return p, nil
		}
		p, err := c.backend.GetProduct(fetchCtx, productID)
		if err != nil {
			return nil, err
		}
		c.store(fetchCtx, *p)
		return p, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		p := *res.Val.(*domain.Product)
		return &p, nil
	}
}

// CurrentProduct reads productID from the backend and refreshes the cache
// with it.
func (c *Catalog) CurrentProduct(ctx context.Context, productID string) (*domain.Product, error) {
	p, err := c.backend.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}
	c.store(ctx, *p)
	return p, nil
}

func (c *Catalog) Products(ctx context.Context, token string) ([]domain.Product, error) {
	products, err := c.backend.ListProducts(ctx, token)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		c.store(ctx, p)
	}
	return products, nil
}

func (c *Catalog) RestaurantProducts(ctx context.Context, restaurantID string) ([]domain.Product, error) {
	products, err := c.backend.RestaurantProducts(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	for _, p := range products {
		c.store(ctx, p)
	}
	return products, nil
}

// Offers lists products that currently carry a discount.
func (c *Catalog) Offers(ctx context.Context, token string) ([]domain.Product, error) {
	products, err := c.Products(ctx, token)
	if err != nil {
		return nil, err
	}
	offers := make([]domain.Product, 0)
	for _, p := range products {
		if p.HasDiscount() {
			offers = append(offers, p)
		}
	}
	return offers, nil
}

func (c *Catalog) CreateProduct(ctx context.Context, token string, input backend.ProductInput, image *backend.ProductImage) error {
	if err := ValidateProductInput(input, true); err != nil {
		return err
	}
	return c.backend.CreateProduct(ctx, token, input, image)
}

// UpdateProduct sends only the fields the admin filled in; blank fields keep
// their current value.
func (c *Catalog) UpdateProduct(ctx context.Context, token, productID string, input backend.ProductInput, image *backend.ProductImage) error {
	if productID == "" {
		return domain.NewValidationError("product_id", "must not be empty")
	}
	if err := ValidateProductInput(input, false); err != nil {
		return err
	}
	if err := c.backend.UpdateProduct(ctx, token, productID, input, image); err != nil {
		return err
	}
	c.invalidate(ctx, productID)
	return nil
}

func (c *Catalog) DeleteProduct(ctx context.Context, token, productID string) error {
	if err := c.backend.DeleteProduct(ctx, token, productID); err != nil {
		return err
	}
	c.invalidate(ctx, productID)
	return nil
}

// ValidateProductInput checks an admin product form. With complete set, name,
// price and restaurant are required.
func ValidateProductInput(input backend.ProductInput, complete bool) error {
	if complete {
		if strings.TrimSpace(input.Name) == "" {
			return domain.NewValidationError("name", "is required")
		}
		if strings.TrimSpace(input.Price) == "" {
			return domain.NewValidationError("price", "is required")
		}
		if strings.TrimSpace(input.RestaurantID) == "" {
			return domain.NewValidationError("clientId", "is required")
		}
	}
	if input.Price != "" {
		price, err := decimal.NewFromString(strings.TrimSpace(input.Price))
		if err != nil || price.IsNegative() {
			return domain.NewValidationError("price", "must be a non-negative number")
		}
	}
	if input.Discount != "" {
		discount, err := decimal.NewFromString(strings.TrimSpace(input.Discount))
		if err != nil || discount.IsNegative() || discount.GreaterThan(decimal.NewFromInt(100)) {
			return domain.NewValidationError("discount", "must be between 0 and 100")
		}
	}
	return nil
}

func (c *Catalog) cached(ctx context.Context, productID string) (*domain.Product, bool) {
	if c.cache == nil {
		return nil, false
	}
	p, ok, err := c.cache.Get(ctx, productID)
	if err != nil {
		c.logger.Warn("product cache read failed", zap.String("product_id", productID), zap.Error(err))
		return nil, false
	}
	return p, ok
}

func (c *Catalog) store(ctx context.Context, p domain.Product) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, p); err != nil {
		c.logger.Warn("product cache write failed", zap.String("product_id", p.ID), zap.Error(err))
	}
}

func (c *Catalog) invalidate(ctx context.Context, productID string) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Delete(ctx, productID); err != nil {
		c.logger.Warn("product cache invalidation failed", zap.String("product_id", productID), zap.Error(err))
	}
}
