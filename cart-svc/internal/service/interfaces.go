package service

import (
	"context"

	"bitecart/cart-svc/internal/backend"
	"bitecart/cart-svc/internal/domain"
	"bitecart/cart-svc/internal/storage"
)

type CartBackend interface {
	GetCart(ctx context.Context, token string) ([]domain.CartLine, error)
	AddToCart(ctx context.Context, token, productID string, action backend.CartAction) error
	RemoveFromCart(ctx context.Context, token, productID string) error
	ClearCart(ctx context.Context, token string) error
}

type ProductBackend interface {
	GetProduct(ctx context.Context, productID string) (*domain.Product, error)
	ListProducts(ctx context.Context, token string) ([]domain.Product, error)
	RestaurantProducts(ctx context.Context, restaurantID string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, token string, input backend.ProductInput, image *backend.ProductImage) error
	UpdateProduct(ctx context.Context, token, productID string, input backend.ProductInput, image *backend.ProductImage) error
	DeleteProduct(ctx context.Context, token, productID string) error
}

type OrderBackend interface {
	CreateOrder(ctx context.Context, token string, draft domain.Order, idempotencyKey string) (*domain.Order, error)
}

type StatusBackend interface {
	OrderStatus(ctx context.Context, orderID string) (domain.OrderStatus, error)
}

type OrderAdminBackend interface {
	StatusBackend
	UserOrders(ctx context.Context, token, userID string) ([]domain.Order, error)
	RestaurantOrders(ctx context.Context, token, clientID string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error
}

// ProductLookup resolves a single product; CartStore only needs this much of the catalog.
// CurrentProduct skips the cache.
type ProductLookup interface {
	Product(ctx context.Context, productID string) (*domain.Product, error)
	CurrentProduct(ctx context.Context, productID string) (*domain.Product, error)
}

type ProductCache interface {
	Get(ctx context.Context, productID string) (*domain.Product, bool, error)
	Set(ctx context.Context, product domain.Product) error
	Delete(ctx context.Context, productID string) error
}

type IdempotencyStore interface {
	// Reserve returns false when the key is already reserved or completed.
	Reserve(ctx context.Context, key string) (bool, error)
	Lookup(ctx context.Context, key string) (*domain.Order, bool, error)
	Complete(ctx context.Context, key string, order domain.Order) error
	Release(ctx context.Context, key string) error
}

type EventPublisher interface {
	PublishCartUpdated(ctx context.Context, userID string) error
	PublishStatusChange(ctx context.Context, orderID string, oldStatus, newStatus domain.OrderStatus) error
}

// CheckoutCart is the part of CartStore the order submitter depends on.
type CheckoutCart interface {
	Session() domain.Session
	CheckoutID() string
	CheckoutPriced(ctx context.Context) (domain.PricedCart, error)
	Clear(ctx context.Context) error
}

type QRGenerator interface {
	Generate(orderID string) ([]byte, error)
}

// CartService is one session's cart as used by the HTTP layer.
type CartService interface {
	CheckoutCart
	Priced(ctx context.Context) (domain.PricedCart, error)
	Snapshot() domain.Cart
	Refresh(ctx context.Context) (domain.Cart, error)
	AddOrIncrement(ctx context.Context, productID string, delta int) error
	Decrement(ctx context.Context, productID string, delta int) error
	Remove(ctx context.Context, productID string) error
}

type CartRegistry interface {
	Cart(session domain.Session) CartService
}

type CatalogService interface {
	Products(ctx context.Context, token string) ([]domain.Product, error)
	RestaurantProducts(ctx context.Context, restaurantID string) ([]domain.Product, error)
	Offers(ctx context.Context, token string) ([]domain.Product, error)
	CreateProduct(ctx context.Context, token string, input backend.ProductInput, image *backend.ProductImage) error
	UpdateProduct(ctx context.Context, token, productID string, input backend.ProductInput, image *backend.ProductImage) error
	DeleteProduct(ctx context.Context, token, productID string) error
}

type OrderService interface {
	Submit(ctx context.Context, cart CheckoutCart, info domain.DeliveryInfo, attemptKey string) (*domain.Order, error)
}

type OrderAdminService interface {
	RestaurantOrders(ctx context.Context, token, restaurantID string) ([]domain.Order, error)
	UserOrders(ctx context.Context, token, userID string) ([]domain.Order, error)
	UpdateStatus(ctx context.Context, token, orderID string, next domain.OrderStatus) (domain.OrderStatus, error)
	Status(ctx context.Context, orderID string) (domain.OrderStatus, error)
}

type StatusWatcher interface {
	Watch(orderIDs []string, onChange StatusChangeFunc)
	WatchKnown(orderID string, known domain.OrderStatus, onChange StatusChangeFunc)
	Unwatch(orderID string)
}

var (
	_ CartBackend       = (*backend.Client)(nil)
	_ ProductBackend    = (*backend.Client)(nil)
	_ OrderBackend      = (*backend.Client)(nil)
	_ OrderAdminBackend = (*backend.Client)(nil)
	_ ProductLookup     = (*Catalog)(nil)
	_ CheckoutCart      = (*CartStore)(nil)
	_ QRGenerator       = DefaultQRGenerator{}
	_ CartService       = (*CartStore)(nil)
	_ CartRegistry      = (*CartSessions)(nil)
	_ CatalogService    = (*Catalog)(nil)
	_ OrderService      = (*OrderSubmitter)(nil)
	_ OrderAdminService = (*OrderAdmin)(nil)
	_ StatusWatcher     = (*OrderStatusWatcher)(nil)

	_ ProductCache              = (*storage.RedisProductCache)(nil)
	_ IdempotencyStore          = (*storage.RedisIdempotencyStore)(nil)
	_ EventPublisher            = (*storage.KafkaPublisher)(nil)
	_ storage.CartUpdateHandler = (*CartSessions)(nil)
)
