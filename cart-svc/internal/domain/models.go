package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Product struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Discount     decimal.Decimal `json:"discount"`
	RestaurantID string          `json:"restaurant_id"`
	Image        string          `json:"image"`
}

func (p Product) HasDiscount() bool {
	return p.Discount.IsPositive()
}

type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart holds only lines with a positive quantity. RestaurantID is empty until
// it has been resolved from one of the lines' products.
type Cart struct {
	Lines        []CartLine `json:"lines"`
	RestaurantID string     `json:"restaurant_id,omitempty"`
}

func (c Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

func (c Cart) Line(productID string) (CartLine, bool) {
	for _, line := range c.Lines {
		if line.ProductID == productID {
			return line, true
		}
	}
	return CartLine{}, false
}

func (c Cart) ItemCount() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}
	return total
}

// PricedLine joins a cart line with the product it points at.
type PricedLine struct {
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type PricedCart struct {
	Lines        []PricedLine    `json:"lines"`
	RestaurantID string          `json:"restaurant_id,omitempty"`
	ItemCount    int             `json:"item_count"`
	Total        decimal.Decimal `json:"total"`
}

type PaymentMethod string

const PaymentCash PaymentMethod = "cash"

func (m PaymentMethod) Valid() bool {
	return m == PaymentCash
}

type DeliveryInfo struct {
	Address       string        `json:"deliveryAddress"`
	City          string        `json:"city"`
	Phone         string        `json:"phone"`
	Allergies     string        `json:"allergies"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
}

type OrderItem struct {
	ProductID  string          `json:"product_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Discount   decimal.Decimal `json:"discount"`
	FinalPrice decimal.Decimal `json:"final_price"`
}

type Order struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	RestaurantID    string          `json:"restaurant_id,omitempty"`
	Items           []OrderItem     `json:"items"`
	DeliveryAddress string          `json:"delivery_address"`
	City            string          `json:"city"`
	Phone           string          `json:"phone"`
	Allergies       string          `json:"allergies,omitempty"`
	PaymentMethod   PaymentMethod   `json:"payment_method"`
	TotalAmount     decimal.Decimal `json:"total_amount"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// Session is the identity handed to the cart core by the auth layer.
type Session struct {
	UserID string
	Token  string
}

const (
	EventCartUpdated        = "cart_updated"
	EventOrderStatusChanged = "order_status_changed"
)

// Event is the broadcast message shared with other cart-svc replicas and history-svc.
// Source identifies the publishing cart-svc instance so it can skip its own echoes.
type Event struct {
	Type      string      `json:"type"`
	Source    string      `json:"source,omitempty"`
	UserID    string      `json:"user_id,omitempty"`
	OrderID   string      `json:"order_id,omitempty"`
	OldStatus OrderStatus `json:"old_status,omitempty"`
	NewStatus OrderStatus `json:"new_status,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}
