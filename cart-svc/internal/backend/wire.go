package backend

import (
	"encoding/json"
	"time"

	"bitecart/cart-svc/internal/domain"

	"github.com/shopspring/decimal"
)

var (
	zeroPercent    = decimal.Zero
	hundredPercent = decimal.NewFromInt(100)
)

// productWire accepts every product shape the backend has been seen to emit.
// toDomain is the only place those variants are resolved.
type productWire struct {
	MongoID      string          `json:"_id"`
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	Desc         string          `json:"desc"`
	Details      string          `json:"details"`
	Price        decimal.Decimal `json:"price"`
	Discount     decimal.Decimal `json:"discount"`
	ClientID     string          `json:"clientId"`
	RestaurantID string          `json:"restaurantId"`
	Image        string          `json:"image"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (w productWire) toDomain() (domain.Product, error) {
	p := domain.Product{
		ID:           firstNonEmpty(w.MongoID, w.ID),
		Name:         firstNonEmpty(w.Name, w.Title),
		Description:  firstNonEmpty(w.Description, w.Desc, w.Details),
		Price:        w.Price,
		Discount:     w.Discount,
		RestaurantID: firstNonEmpty(w.ClientID, w.RestaurantID),
		Image:        w.Image,
	}
	if p.ID == "" {
		return domain.Product{}, domain.NewValidationError("id", "product without identifier")
	}
	if p.Price.IsNegative() {
		return domain.Product{}, domain.NewValidationError("price", "must not be negative")
	}
	if p.Discount.LessThan(zeroPercent) || p.Discount.GreaterThan(hundredPercent) {
		return domain.Product{}, domain.NewValidationError("discount", "must be between 0 and 100")
	}
	return p, nil
}

type cartLineWire struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

type cartMutation struct {
	ProductID string `json:"productId"`
	Action    string `json:"action,omitempty"`
}

type orderItemWire struct {
	ProductID  string          `json:"productId"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Discount   decimal.Decimal `json:"discount"`
	FinalPrice decimal.Decimal `json:"finalPrice"`
}

type orderWire struct {
	MongoID         string          `json:"_id"`
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	ClientID        string          `json:"clientId"`
	Items           []orderItemWire `json:"items"`
	DeliveryAddress string          `json:"deliveryAddress"`
	City            string          `json:"city"`
	Phone           string          `json:"phone"`
	Allergies       string          `json:"allergies"`
	PaymentMethod   string          `json:"paymentMethod"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (w orderWire) toDomain() domain.Order {
	order := domain.Order{
		ID:              firstNonEmpty(w.MongoID, w.ID),
		UserID:          w.UserID,
		RestaurantID:    w.ClientID,
		DeliveryAddress: w.DeliveryAddress,
		City:            w.City,
		Phone:           w.Phone,
		Allergies:       w.Allergies,
		PaymentMethod:   domain.PaymentMethod(w.PaymentMethod),
		TotalAmount:     w.TotalAmount,
		Status:          domain.OrderStatus(w.Status),
		CreatedAt:       w.CreatedAt,
		Items:           make([]domain.OrderItem, 0, len(w.Items)),
	}
	if order.Status == "" {
		order.Status = domain.StatusPending
	}
	for _, item := range w.Items {
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Price:      item.Price,
			Discount:   item.Discount,
			FinalPrice: item.FinalPrice,
		})
	}
	return order
}

// Money goes out as a bare JSON number, not decimal's default quoted string.
func money(d decimal.Decimal) json.Number {
	return json.Number(d.String())
}

type orderItemPayload struct {
	ProductID  string      `json:"productId"`
	Name       string      `json:"name"`
	Quantity   int         `json:"quantity"`
	Price      json.Number `json:"price"`
	Discount   json.Number `json:"discount"`
	FinalPrice json.Number `json:"finalPrice"`
}

type createOrderPayload struct {
	UserID          string             `json:"userId"`
	Items           []orderItemPayload `json:"items"`
	DeliveryAddress string             `json:"deliveryAddress"`
	City            string             `json:"city"`
	Phone           string             `json:"phone"`
	Allergies       string             `json:"allergies"`
	PaymentMethod   string             `json:"paymentMethod"`
	TotalAmount     json.Number        `json:"totalAmount"`
}

func newCreateOrderPayload(draft domain.Order) createOrderPayload {
	payload := createOrderPayload{
		UserID:          draft.UserID,
		DeliveryAddress: draft.DeliveryAddress,
		City:            draft.City,
		Phone:           draft.Phone,
		Allergies:       draft.Allergies,
		PaymentMethod:   string(draft.PaymentMethod),
		TotalAmount:     money(draft.TotalAmount),
		Items:           make([]orderItemPayload, 0, len(draft.Items)),
	}
	for _, item := range draft.Items {
		payload.Items = append(payload.Items, orderItemPayload{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Price:      money(item.Price),
			Discount:   money(item.Discount),
			FinalPrice: money(item.FinalPrice),
		})
	}
	return payload
}

type createOrderResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Order   orderWire `json:"order"`
}
