package backend

import (
	"context"
	"net/http"
	"net/url"

	"bitecart/cart-svc/internal/domain"
)

const IdempotencyHeader = "Idempotency-Key"

// CreateOrder posts a priced order draft. A response with success=false is
// reported as a rejection even though the status code was 2xx.
func (c *Client) CreateOrder(ctx context.Context, token string, draft domain.Order, idempotencyKey string) (*domain.Order, error) {
	body, err := jsonBody(newCreateOrderPayload(draft))
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	if idempotencyKey != "" {
		header.Set(IdempotencyHeader, idempotencyKey)
	}

	var resp createOrderResponse
	err = c.do(ctx, request{
		op:     "create order",
		method: http.MethodPost,
		path:   "/orders/create",
		token:  token,
		body:   body,
		header: header,
	}, &resp)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "order was not accepted"
		}
		return nil, &domain.ServerRejected{Status: http.StatusOK, Message: message}
	}

	order := resp.Order.toDomain()
	if order.UserID == "" {
		order.UserID = draft.UserID
	}
	return &order, nil
}

func (c *Client) listOrders(ctx context.Context, op, path, token string) ([]domain.Order, error) {
	var wire []orderWire
	if err := c.do(ctx, request{op: op, method: http.MethodGet, path: path, token: token}, &wire); err != nil {
		return nil, err
	}
	orders := make([]domain.Order, 0, len(wire))
	for _, w := range wire {
		orders = append(orders, w.toDomain())
	}
	return orders, nil
}

func (c *Client) UserOrders(ctx context.Context, token, userID string) ([]domain.Order, error) {
	return c.listOrders(ctx, "list user orders", "/orders/user/"+url.PathEscape(userID), token)
}

func (c *Client) RestaurantOrders(ctx context.Context, token, clientID string) ([]domain.Order, error) {
	return c.listOrders(ctx, "list restaurant orders", "/orders/client/"+url.PathEscape(clientID), token)
}

func (c *Client) OrderStatus(ctx context.Context, orderID string) (domain.OrderStatus, error) {
	var resp struct {
		Status string `json:"status"`
	}
	err := c.do(ctx, request{op: "order status", method: http.MethodGet, path: "/orders/status/" + url.PathEscape(orderID)}, &resp)
	if err != nil {
		return "", err
	}
	status := domain.OrderStatus(resp.Status)
	if !status.Valid() {
		return "", &domain.ServerRejected{Status: http.StatusOK, Message: "unknown order status " + resp.Status}
	}
	return status, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, token, orderID string, status domain.OrderStatus) error {
	body, err := jsonBody(map[string]string{"status": string(status)})
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		op:     "update order status",
		method: http.MethodPut,
		path:   "/orders/update/" + url.PathEscape(orderID),
		token:  token,
		body:   body,
	}, nil)
}
