package backend

import (
	"context"
	"net/http"

	"bitecart/cart-svc/internal/domain"
)

type CartAction string

const (
	ActionAdd       CartAction = ""
	ActionIncrement CartAction = "increment"
	ActionDecrement CartAction = "decrement"
)

func (c *Client) GetCart(ctx context.Context, token string) ([]domain.CartLine, error) {
	var wire []cartLineWire
	err := c.do(ctx, request{op: "get cart", method: http.MethodGet, path: "/products/cart", token: token}, &wire)
	if err != nil {
		return nil, err
	}

	lines := make([]domain.CartLine, 0, len(wire))
	for _, line := range wire {
		lines = append(lines, domain.CartLine{ProductID: line.ProductID, Quantity: line.Quantity})
	}
	return lines, nil
}

// AddToCart changes the line by exactly one unit in the direction of action.
func (c *Client) AddToCart(ctx context.Context, token, productID string, action CartAction) error {
	body, err := jsonBody(cartMutation{ProductID: productID, Action: string(action)})
	if err != nil {
		return err
	}
	return c.do(ctx, request{op: "add to cart", method: http.MethodPost, path: "/products/cart/add", token: token, body: body}, nil)
}

func (c *Client) RemoveFromCart(ctx context.Context, token, productID string) error {
	body, err := jsonBody(cartMutation{ProductID: productID})
	if err != nil {
		return err
	}
	return c.do(ctx, request{op: "remove from cart", method: http.MethodDelete, path: "/products/cart/remove", token: token, body: body}, nil)
}

func (c *Client) ClearCart(ctx context.Context, token string) error {
	return c.do(ctx, request{op: "clear cart", method: http.MethodDelete, path: "/products/cart/clear", token: token}, nil)
}
