package backend

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"bitecart/cart-svc/internal/domain"

	"go.uber.org/zap"
)

// ProductInput is the editable part of a product as sent by the admin panel.
type ProductInput struct {
	Name         string
	Description  string
	Price        string
	Discount     string
	RestaurantID string
}

// ProductImage is optional on update; a nil Content keeps the current image.
type ProductImage struct {
	Filename string
	Content  io.Reader
}

func (c *Client) ListProducts(ctx context.Context, token string) ([]domain.Product, error) {
	return c.listProducts(ctx, "list products", "/products", token)
}

func (c *Client) RestaurantProducts(ctx context.Context, restaurantID string) ([]domain.Product, error) {
	return c.listProducts(ctx, "list restaurant products", "/products/client/"+url.PathEscape(restaurantID), "")
}

func (c *Client) listProducts(ctx context.Context, op, path, token string) ([]domain.Product, error) {
	var wire []productWire
	if err := c.do(ctx, request{op: op, method: http.MethodGet, path: path, token: token}, &wire); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(wire))
	for _, w := range wire {
		p, err := w.toDomain()
		if err != nil {
			c.logger.Warn("skipping malformed product",
				zap.String("op", op),
				zap.String("product_id", firstNonEmpty(w.MongoID, w.ID)),
				zap.Error(err))
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*domain.Product, error) {
	var wire productWire
	err := c.do(ctx, request{op: "get product", method: http.MethodGet, path: "/products/getproduct/" + url.PathEscape(productID)}, &wire)
	if err != nil {
		return nil, err
	}
	p, err := wire.toDomain()
	if err != nil {
		return nil, fmt.Errorf("get product %s: %w", productID, err)
	}
	return &p, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, input ProductInput, image *ProductImage) error {
	body, contentType, err := productForm(input, image)
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		op:          "create product",
		method:      http.MethodPost,
		path:        "/products/addproduct",
		token:       token,
		body:        body,
		contentType: contentType,
	}, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, token, productID string, input ProductInput, image *ProductImage) error {
	body, contentType, err := productForm(input, image)
	if err != nil {
		return err
	}
	return c.do(ctx, request{
		op:          "update product",
		method:      http.MethodPut,
		path:        "/products/editproduct/" + url.PathEscape(productID),
		token:       token,
		body:        body,
		contentType: contentType,
	}, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, token, productID string) error {
	return c.do(ctx, request{
		op:     "delete product",
		method: http.MethodDelete,
		path:   "/products/deleteproduct/" + url.PathEscape(productID),
		token:  token,
	}, nil)
}

func productForm(input ProductInput, image *ProductImage) (io.Reader, string, error) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := []struct{ key, value string }{
		{"name", input.Name},
		{"price", input.Price},
		{"description", input.Description},
		{"discount", input.Discount},
		{"clientId", input.RestaurantID},
	}
	for _, f := range fields {
		if err := form.WriteField(f.key, f.value); err != nil {
			return nil, "", err
		}
	}

	if image != nil && image.Content != nil {
		part, err := form.CreateFormFile("image", image.Filename)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, image.Content); err != nil {
			return nil, "", err
		}
	}

	if err := form.Close(); err != nil {
		return nil, "", err
	}
	return &buf, form.FormDataContentType(), nil
}
