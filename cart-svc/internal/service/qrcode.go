package service

import (
	"fmt"
	"net/url"

	"github.com/skip2/go-qrcode"
)

// DefaultQRGenerator encodes the customer-facing tracking page of an order.
type DefaultQRGenerator struct {
	BaseURL string
}

func (g DefaultQRGenerator) TrackingURL(orderID string) string {
	return fmt.Sprintf("%s/orders/%s/track", g.BaseURL, url.PathEscape(orderID))
}

func (g DefaultQRGenerator) Generate(orderID string) ([]byte, error) {
	if orderID == "" {
		return nil, fmt.Errorf("qr code: empty order id")
	}
	return qrcode.Encode(g.TrackingURL(orderID), qrcode.Medium, 256)
}
