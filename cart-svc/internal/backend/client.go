package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"bitecart/cart-svc/internal/domain"

	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	BaseURL string
}

// Client talks to the food-ordering REST backend. Every failure comes back as
// a *domain.NetworkError or a *domain.ServerRejected.
type Client struct {
	config Config
	client HTTPClient
	logger *zap.Logger
}

func NewClient(config Config, client HTTPClient, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		config: Config{BaseURL: strings.TrimRight(config.BaseURL, "/")},
		client: client,
		logger: logger,
	}
}

type request struct {
	op          string
	method      string
	path        string
	token       string
	body        io.Reader
	contentType string
	header      http.Header
}

func jsonBody(v interface{}) (io.Reader, error) {
	payload, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(payload), nil
}

// do sends the request and decodes a 2xx JSON body into out when out is non-nil.
func (c *Client) do(ctx context.Context, r request, out interface{}) error {
	url := c.config.BaseURL + r.path

	req, err := http.NewRequestWithContext(ctx, r.method, url, r.body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", r.op, err)
	}
	for k, v := range r.header {
		req.Header[k] = v
	}
	if r.body != nil {
		contentType := r.contentType
		if contentType == "" {
			contentType = "application/json"
		}
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("backend request failed",
			zap.String("op", r.op),
			zap.String("method", r.method),
			zap.String("path", r.path),
			zap.Error(err))
		return &domain.NetworkError{Op: r.op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &domain.NetworkError{Op: r.op, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		rejected := &domain.ServerRejected{Status: resp.StatusCode, Message: errorMessage(body)}
		c.logger.Info("backend rejected request",
			zap.String("op", r.op),
			zap.Int("status", resp.StatusCode),
			zap.String("message", rejected.Message))
		return rejected
	}

	if out == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &domain.ServerRejected{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("%s: malformed response: %v", r.op, err),
		}
	}
	return nil
}

// errorMessage pulls {"message": "..."} out of an error body, falling back to the raw text.
func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return strings.TrimSpace(string(body))
}
