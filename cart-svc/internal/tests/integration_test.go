package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"bitecart/cart-svc/internal/backend"
	"bitecart/cart-svc/internal/domain"
	"bitecart/cart-svc/internal/service"
	"bitecart/cart-svc/internal/storage"

	httpapi "bitecart/cart-svc/internal/api/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeRestBackend keeps one cart and the orders it created in memory.
type fakeRestBackend struct {
	mu        sync.Mutex
	products  map[string]string
	cart      map[string]int
	statuses  map[string]string
	created   int
	lastTotal float64
}

func newFakeRestBackend() *fakeRestBackend {
	return &fakeRestBackend{
		products: map[string]string{
			"A": `{"_id":"A","name":"Pizza","price":100,"discount":10,"clientId":"r1"}`,
			"B": `{"_id":"B","name":"Salad","price":50,"discount":0,"clientId":"r1"}`,
			"C": `{"_id":"C","name":"Sushi","price":70,"discount":0,"clientId":"r2"}`,
		},
		cart:     map[string]int{},
		statuses: map[string]string{},
	}
}

func (b *fakeRestBackend) setStatus(orderID, status string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.statuses[orderID] = status
}

func (b *fakeRestBackend) setProduct(id, doc string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.products[id] = doc
}

func (b *fakeRestBackend) orders() (int, float64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.created, b.lastTotal
}

func (b *fakeRestBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	path := r.URL.Path
	switch {
	case strings.HasPrefix(path, "/products/getproduct/"):
		product, ok := b.products[strings.TrimPrefix(path, "/products/getproduct/")]
		if !ok {
			http.Error(w, `{"message":"Product not found"}`, http.StatusNotFound)
			return
		}
		w.Write([]byte(product))

	case path == "/products/cart" && r.Method == http.MethodGet:
		ids := make([]string, 0, len(b.cart))
		for id := range b.cart {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		lines := []map[string]interface{}{}
		for _, id := range ids {
			lines = append(lines, map[string]interface{}{"productId": id, "quantity": b.cart[id]})
		}
		json.NewEncoder(w).Encode(lines)

	case path == "/products/cart/add":
		var body struct {
			ProductID string `json:"productId"`
			Action    string `json:"action"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		if body.Action == "decrement" {
			b.cart[body.ProductID]--
		} else {
			b.cart[body.ProductID]++
		}
		w.WriteHeader(http.StatusOK)

	case path == "/products/cart/remove":
		var body struct {
			ProductID string `json:"productId"`
		}
		json.NewDecoder(r.Body).Decode(&body)
		delete(b.cart, body.ProductID)
		w.WriteHeader(http.StatusOK)

	case path == "/products/cart/clear":
		b.cart = map[string]int{}
		w.WriteHeader(http.StatusOK)

	case path == "/orders/create":
		var draft map[string]interface{}
		json.NewDecoder(r.Body).Decode(&draft)
		b.created++
		b.lastTotal, _ = draft["totalAmount"].(float64)
		id := fmt.Sprintf("o%d", b.created)
		b.statuses[id] = "pending"
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"order": map[string]interface{}{
				"_id":         id,
				"userId":      draft["userId"],
				"clientId":    draft["clientId"],
				"totalAmount": draft["totalAmount"],
				"status":      "pending",
			},
		})

	case strings.HasPrefix(path, "/orders/status/"):
		status, ok := b.statuses[strings.TrimPrefix(path, "/orders/status/")]
		if !ok {
			http.Error(w, `{"message":"Order not found"}`, http.StatusNotFound)
			return
		}
		json.NewEncoder(w).Encode(map[string]string{"status": status})

	default:
		http.NotFound(w, r)
	}
}

type checkoutHarness struct {
	rest    *fakeRestBackend
	watcher *service.OrderStatusWatcher
	send    func(method, path, body string, header http.Header) (*http.Response, map[string]interface{})

	mu      sync.Mutex
	changes []statusChange
}

func (h *checkoutHarness) call(method, path, body string) (*http.Response, map[string]interface{}) {
	return h.send(method, path, body, nil)
}

func (h *checkoutHarness) statusChanges() []statusChange {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]statusChange(nil), h.changes...)
}

func newCheckoutHarness(t *testing.T) *checkoutHarness {
	t.Helper()
	h := &checkoutHarness{rest: newFakeRestBackend()}
	restServer := httptest.NewServer(h.rest)
	t.Cleanup(restServer.Close)

	_, rdb := newTestRedis(t)
	logger := zap.NewNop()
	client := backend.NewClient(backend.Config{BaseURL: restServer.URL}, restServer.Client(), logger)
	publisher := storage.NewKafkaPublisher(nil, nil, "test-instance")
	catalog := service.NewCatalog(client, storage.NewRedisProductCache(rdb, time.Minute), logger)
	sessions := service.NewCartSessions(func(session domain.Session) *service.CartStore {
		return service.NewCartStore(session, client, catalog, publisher, logger)
	}, time.Hour)
	h.watcher = service.NewOrderStatusWatcher(client, service.WatcherConfig{Interval: time.Hour}, logger)
	t.Cleanup(h.watcher.Stop)

	handler := &httpapi.Handler{
		Carts:   sessions,
		Catalog: catalog,
		Orders:  service.NewOrderSubmitter(client, storage.NewRedisIdempotencyStore(rdb, time.Minute), logger),
		Admin:   service.NewOrderAdmin(client, publisher, logger),
		Watcher: h.watcher,
		QR:      service.DefaultQRGenerator{BaseURL: "http://localhost:5173"},
		OnStatusChange: func(orderID string, from, to domain.OrderStatus) {
			h.mu.Lock()
			defer h.mu.Unlock()
			h.changes = append(h.changes, statusChange{orderID, from, to})
		},
		Logger: logger,
	}
	api := httptest.NewServer(httpapi.NewRouter(handler))
	t.Cleanup(api.Close)

	h.send = func(method, path, body string, header http.Header) (*http.Response, map[string]interface{}) {
		t.Helper()
		req, err := http.NewRequest(method, api.URL+path, bytes.NewBufferString(body))
		require.NoError(t, err)
		for name, values := range header {
			req.Header[name] = values
		}
		req.Header.Set("Authorization", "Bearer tok")
		req.Header.Set(httpapi.UserIDHeader, "u1")
		resp, err := api.Client().Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		var decoded map[string]interface{}
		json.NewDecoder(resp.Body).Decode(&decoded)
		return resp, decoded
	}
	return h
}

const testDelivery = `{"deliveryAddress":"12 Nile St","city":"Cairo","phone":"01012345678"}`

func TestCheckoutFlow(t *testing.T) {
	h := newCheckoutHarness(t)

	resp, _ := h.call(http.MethodPost, "/api/cart/items", `{"productId":"A","quantity":2}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, cart := h.call(http.MethodPost, "/api/cart/items", `{"productId":"B"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "230", cart["total"])
	assert.Equal(t, float64(3), cart["item_count"])

	resp, _ = h.call(http.MethodPost, "/api/cart/items", `{"productId":"C"}`)
	assert.Equal(t, http.StatusConflict, resp.StatusCode, "a second restaurant is refused")

	resp, submitted := h.call(http.MethodPost, "/api/orders", testDelivery)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, submitted["cart_cleared"])

	resp, cart = h.call(http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "0", cart["total"])

	h.rest.setStatus("o1", "confirmed")
	require.True(t, h.watcher.PollOnce(context.Background()))

	assert.Equal(t, []statusChange{
		{"o1", "", domain.StatusPending},
		{"o1", domain.StatusPending, domain.StatusConfirmed},
	}, h.statusChanges())

	created, _ := h.rest.orders()
	assert.Equal(t, 1, created)
}

func TestCheckout_SameCartAfterClearIsNewOrder(t *testing.T) {
	h := newCheckoutHarness(t)

	for i, wantID := range []string{"o1", "o2"} {
		resp, _ := h.call(http.MethodPost, "/api/cart/items", `{"productId":"B","quantity":2}`)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp, submitted := h.call(http.MethodPost, "/api/orders", testDelivery)
		require.Equal(t, http.StatusCreated, resp.StatusCode, "submission %d", i+1)
		order := submitted["order"].(map[string]interface{})
		assert.Equal(t, wantID, order["id"])
	}

	created, _ := h.rest.orders()
	assert.Equal(t, 2, created)
}

func TestCheckout_ClientKeyDeduplicatesRetry(t *testing.T) {
	h := newCheckoutHarness(t)
	resp, _ := h.call(http.MethodPost, "/api/cart/items", `{"productId":"B"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	header := http.Header{}
	header.Set(httpapi.IdempotencyKeyHeader, "attempt-1")

	resp, first := h.send(http.MethodPost, "/api/orders", testDelivery, header)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	// The cart is empty now; only the stored result can answer the retry.
	resp, _ = h.call(http.MethodPost, "/api/cart/items", `{"productId":"B"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, second := h.send(http.MethodPost, "/api/orders", testDelivery, header)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	assert.Equal(t, "o1", first["order"].(map[string]interface{})["id"])
	assert.Equal(t, "o1", second["order"].(map[string]interface{})["id"])
	created, _ := h.rest.orders()
	assert.Equal(t, 1, created)
}

func TestCheckout_PricesFromBackendNotCache(t *testing.T) {
	h := newCheckoutHarness(t)

	resp, cart := h.call(http.MethodPost, "/api/cart/items", `{"productId":"A"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "90", cart["total"], "A is cached at 100 less 10%")

	h.rest.setProduct("A", `{"_id":"A","name":"Pizza","price":200,"discount":10,"clientId":"r1"}`)

	resp, _ = h.call(http.MethodPost, "/api/orders", testDelivery)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	_, total := h.rest.orders()
	assert.Equal(t, float64(180), total)
}

func TestCheckout_StatusOfNewOrderReadsBackend(t *testing.T) {
	h := newCheckoutHarness(t)
	resp, _ := h.call(http.MethodPost, "/api/cart/items", `{"productId":"B"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp, _ = h.call(http.MethodPost, "/api/orders", testDelivery)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, status := h.call(http.MethodGet, "/api/orders/o1/status", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pending", status["status"])

	resp, _ = h.call(http.MethodGet, "/api/orders/missing/status", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
