package tests

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	httpapi "bitecart/cart-svc/internal/api/http"
	"bitecart/cart-svc/internal/backend"
	"bitecart/cart-svc/internal/domain"
	"bitecart/cart-svc/internal/mocks"
	"bitecart/cart-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type handlerFixture struct {
	handler *httpapi.Handler
	carts   *mocks.CartRegistry
	cart    *mocks.CartService
	catalog *mocks.CatalogService
	orders  *mocks.OrderService
	admin   *mocks.OrderAdminService
	watcher *mocks.StatusWatcher
	qr      *mocks.QRGenerator
	router  *mux.Router
}

func newHandlerFixture(t *testing.T) handlerFixture {
	f := handlerFixture{
		carts:   mocks.NewCartRegistry(t),
		cart:    mocks.NewCartService(t),
		catalog: mocks.NewCatalogService(t),
		orders:  mocks.NewOrderService(t),
		admin:   mocks.NewOrderAdminService(t),
		watcher: mocks.NewStatusWatcher(t),
		qr:      mocks.NewQRGenerator(t),
		router:  mux.NewRouter(),
	}
	f.handler = &httpapi.Handler{
		Carts:   f.carts,
		Catalog: f.catalog,
		Orders:  f.orders,
		Admin:   f.admin,
		Watcher: f.watcher,
		QR:      f.qr,
	}
	f.handler.RegisterRoutes(f.router)
	return f
}

func (f handlerFixture) withCart() {
	f.carts.On("Cart", testSession).Return(f.cart).Once()
}

func (f handlerFixture) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func authed(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer tok")
	req.Header.Set(httpapi.UserIDHeader, "u1")
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
	return body
}

func TestHealthCheckHandler(t *testing.T) {
	f := newHandlerFixture(t)

	w := f.serve(httptest.NewRequest("GET", "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "cart-svc", body["service"])
}

func TestCartHandlers_RequireSession(t *testing.T) {
	f := newHandlerFixture(t)

	req := httptest.NewRequest("GET", "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer tok")

	w := f.serve(req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	f.carts.AssertNotCalled(t, "Cart", mock.Anything)
}

func TestGetCartHandler(t *testing.T) {
	f := newHandlerFixture(t)
	f.withCart()
	f.cart.On("Refresh", mock.Anything).Return(domain.Cart{}, nil).Once()
	f.cart.On("Priced", mock.Anything).Return(scenarioPricedCart(), nil).Once()

	w := f.serve(authed("GET", "/api/cart", ""))

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, float64(3), body["item_count"])
	assert.Equal(t, "230", body["total"])
}

func TestAddItemHandler(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(handlerFixture)
		wantCode  int
	}{
		{
			name: "defaults quantity to one",
			body: `{"productId":"A"}`,
			setupMock: func(f handlerFixture) {
				f.withCart()
				f.cart.On("AddOrIncrement", mock.Anything, "A", 1).Return(nil).Once()
				f.cart.On("Priced", mock.Anything).Return(domain.PricedCart{}, nil).Once()
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "invalid JSON",
			body:      `{invalid}`,
			setupMock: func(f handlerFixture) { f.withCart() },
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "restaurant conflict",
			body: `{"productId":"C","quantity":1}`,
			setupMock: func(f handlerFixture) {
				f.withCart()
				f.cart.On("AddOrIncrement", mock.Anything, "C", 1).
					Return(&domain.RestaurantConflictError{CartRestaurantID: "r1", ProductRestaurantID: "r2"}).Once()
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "validation error",
			body: `{"productId":"","quantity":1}`,
			setupMock: func(f handlerFixture) {
				f.withCart()
				f.cart.On("AddOrIncrement", mock.Anything, "", 1).Return(domain.NewValidationError("product_id", "must not be empty")).Once()
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "backend 404 passes through",
			body: `{"productId":"Z","quantity":1}`,
			setupMock: func(f handlerFixture) {
				f.withCart()
				f.cart.On("AddOrIncrement", mock.Anything, "Z", 1).
					Return(fmt.Errorf("add Z to cart: %w", &domain.ServerRejected{Status: http.StatusNotFound, Message: "Product not found"})).Once()
			},
			wantCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			testCase.setupMock(f)

			w := f.serve(authed("POST", "/api/cart/items", testCase.body))

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestBackendOutageMarksSessionInvalid(t *testing.T) {
	f := newHandlerFixture(t)
	f.withCart()
	f.cart.On("Remove", mock.Anything, "A").Return(&domain.NetworkError{Op: "remove from cart", Err: errors.New("connection refused")}).Once()

	w := f.serve(authed("DELETE", "/api/cart/items/A", ""))

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "true", w.Header().Get(httpapi.SessionInvalidHeader))
}

func TestDecrementHandler_EmptyBody(t *testing.T) {
	f := newHandlerFixture(t)
	f.withCart()
	f.cart.On("Decrement", mock.Anything, "A", 1).Return(nil).Once()
	f.cart.On("Priced", mock.Anything).Return(domain.PricedCart{}, nil).Once()

	w := f.serve(authed("POST", "/api/cart/items/A/decrement", ""))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestClearCartHandler(t *testing.T) {
	f := newHandlerFixture(t)
	f.withCart()
	f.cart.On("Clear", mock.Anything).Return(nil).Once()
	f.cart.On("Priced", mock.Anything).Return(domain.PricedCart{}, nil).Once()

	w := f.serve(authed("DELETE", "/api/cart", ""))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestSubmitOrderHandler(t *testing.T) {
	body := `{"deliveryAddress":"12 Baker Street","city":"Cairo","phone":"01012345678"}`
	matchInfo := mock.MatchedBy(func(info domain.DeliveryInfo) bool {
		return info.PaymentMethod == domain.PaymentCash && info.Phone == "01012345678"
	})

	t.Run("created and watched", func(t *testing.T) {
		f := newHandlerFixture(t)
		var baseline []string
		f.handler.OnStatusChange = func(orderID string, from, to domain.OrderStatus) {
			baseline = append(baseline, orderID+":"+string(from)+"->"+string(to))
		}
		f.withCart()
		order := &domain.Order{ID: "o1", Status: domain.StatusPending}
		f.orders.On("Submit", mock.Anything, f.cart, matchInfo, "").Return(order, nil).Once()
		f.watcher.On("WatchKnown", "o1", domain.StatusPending, mock.Anything).Return().Once()

		w := f.serve(authed("POST", "/api/orders", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, true, resp["cart_cleared"])
		assert.Equal(t, []string{"o1:->pending"}, baseline, "a new order is recorded before any change")
	})

	t.Run("client idempotency key", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.withCart()
		order := &domain.Order{ID: "o3", Status: domain.StatusPending}
		f.orders.On("Submit", mock.Anything, f.cart, matchInfo, "attempt-7").Return(order, nil).Once()
		f.watcher.On("WatchKnown", "o3", domain.StatusPending, mock.Anything).Return().Once()

		req := authed("POST", "/api/orders", body)
		req.Header.Set(httpapi.IdempotencyKeyHeader, "attempt-7")
		w := f.serve(req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("cart not cleared", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.withCart()
		order := &domain.Order{ID: "o2", Status: domain.StatusPending}
		f.orders.On("Submit", mock.Anything, f.cart, matchInfo, "").
			Return(order, fmt.Errorf("order o2: %w", domain.ErrCartNotCleared)).Once()
		f.watcher.On("WatchKnown", "o2", domain.StatusPending, mock.Anything).Return().Once()

		w := f.serve(authed("POST", "/api/orders", body))

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, false, resp["cart_cleared"])
		assert.NotEmpty(t, resp["warning"])
	})

	t.Run("invalid phone", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.withCart()
		f.orders.On("Submit", mock.Anything, f.cart, mock.Anything, "").
			Return(nil, domain.NewValidationError("phone", "must be exactly 11 digits")).Once()

		w := f.serve(authed("POST", "/api/orders", `{"phone":"12345"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "phone", decodeBody(t, w)["field"])
	})

	t.Run("duplicate in flight", func(t *testing.T) {
		f := newHandlerFixture(t)
		f.withCart()
		f.orders.On("Submit", mock.Anything, f.cart, mock.Anything, "").Return(nil, domain.ErrSubmissionInProgress).Once()

		w := f.serve(authed("POST", "/api/orders", body))

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestUpdateOrderStatusHandler(t *testing.T) {
	tests := []struct {
		name     string
		result   error
		wantCode int
	}{
		{name: "updated", wantCode: http.StatusOK},
		{name: "illegal transition", result: &domain.TransitionError{From: domain.StatusPending, To: domain.StatusReady}, wantCode: http.StatusConflict},
		{name: "backend 5xx", result: &domain.ServerRejected{Status: http.StatusServiceUnavailable}, wantCode: http.StatusBadGateway},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.admin.On("UpdateStatus", mock.Anything, "tok", "o1", domain.StatusReady).
				Return(domain.StatusPreparing, testCase.result).Once()

			w := f.serve(authed("PUT", "/api/orders/o1/status", `{"status":"ready"}`))

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestGetOrderStatusHandler(t *testing.T) {
	tests := []struct {
		name       string
		status     domain.OrderStatus
		err        error
		wantCode   int
		wantStatus string
	}{
		{name: "never changed", status: domain.StatusPending, wantCode: http.StatusOK, wantStatus: "pending"},
		{name: "unknown order", err: &domain.ServerRejected{Status: http.StatusNotFound, Message: "Order not found"}, wantCode: http.StatusNotFound},
		{name: "backend down", err: &domain.NetworkError{Op: "order status", Err: errors.New("refused")}, wantCode: http.StatusBadGateway},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			f.admin.On("Status", mock.Anything, "o1").Return(testCase.status, testCase.err).Once()

			w := f.serve(authed("GET", "/api/orders/o1/status", ""))

			assert.Equal(t, testCase.wantCode, w.Code)
			if testCase.wantStatus != "" {
				assert.Equal(t, testCase.wantStatus, decodeBody(t, w)["status"])
			}
		})
	}
}

func TestOrderListHandlers(t *testing.T) {
	f := newHandlerFixture(t)
	f.admin.On("RestaurantOrders", mock.Anything, "tok", "r1").Return([]domain.Order{{ID: "o1"}}, nil).Once()
	f.admin.On("UserOrders", mock.Anything, "tok", "u1").Return([]domain.Order{}, nil).Once()

	w := f.serve(authed("GET", "/api/restaurants/r1/orders", ""))
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.serve(authed("GET", "/api/users/u1/orders", ""))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWatchHandlers(t *testing.T) {
	f := newHandlerFixture(t)
	f.watcher.On("Watch", []string{"o1", "o2"}, mock.Anything).Return().Once()
	f.watcher.On("Unwatch", "o1").Return().Once()

	w := f.serve(authed("POST", "/api/orders/watch", `{"orderIds":["o1","o2"]}`))
	assert.Equal(t, http.StatusAccepted, w.Code)

	w = f.serve(authed("POST", "/api/orders/watch", `{"orderIds":[]}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = f.serve(authed("DELETE", "/api/orders/watch/o1", ""))
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestOrderQRCodeHandler(t *testing.T) {
	f := newHandlerFixture(t)
	f.qr.On("Generate", "o1").Return([]byte("\x89PNG-data"), nil).Once()
	f.qr.On("Generate", "o2").Return(nil, errors.New("encode failed")).Once()

	w := f.serve(httptest.NewRequest("GET", "/api/orders/o1/qrcode", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))

	w = f.serve(httptest.NewRequest("GET", "/api/orders/o2/qrcode", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestOffersHandler(t *testing.T) {
	f := newHandlerFixture(t)
	f.catalog.On("Offers", mock.Anything, "").Return([]domain.Product{*productA}, nil).Once()

	w := f.serve(httptest.NewRequest("GET", "/api/offers", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	var offers []domain.Product
	require.NoError(t, json.NewDecoder(w.Body).Decode(&offers))
	require.Len(t, offers, 1)
	assert.Equal(t, "A", offers[0].ID)
}

func productFormBody(t *testing.T, fields map[string]string, imageType string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, form.WriteField(k, v))
	}
	if imageType != "" {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="image"; filename="pizza.png"`)
		header.Set("Content-Type", imageType)
		part, err := form.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, form.Close())
	return &buf, form.FormDataContentType()
}

func TestCreateProductHandler(t *testing.T) {
	tests := []struct {
		name      string
		imageType string
		setupMock func(handlerFixture)
		wantCode  int
	}{
		{
			name:      "with image",
			imageType: "image/png",
			setupMock: func(f handlerFixture) {
				f.catalog.On("CreateProduct", mock.Anything, "tok", backend.ProductInput{
					Name: "Pizza", Price: "100", Discount: "10", RestaurantID: "r1",
				}, mock.MatchedBy(func(img *backend.ProductImage) bool {
					return img != nil && img.Filename == "pizza.png"
				})).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name: "without image",
			setupMock: func(f handlerFixture) {
				f.catalog.On("CreateProduct", mock.Anything, "tok", mock.AnythingOfType("backend.ProductInput"), (*backend.ProductImage)(nil)).Return(nil).Once()
			},
			wantCode: http.StatusCreated,
		},
		{
			name:      "rejected file type",
			imageType: "application/pdf",
			setupMock: func(handlerFixture) {},
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			f := newHandlerFixture(t)
			testCase.setupMock(f)

			body, contentType := productFormBody(t, map[string]string{"name": "Pizza", "price": "100", "discount": "10"}, testCase.imageType)
			req := httptest.NewRequest("POST", "/api/restaurants/r1/products", body)
			req.Header.Set("Content-Type", contentType)
			req.Header.Set("Authorization", "Bearer tok")

			w := f.serve(req)

			assert.Equal(t, testCase.wantCode, w.Code)
		})
	}
}

func TestDeleteProductHandler(t *testing.T) {
	f := newHandlerFixture(t)
	f.catalog.On("DeleteProduct", mock.Anything, "tok", "A").Return(nil).Once()

	w := f.serve(authed("DELETE", "/api/products/A", ""))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

var _ service.CartService = (*mocks.CartService)(nil)
