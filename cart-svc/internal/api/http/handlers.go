package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"bitecart/cart-svc/internal/backend"
	"bitecart/cart-svc/internal/domain"
	"bitecart/cart-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	UserIDHeader         = "X-User-ID"
	SessionInvalidHeader = "X-Session-Invalid"
	IdempotencyKeyHeader = "Idempotency-Key"

	maxUploadSize = 10 << 20
)

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

type Handler struct {
	Carts   service.CartRegistry
	Catalog service.CatalogService
	Orders  service.OrderService
	Admin   service.OrderAdminService
	Watcher service.StatusWatcher
	QR      service.QRGenerator
	// OnStatusChange is attached to every order the handler starts watching.
	OnStatusChange service.StatusChangeFunc
	Logger         *zap.Logger
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/cart/items", h.addItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{productId}/decrement", h.decrementItem).Methods("POST")
	r.HandleFunc("/api/cart/items/{productId}", h.removeItem).Methods("DELETE")

	r.HandleFunc("/api/offers", h.getOffers).Methods("GET")
	r.HandleFunc("/api/products", h.getProducts).Methods("GET")
	r.HandleFunc("/api/products/{id}", h.updateProduct).Methods("PUT")
	r.HandleFunc("/api/products/{id}", h.deleteProduct).Methods("DELETE")
	r.HandleFunc("/api/restaurants/{id}/products", h.getRestaurantProducts).Methods("GET")
	r.HandleFunc("/api/restaurants/{id}/products", h.createProduct).Methods("POST")

	r.HandleFunc("/api/orders", h.submitOrder).Methods("POST")
	r.HandleFunc("/api/orders/watch", h.watchOrders).Methods("POST")
	r.HandleFunc("/api/orders/watch/{id}", h.unwatchOrder).Methods("DELETE")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.getOrderStatus).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateOrderStatus).Methods("PUT")
	r.HandleFunc("/api/restaurants/{id}/orders", h.getRestaurantOrders).Methods("GET")
	r.HandleFunc("/api/users/{id}/orders", h.getUserOrders).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "cart-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cart(w, r)
	if !ok {
		return
	}
	if _, err := cart.Refresh(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	h.writePriced(w, r, cart, http.StatusOK)
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cart(w, r)
	if !ok {
		return
	}
	if err := cart.Clear(r.Context()); err != nil {
		h.writeError(w, err)
		return
	}
	h.writePriced(w, r, cart, http.StatusOK)
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cart(w, r)
	if !ok {
		return
	}

	var payload struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	if err := cart.AddOrIncrement(r.Context(), payload.ProductID, payload.Quantity); err != nil {
		h.writeError(w, err)
		return
	}
	h.writePriced(w, r, cart, http.StatusOK)
}

func (h *Handler) decrementItem(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cart(w, r)
	if !ok {
		return
	}

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil && !errors.Is(err, io.EOF) {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if payload.Quantity == 0 {
		payload.Quantity = 1
	}

	if err := cart.Decrement(r.Context(), mux.Vars(r)["productId"], payload.Quantity); err != nil {
		h.writeError(w, err)
		return
	}
	h.writePriced(w, r, cart, http.StatusOK)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cart(w, r)
	if !ok {
		return
	}
	if err := cart.Remove(r.Context(), mux.Vars(r)["productId"]); err != nil {
		h.writeError(w, err)
		return
	}
	h.writePriced(w, r, cart, http.StatusOK)
}

func (h *Handler) getOffers(w http.ResponseWriter, r *http.Request) {
	offers, err := h.Catalog.Offers(r.Context(), bearerToken(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, offers)
}

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.Products(r.Context(), bearerToken(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) getRestaurantProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Catalog.RestaurantProducts(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *Handler) createProduct(w http.ResponseWriter, r *http.Request) {
	input, image, closeImage, ok := h.productForm(w, r)
	if !ok {
		return
	}
	defer closeImage()
	input.RestaurantID = mux.Vars(r)["id"]

	if err := h.Catalog.CreateProduct(r.Context(), bearerToken(r), input, image); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "Product created"})
}

func (h *Handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	input, image, closeImage, ok := h.productForm(w, r)
	if !ok {
		return
	}
	defer closeImage()

	if err := h.Catalog.UpdateProduct(r.Context(), bearerToken(r), mux.Vars(r)["id"], input, image); err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Product updated"})
}

func (h *Handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteProduct(r.Context(), bearerToken(r), mux.Vars(r)["id"]); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// productForm reads the multipart admin form. The image part is optional.
func (h *Handler) productForm(w http.ResponseWriter, r *http.Request) (backend.ProductInput, *backend.ProductImage, func(), bool) {
	noop := func() {}
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid product form")
		return backend.ProductInput{}, nil, noop, false
	}

	input := backend.ProductInput{
		Name:         r.FormValue("name"),
		Description:  r.FormValue("description"),
		Price:        r.FormValue("price"),
		Discount:     r.FormValue("discount"),
		RestaurantID: r.FormValue("clientId"),
	}

	file, header, err := r.FormFile("image")
	if errors.Is(err, http.ErrMissingFile) {
		return input, nil, noop, true
	}
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Error retrieving the file")
		return backend.ProductInput{}, nil, noop, false
	}
	if !allowedImageTypes[header.Header.Get("Content-Type")] {
		file.Close()
		writeMessage(w, http.StatusBadRequest, "Invalid file type. Only JPEG, PNG, GIF, WebP allowed")
		return backend.ProductInput{}, nil, noop, false
	}
	return input, &backend.ProductImage{Filename: header.Filename, Content: file}, func() { file.Close() }, true
}

type orderResponse struct {
	Order       *domain.Order `json:"order"`
	CartCleared bool          `json:"cart_cleared"`
	Warning     string        `json:"warning,omitempty"`
}

func (h *Handler) submitOrder(w http.ResponseWriter, r *http.Request) {
	cart, ok := h.cart(w, r)
	if !ok {
		return
	}

	var info domain.DeliveryInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if info.PaymentMethod == "" {
		info.PaymentMethod = domain.PaymentCash
	}

	order, err := h.Orders.Submit(r.Context(), cart, info, strings.TrimSpace(r.Header.Get(IdempotencyKeyHeader)))
	if order == nil {
		h.writeError(w, err)
		return
	}

	resp := orderResponse{Order: order, CartCleared: true}
	if err != nil {
		if !errors.Is(err, domain.ErrCartNotCleared) {
			h.writeError(w, err)
			return
		}
		resp.CartCleared = false
		resp.Warning = err.Error()
	}

	if order.ID != "" {
		// Baseline entry so the order has a history before its first change.
		if h.OnStatusChange != nil {
			h.OnStatusChange(order.ID, "", order.Status)
		}
		if h.Watcher != nil {
			h.Watcher.WatchKnown(order.ID, order.Status, h.OnStatusChange)
		}
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) watchOrders(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		OrderIDs []string `json:"orderIds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if len(payload.OrderIDs) == 0 {
		writeMessage(w, http.StatusBadRequest, "Missing orderIds")
		return
	}

	h.Watcher.Watch(payload.OrderIDs, h.OnStatusChange)
	writeJSON(w, http.StatusAccepted, map[string]interface{}{"watching": payload.OrderIDs})
}

func (h *Handler) unwatchOrder(w http.ResponseWriter, r *http.Request) {
	h.Watcher.Unwatch(mux.Vars(r)["id"])
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	png, err := h.QR.Generate(mux.Vars(r)["id"])
	if err != nil {
		h.logger().Warn("qr code generation failed", zap.String("order_id", mux.Vars(r)["id"]), zap.Error(err))
		writeMessage(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

func (h *Handler) getOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	status, err := h.Admin.Status(r.Context(), orderID)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"order_id": orderID,
		"status":   status,
	})
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Status domain.OrderStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}

	orderID := mux.Vars(r)["id"]
	previous, err := h.Admin.UpdateStatus(r.Context(), bearerToken(r), orderID, payload.Status)
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"order_id":        orderID,
		"previous_status": previous,
		"status":          payload.Status,
	})
}

func (h *Handler) getRestaurantOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Admin.RestaurantOrders(r.Context(), bearerToken(r), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) getUserOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Admin.UserOrders(r.Context(), bearerToken(r), mux.Vars(r)["id"])
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// cart resolves the caller's cart; it writes 401 and returns false when the
// request carries no session.
func (h *Handler) cart(w http.ResponseWriter, r *http.Request) (service.CartService, bool) {
	session := domain.Session{
		UserID: strings.TrimSpace(r.Header.Get(UserIDHeader)),
		Token:  bearerToken(r),
	}
	if session.UserID == "" || session.Token == "" {
		writeMessage(w, http.StatusUnauthorized, "Missing session")
		return nil, false
	}
	return h.Carts.Cart(session), true
}

func (h *Handler) writePriced(w http.ResponseWriter, r *http.Request, cart service.CartService, code int) {
	priced, err := cart.Priced(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	writeJSON(w, code, priced)
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var (
		validation *domain.ValidationError
		conflict   *domain.RestaurantConflictError
		transition *domain.TransitionError
		rejected   *domain.ServerRejected
	)

	body := map[string]interface{}{"error": err.Error()}
	code := http.StatusInternalServerError

	switch {
	case errors.As(err, &validation):
		code = http.StatusBadRequest
		body["field"] = validation.Field
	case errors.As(err, &conflict):
		code = http.StatusConflict
		body["cart_restaurant_id"] = conflict.CartRestaurantID
		body["product_restaurant_id"] = conflict.ProductRestaurantID
	case errors.As(err, &transition):
		code = http.StatusConflict
		body["from"] = transition.From
		body["to"] = transition.To
	case errors.Is(err, domain.ErrSubmissionInProgress):
		code = http.StatusConflict
	case domain.ShouldInvalidateSession(err):
		code = http.StatusBadGateway
		w.Header().Set(SessionInvalidHeader, "true")
	case errors.As(err, &rejected):
		code = rejected.Status
		if code < http.StatusBadRequest {
			code = http.StatusUnprocessableEntity
		}
	}

	if code >= http.StatusInternalServerError {
		h.logger().Error("request failed", zap.Int("status", code), zap.Error(err))
	}
	writeJSON(w, code, body)
}

func (h *Handler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

func bearerToken(r *http.Request) string {
	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(auth) > len("Bearer ") && strings.EqualFold(auth[:len("Bearer ")], "Bearer ") {
		return strings.TrimSpace(auth[len("Bearer "):])
	}
	return ""
}

func writeMessage(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
