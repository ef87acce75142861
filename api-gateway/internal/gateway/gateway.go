package gateway

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Config struct {
	CartSvcURL    string
	HistorySvcURL string
	// BackendURL receives every other /api/* call with the /api prefix removed.
	BackendURL string
}

type Gateway struct {
	config Config
	client HTTPClient
	logger *zap.Logger
}

func NewGateway(config Config, client HTTPClient, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{
		config: config,
		client: client,
		logger: logger,
	}
}

func (g *Gateway) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]string{
		"status":  "healthy",
		"service": "api-gateway",
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (g *Gateway) ProxyRequest(w http.ResponseWriter, r *http.Request, targetURL string) {
	g.logger.Debug("proxy", zap.String("method", r.Method), zap.String("path", r.URL.Path), zap.String("target", targetURL))

	url := strings.TrimRight(targetURL, "/") + r.URL.Path
	if r.URL.RawQuery != "" {
		url += "?" + r.URL.RawQuery
	}

	req, err := http.NewRequestWithContext(r.Context(), r.Method, url, r.Body)
	if err != nil {
		g.logger.Error("failed to create proxy request", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	for k, v := range r.Header {
		req.Header[k] = v
	}

	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("upstream unreachable", zap.String("target", targetURL), zap.Error(err))
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}
	defer resp.Body.Close()

	for k, v := range resp.Header {
		w.Header()[k] = v
	}
	w.WriteHeader(resp.StatusCode)

	if _, err := io.Copy(w, resp.Body); err != nil {
		g.logger.Warn("failed to copy response", zap.Error(err))
	}
}

// Route picks the upstream for an /api path. ok is false for non-API paths.
func (g *Gateway) Route(method, path string) (target, upstreamPath string, ok bool) {
	if path != "/api" && !strings.HasPrefix(path, "/api/") {
		return "", "", false
	}
	parts := strings.Split(strings.Trim(path, "/"), "/")

	// History reads go to history-svc. Current status is read through cart-svc,
	// which asks the backend.
	if len(parts) >= 4 && parts[1] == "orders" && parts[3] == "history" && method == http.MethodGet {
		return g.config.HistorySvcURL, path, true
	}

	switch {
	case len(parts) >= 2 && (parts[1] == "cart" || parts[1] == "orders" || parts[1] == "offers" || parts[1] == "products"):
		return g.config.CartSvcURL, path, true
	case len(parts) == 4 && parts[1] == "restaurants" && (parts[3] == "orders" || parts[3] == "products"):
		return g.config.CartSvcURL, path, true
	case len(parts) == 4 && parts[1] == "users" && parts[3] == "orders":
		return g.config.CartSvcURL, path, true
	}

	upstreamPath = strings.TrimPrefix(path, "/api")
	if upstreamPath == "" {
		upstreamPath = "/"
	}
	return g.config.BackendURL, upstreamPath, true
}

func (g *Gateway) RouteHandler(w http.ResponseWriter, r *http.Request) {
	target, upstreamPath, ok := g.Route(r.Method, r.URL.Path)
	if !ok || target == "" {
		g.logger.Info("unmatched route", zap.String("method", r.Method), zap.String("path", r.URL.Path))
		http.Error(w, "route not found", http.StatusNotFound)
		return
	}
	r.URL.Path = upstreamPath
	g.ProxyRequest(w, r, target)
}

func (g *Gateway) SetupRoutes() http.Handler {
	r := mux.NewRouter()
	r.HandleFunc("/health", g.HealthCheck).Methods("GET")
	r.PathPrefix("/").HandlerFunc(g.RouteHandler)
	return r
}
