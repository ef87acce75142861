package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"bitecart/history-svc/internal/domain"
	"bitecart/history-svc/internal/service"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

type Handler struct {
	History service.HistoryInterface
	Logger  *zap.Logger
}

func NewHandler(svc service.HistoryInterface, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{History: svc, Logger: logger}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}).Methods("GET")
	r.HandleFunc("/api/orders/{id}/history", h.getHistory).Methods("GET")
	r.HandleFunc("/api/orders/{id}/history/latest", h.getStatus).Methods("GET")
}

func (h *Handler) getHistory(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	entries, err := h.History.History(r.Context(), orderID)
	if err != nil {
		h.writeError(w, orderID, err)
		return
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) getStatus(w http.ResponseWriter, r *http.Request) {
	orderID := mux.Vars(r)["id"]
	latest, err := h.History.Status(r.Context(), orderID)
	if err != nil {
		h.writeError(w, orderID, err)
		return
	}
	writeJSON(w, http.StatusOK, latest)
}

func (h *Handler) writeError(w http.ResponseWriter, orderID string, err error) {
	switch {
	case errors.Is(err, service.ErrMissingOrderID):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no status recorded for order"})
	default:
		h.Logger.Error("history lookup failed", zap.String("order_id", orderID), zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(v)
}
