package domain

import (
	"errors"
	"time"
)

const EventOrderStatusChanged = "order_status_changed"

var ErrNotFound = errors.New("not found")

var knownStatuses = map[string]bool{
	"pending":   true,
	"confirmed": true,
	"preparing": true,
	"ready":     true,
	"delivered": true,
	"cancelled": true,
}

// ValidStatus reports whether s is one of the six order statuses.
func ValidStatus(s string) bool {
	return knownStatuses[s]
}

// StatusEvent is the order-events payload published by cart-svc.
// Fields cart-svc sends for other event types are ignored here.
type StatusEvent struct {
	Type      string    `json:"type"`
	Source    string    `json:"source,omitempty"`
	OrderID   string    `json:"order_id,omitempty"`
	OldStatus string    `json:"old_status,omitempty"`
	NewStatus string    `json:"new_status,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type HistoryEntry struct {
	ID        int64     `json:"id"`
	OrderID   string    `json:"order_id"`
	OldStatus string    `json:"old_status"`
	NewStatus string    `json:"new_status"`
	Source    string    `json:"source,omitempty"`
	ChangedAt time.Time `json:"changed_at"`
}

type LatestStatus struct {
	OrderID   string    `json:"order_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}
