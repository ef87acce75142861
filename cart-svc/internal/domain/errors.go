package domain

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrCartNotCleared       = errors.New("order placed but cart was not cleared")
	ErrSubmissionInProgress = errors.New("an identical order submission is already in progress")
)

// ValidationError is raised before anything is sent to the backend.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// NetworkError means the request never produced an HTTP response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("%s: network error: %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// ServerRejected carries a non-2xx backend response.
type ServerRejected struct {
	Status  int
	Message string
}

func (e *ServerRejected) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend rejected request: %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("backend rejected request: %d %s", e.Status, e.Message)
}

type RestaurantConflictError struct {
	CartRestaurantID    string
	ProductRestaurantID string
}

func (e *RestaurantConflictError) Error() string {
	if e.CartRestaurantID == "" && e.ProductRestaurantID == "" {
		return "cart already holds products from another restaurant"
	}
	return fmt.Sprintf("cart holds products from restaurant %s, product belongs to %s",
		e.CartRestaurantID, e.ProductRestaurantID)
}

type TransitionError struct {
	From OrderStatus
	To   OrderStatus
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal order status transition %s -> %s", e.From, e.To)
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func IsRestaurantConflict(err error) bool {
	var c *RestaurantConflictError
	return errors.As(err, &c)
}

// ShouldInvalidateSession lets the UI tell a dead backend apart from an
// ordinary rejection.
func ShouldInvalidateSession(err error) bool {
	var netErr *NetworkError
	if errors.As(err, &netErr) {
		return true
	}
	var rejected *ServerRejected
	return errors.As(err, &rejected) && rejected.Status >= http.StatusInternalServerError
}
