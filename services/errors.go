package services

import (
	"errors"
	"fmt"
)

// ErrEmptyCart rejects a checkout with no cart rows.
var ErrEmptyCart = errors.New("Cart is empty")

var ErrInvalidCredentials = errors.New("invalid email or password")

// ValidationError marks missing or malformed input (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}

// NotFoundError marks an absent entity or one not owned by the caller
// (HTTP 404).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func notFound(resource string) *NotFoundError {
	return &NotFoundError{Message: resource + " not found"}
}

// InsufficientStockError reports a requested quantity above the
// available stock (HTTP 400).
type InsufficientStockError struct {
	ProductName string
	Available   int
}

func (e *InsufficientStockError) Error() string {
	if e.ProductName == "" {
		return fmt.Sprintf("Insufficient stock. Available: %d", e.Available)
	}
	return fmt.Sprintf("Insufficient stock for %s. Available: %d", e.ProductName, e.Available)
}
