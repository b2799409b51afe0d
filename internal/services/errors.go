package services

import (
	"errors"
	"fmt"
)

// Typed failures surfaced by the fulfillment core. Handlers map them to HTTP
// statuses with errors.Is / errors.As; they are never downgraded to generic
// failures on the way out.
var (
	ErrNotFound         = errors.New("not found")
	ErrForbidden        = errors.New("forbidden")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrCouponExpired    = errors.New("coupon expired")
	ErrInvalidSignature = errors.New("invalid payment signature")
	ErrGateway          = errors.New("payment gateway error")
)

// InsufficientStockError reports a quantity that exceeds available stock,
// carrying enough context to render a precise user message.
type InsufficientStockError struct {
	ProductName string
	Requested   int
	Available   int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %s (requested: %d, available: %d)",
		e.ProductName, e.Requested, e.Available)
}
