package domain

import "errors"

var (
	// ErrNotFound is a distinct outcome for missing products and orders,
	// routed to a not-found presentation rather than treated as a failure.
	ErrNotFound = errors.New("not found")

	ErrProductIDRequired     = errors.New("product id is required")
	ErrQuantityInvalid       = errors.New("quantity must be greater than zero")
	ErrUnitInvalid           = errors.New("unit must be one of litre, ml, kg, g")
	ErrPriceNegative         = errors.New("price must be non-negative")
	ErrCurrencyMismatch      = errors.New("currency mismatch")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrShippingIncomplete    = errors.New("shipping details are incomplete")
	ErrPaymentMethodInvalid  = errors.New("payment method must be one of cod, upi, qr")
	ErrPaymentMethodRequired = errors.New("payment method is required")
)
