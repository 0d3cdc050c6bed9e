package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OrderStatus is assigned at creation or by back-office convention.
// This core never transitions an order between statuses.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
	OrderStatusCancelled  OrderStatus = "Cancelled"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "cod"
	PaymentUPI            PaymentMethod = "upi"
	PaymentQR             PaymentMethod = "qr"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	if s == "" {
		return "", ErrPaymentMethodRequired
	}
	switch PaymentMethod(s) {
	case PaymentCashOnDelivery, PaymentUPI, PaymentQR:
		return PaymentMethod(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrPaymentMethodInvalid, s)
}

type ShippingDetails struct {
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
	Street   string `json:"street"`
	City     string `json:"city"`
	State    string `json:"state"`
	Pincode  string `json:"pincode"`
}

func (s ShippingDetails) Validate() error {
	if s.FullName == "" || s.Phone == "" || s.Street == "" ||
		s.City == "" || s.State == "" || s.Pincode == "" {
		return ErrShippingIncomplete
	}
	return nil
}

// Order is an immutable snapshot of a checked-out cart.
type Order struct {
	ID              uuid.UUID
	CreatedAt       time.Time
	Status          OrderStatus
	Items           []CartLine
	Total           Money
	ShippingDetails ShippingDetails
	PaymentMethod   PaymentMethod
}
