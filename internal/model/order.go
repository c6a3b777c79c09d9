package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus enumerates the order lifecycle states in their forward order.
type OrderStatus string

const (
	StatusConfirmed OrderStatus = "confirmed"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusDelivered OrderStatus = "delivered"
)

// statusRank gives each status its position in the lifecycle. Transitions are
// only allowed to the immediately following status.
var statusRank = map[OrderStatus]int{
	StatusConfirmed: 0,
	StatusPreparing: 1,
	StatusReady:     2,
	StatusDelivered: 3,
}

// ValidStatus reports whether the value is a known order status.
func ValidStatus(s OrderStatus) bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransition reports whether an order may move from one status to another.
func CanTransition(from, to OrderStatus) bool {
	fromRank, okFrom := statusRank[from]
	toRank, okTo := statusRank[to]
	return okFrom && okTo && toRank == fromRank+1
}

// CustomerInfo holds the contact details collected at checkout.
type CustomerInfo struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Phone string `json:"phone" validate:"required,min=10,max=15,e164|numeric"`
	Email string `json:"email" validate:"required,email"`
}

// DeliveryInfo holds the delivery address and preferences.
type DeliveryInfo struct {
	Address      string `json:"address" validate:"required,min=10,max=300"`
	City         string `json:"city" validate:"required,min=2,max=80"`
	PostalCode   string `json:"postalCode" validate:"required,min=4,max=10"`
	Instructions string `json:"instructions,omitempty" validate:"max=300"`
}

// PaymentInfo records the chosen payment method. No gateway is integrated;
// the method is recorded on the order as-is.
type PaymentInfo struct {
	Method string `json:"method" validate:"required,oneof=cash card upi"`
}

// Totals is the itemized pricing snapshot stamped onto an order.
type Totals struct {
	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	DeliveryCharge float64 `json:"deliveryCharge"`
	Discount       float64 `json:"discount"`
	Total          float64 `json:"total"`
}

// StatusChange records one lifecycle transition and when it happened.
type StatusChange struct {
	Status OrderStatus `json:"status"`
	At     time.Time   `json:"at"`
}

// Order is the immutable snapshot produced at checkout. Only Status and
// StatusHistory change after creation; items and totals never do.
type Order struct {
	ID            uuid.UUID      `json:"id"`
	Number        string         `json:"number"`
	Items         []CartItem     `json:"items"`
	CouponCode    string         `json:"couponCode,omitempty"`
	Customer      CustomerInfo   `json:"customer"`
	Delivery      DeliveryInfo   `json:"delivery"`
	Payment       PaymentInfo    `json:"payment"`
	Totals        Totals         `json:"totals"`
	Status        OrderStatus    `json:"status"`
	StatusHistory []StatusChange `json:"statusHistory"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// CheckoutRequest is the payload for creating an order from a cart. The
// nested sections are excluded from request-level validation so that their
// field errors are collected during assembly together with the item and
// minimum-order checks, instead of failing the request one layer earlier.
type CheckoutRequest struct {
	CartID   string       `json:"cartId" validate:"required,uuid4"`
	Customer CustomerInfo `json:"customer" validate:"-"`
	Delivery DeliveryInfo `json:"delivery" validate:"-"`
	Payment  PaymentInfo  `json:"payment" validate:"-"`
}

// CheckoutResponse carries the created order plus any non-fatal coupon warning.
type CheckoutResponse struct {
	Order         *Order         `json:"order"`
	CouponWarning *CouponWarning `json:"couponWarning,omitempty"`
}
