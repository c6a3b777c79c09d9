package model

import (
	"fmt"
	"strings"
)

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON          = "INVALID_JSON"
	ErrCodeValidationFailed     = "VALIDATION_FAILED"
	ErrCodeEmptyCart            = "EMPTY_CART"
	ErrCodeItemNotFound         = "ITEM_NOT_FOUND"
	ErrCodeItemUnavailable      = "ITEM_UNAVAILABLE"
	ErrCodeInvalidCustomization = "INVALID_CUSTOMIZATION"
	ErrCodeInvalidQuantity      = "INVALID_QUANTITY"
	ErrCodeMinimumOrderNotMet   = "MINIMUM_ORDER_NOT_MET"
	ErrCodeInvalidLineItem      = "INVALID_LINE_ITEM"
	ErrCodeCartNotFound         = "CART_NOT_FOUND"
	ErrCodeOrderNotFound        = "ORDER_NOT_FOUND"
	ErrCodeInvalidTransition    = "INVALID_STATUS_TRANSITION"
	ErrCodeOrderRejected        = "ORDER_REJECTED"
	ErrCodeInternalError        = "INTERNAL_ERROR"
)

// DomainError is an error with a stable machine-readable code.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// Common domain errors
var (
	ErrEmptyCart         = NewDomainError(ErrCodeEmptyCart, "Cart must contain at least one item")
	ErrInvalidLineItem   = NewDomainError(ErrCodeInvalidLineItem, "Line item has a negative price or non-positive quantity")
	ErrCartNotFound      = NewDomainError(ErrCodeCartNotFound, "Cart not found")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrInvalidTransition = NewDomainError(ErrCodeInvalidTransition, "Order status can only move one step forward")
	ErrOrderRejected     = NewDomainError(ErrCodeOrderRejected, "Order could not be placed, please retry")
)

// FieldError attributes a validation failure to a single field.
type FieldError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrors collects every failure found while validating a checkout so
// the caller can render the complete list rather than one error at a time.
type ValidationErrors struct {
	Errors []FieldError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	if len(e.Errors) == 0 {
		return "validation failed"
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return strings.Join(msgs, "; ")
}

// Add appends a field error to the collection.
func (e *ValidationErrors) Add(field, code, message string) {
	e.Errors = append(e.Errors, FieldError{Field: field, Code: code, Message: message})
}

// Merge appends all errors from another collection.
func (e *ValidationErrors) Merge(other *ValidationErrors) {
	if other == nil {
		return
	}
	e.Errors = append(e.Errors, other.Errors...)
}

// HasErrors reports whether any failure was recorded.
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Errors) > 0
}

// Coupon warning reasons. Coupon failures never block checkout; the order
// proceeds without a discount and the reason is surfaced to the caller.
const (
	CouponNotFound      = "COUPON_NOT_FOUND"
	CouponExpired       = "COUPON_EXPIRED"
	CouponMinimumNotMet = "COUPON_MINIMUM_NOT_MET"
)

// CouponWarning describes why an applied coupon yielded no discount.
type CouponWarning struct {
	Code    string `json:"code"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}
