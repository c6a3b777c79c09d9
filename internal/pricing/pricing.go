// Package pricing is the single source of truth for order totals. Every
// caller that needs a subtotal, tax, delivery charge, discount or total
// (cart display, checkout, order records) goes through Engine.Quote; the
// arithmetic is never reimplemented elsewhere.
package pricing

import (
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/coupon"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

// Item describes a line item for pricing purposes.
type Item struct {
	UnitPrice float64
	Quantity  int
}

// Config holds the pricing constants.
type Config struct {
	// TaxRate is applied to the pre-discount subtotal.
	TaxRate float64

	// DeliveryCharge is the flat fee below the free-delivery threshold.
	DeliveryCharge float64

	// FreeDeliveryThreshold is compared against the pre-discount subtotal.
	FreeDeliveryThreshold float64
}

// DefaultConfig returns the storefront's standard pricing constants.
func DefaultConfig() Config {
	return Config{
		TaxRate:               0.18,
		DeliveryCharge:        50,
		FreeDeliveryThreshold: 500,
	}
}

// Quote is a fully itemized total. All monetary fields are rounded to whole
// currency units. Warning is set when a coupon code was supplied but yielded
// no discount; the quote itself is still valid in that case.
type Quote struct {
	Subtotal       float64              `json:"subtotal"`
	Tax            float64              `json:"tax"`
	DeliveryCharge float64              `json:"deliveryCharge"`
	Discount       float64              `json:"discount"`
	Total          float64              `json:"total"`
	CouponCode     string               `json:"couponCode,omitempty"`
	Warning        *model.CouponWarning `json:"couponWarning,omitempty"`
}

// Totals converts the quote into the snapshot form stamped onto orders.
func (q Quote) Totals() model.Totals {
	return model.Totals{
		Subtotal:       q.Subtotal,
		Tax:            q.Tax,
		DeliveryCharge: q.DeliveryCharge,
		Discount:       q.Discount,
		Total:          q.Total,
	}
}

// Engine computes totals from line items and an optional coupon code.
// It holds no mutable state; all state belongs to the caller.
type Engine struct {
	registry coupon.Registry
	cfg      Config
	now      func() time.Time
	logger   zerolog.Logger
}

// NewEngine creates a pricing engine backed by the given coupon registry.
func NewEngine(registry coupon.Registry, cfg Config, logger zerolog.Logger) *Engine {
	return &Engine{
		registry: registry,
		cfg:      cfg,
		now:      time.Now,
		logger:   logger.With().Str("component", "pricing-engine").Logger(),
	}
}

// WithClock overrides the engine's clock. Intended for tests.
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// Quote computes the itemized totals for the given line items.
//
// Coupon failures (unknown code, expired, minimum not met) are non-fatal:
// the quote proceeds with a zero discount and the reason is attached as a
// warning. A negative unit price or non-positive quantity is an upstream
// invariant violation and is rejected outright rather than clamped.
func (e *Engine) Quote(items []Item, couponCode string) (Quote, error) {
	var subtotal float64
	for _, it := range items {
		if it.UnitPrice < 0 || it.Quantity < 1 {
			e.logger.Error().
				Float64("unit_price", it.UnitPrice).
				Int("quantity", it.Quantity).
				Msg("invalid line item reached pricing engine")
			return Quote{}, model.ErrInvalidLineItem
		}
		subtotal += it.UnitPrice * float64(it.Quantity)
	}

	var (
		discount float64
		warning  *model.CouponWarning
		applied  string
	)
	if couponCode != "" {
		c, ok := e.registry.Lookup(couponCode)
		if !ok {
			warning = &model.CouponWarning{
				Code:    couponCode,
				Reason:  model.CouponNotFound,
				Message: "Coupon code is not recognised",
			}
		} else if w := c.Validate(e.now(), subtotal); w != nil {
			warning = w
		} else {
			discount = c.Discount(subtotal)
			applied = c.Code
		}
		if warning != nil {
			e.logger.Debug().
				Str("coupon_code", couponCode).
				Str("reason", warning.Reason).
				Msg("coupon yielded no discount")
		}
	}

	// Tax and the delivery threshold both use the pre-discount subtotal.
	tax := subtotal * e.cfg.TaxRate
	delivery := e.cfg.DeliveryCharge
	if subtotal >= e.cfg.FreeDeliveryThreshold {
		delivery = 0
	}
	total := subtotal + tax + delivery - discount
	if total < 0 {
		total = 0
	}

	// Each output is rounded exactly once, from its raw value, so rounding
	// error never compounds through intermediate products.
	return Quote{
		Subtotal:       Round(subtotal),
		Tax:            Round(tax),
		DeliveryCharge: Round(delivery),
		Discount:       Round(discount),
		Total:          Round(total),
		CouponCode:     applied,
		Warning:        warning,
	}, nil
}

// Round rounds to the nearest whole currency unit, halves up.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}
