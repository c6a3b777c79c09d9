package coupon

import (
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Registry defines case-insensitive lookup of coupon definitions.
// The registry is fixed configuration data supplied at startup; there are
// no mutation operations.
type Registry interface {
	// Lookup returns the coupon for the given code, matching
	// case-insensitively.
	Lookup(code string) (Coupon, bool)

	// Size returns the number of registered coupons.
	Size() int
}

// staticRegistry implements Registry over an in-memory table keyed by
// upper-cased code. Read-only after construction, so no locking is needed.
type staticRegistry struct {
	coupons map[string]Coupon
	logger  zerolog.Logger
}

// NewRegistry creates a registry from the given coupon definitions.
// Later duplicates of the same code win.
func NewRegistry(coupons []Coupon, logger zerolog.Logger) Registry {
	r := &staticRegistry{
		coupons: make(map[string]Coupon, len(coupons)),
		logger:  logger.With().Str("component", "coupon-registry").Logger(),
	}
	for _, c := range coupons {
		code := strings.ToUpper(strings.TrimSpace(c.Code))
		if code == "" {
			continue
		}
		c.Code = code
		r.coupons[code] = c
	}
	r.logger.Info().Int("coupon_count", len(r.coupons)).Msg("coupon registry initialised")
	return r
}

// Lookup returns the coupon for the given code, matching case-insensitively.
func (r *staticRegistry) Lookup(code string) (Coupon, bool) {
	c, ok := r.coupons[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// Size returns the number of registered coupons.
func (r *staticRegistry) Size() int {
	return len(r.coupons)
}

// DefaultCoupons returns the promotional rules the storefront ships with.
func DefaultCoupons() []Coupon {
	ramadanEnd := time.Date(2025, time.March, 30, 23, 59, 59, 0, time.UTC)
	return []Coupon{
		{
			Code:           "WELCOME10",
			Description:    "10% off your first order",
			DiscountRate:   0.10,
			MinOrderAmount: 200,
			IsActive:       true,
		},
		{
			Code:              "MANDI20",
			Description:       "20% off orders above 500, up to 150",
			DiscountRate:      0.20,
			MinOrderAmount:    500,
			MaxDiscountAmount: 150,
			IsActive:          true,
		},
		{
			Code:              "FEAST25",
			Description:       "25% off family feasts above 1000, up to 250",
			DiscountRate:      0.25,
			MinOrderAmount:    1000,
			MaxDiscountAmount: 250,
			IsActive:          true,
		},
		{
			Code:           "RAMADAN15",
			Description:    "Seasonal 15% off",
			DiscountRate:   0.15,
			MinOrderAmount: 300,
			IsActive:       false,
			ExpiresAt:      &ramadanEnd,
		},
	}
}
