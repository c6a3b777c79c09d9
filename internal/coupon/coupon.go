package coupon

import (
	"fmt"
	"time"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

// Coupon is a static promotional rule.
type Coupon struct {
	// Code is unique and matched case-insensitively.
	Code        string
	Description string

	// DiscountRate is the fraction of the eligible subtotal taken off, in [0,1].
	DiscountRate float64

	// MinOrderAmount is the pre-discount subtotal the cart must reach.
	MinOrderAmount float64

	// MaxDiscountAmount caps the absolute discount. Zero means uncapped.
	MaxDiscountAmount float64

	IsActive  bool
	ExpiresAt *time.Time
}

// Validate checks whether the coupon can grant a discount at the given instant
// and pre-discount subtotal. A nil result means the coupon applies; otherwise
// the warning carries the reason. Inactive and expired coupons report the same
// reason so callers cannot distinguish a retired code from a lapsed one.
func (c Coupon) Validate(now time.Time, subtotal float64) *model.CouponWarning {
	if !c.IsActive {
		return &model.CouponWarning{
			Code:    c.Code,
			Reason:  model.CouponExpired,
			Message: fmt.Sprintf("Coupon %s has expired", c.Code),
		}
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return &model.CouponWarning{
			Code:    c.Code,
			Reason:  model.CouponExpired,
			Message: fmt.Sprintf("Coupon %s has expired", c.Code),
		}
	}
	if subtotal < c.MinOrderAmount {
		return &model.CouponWarning{
			Code:    c.Code,
			Reason:  model.CouponMinimumNotMet,
			Message: fmt.Sprintf("Coupon %s requires a minimum order of %.0f", c.Code, c.MinOrderAmount),
		}
	}
	return nil
}

// Discount computes the raw (unrounded) discount the coupon grants on the
// given subtotal, honouring MaxDiscountAmount when set and never exceeding
// the subtotal itself.
func (c Coupon) Discount(subtotal float64) float64 {
	if subtotal <= 0 || c.DiscountRate <= 0 {
		return 0
	}
	discount := subtotal * c.DiscountRate
	if c.MaxDiscountAmount > 0 && discount > c.MaxDiscountAmount {
		discount = c.MaxDiscountAmount
	}
	if discount > subtotal {
		discount = subtotal
	}
	return discount
}
