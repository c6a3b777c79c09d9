// Package cart owns the mutable line-item collection for one client session.
// Mutations are synchronous and side-effect-free; coupon codes are stored
// optimistically and only validated when totals are computed through the
// pricing engine.
package cart

import (
	"time"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/pricing"
)

// Cart is the session-local collection of line items plus an optional
// applied coupon code.
type Cart struct {
	ID         string           `json:"id"`
	Items      []model.CartItem `json:"items"`
	CouponCode string           `json:"couponCode,omitempty"`
	CreatedAt  time.Time        `json:"createdAt"`
	UpdatedAt  time.Time        `json:"updatedAt"`
}

// New creates an empty cart.
func New(id string, now time.Time) *Cart {
	return &Cart{ID: id, CreatedAt: now, UpdatedAt: now}
}

// AddItem appends a line item, merging quantities when a line with the same
// composite key already exists. The incoming quantity must be at least 1.
func (c *Cart) AddItem(item model.CartItem) error {
	if err := item.Validate(); err != nil {
		return model.ErrInvalidLineItem
	}
	if item.Key == "" {
		item.Key = model.LineKey(item.MenuItemID, item.Customizations)
	}
	for i := range c.Items {
		if c.Items[i].Key == item.Key {
			c.Items[i].Quantity += item.Quantity
			return nil
		}
	}
	c.Items = append(c.Items, item)
	return nil
}

// RemoveItem removes the line with the given key. Missing keys are a no-op.
func (c *Cart) RemoveItem(key string) {
	for i := range c.Items {
		if c.Items[i].Key == key {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the quantity for the line with the given key. A
// non-positive quantity removes the line; the cart never stores quantity <= 0.
// Missing keys are a no-op.
func (c *Cart) UpdateQuantity(key string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(key)
		return
	}
	for i := range c.Items {
		if c.Items[i].Key == key {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

// ApplyCoupon stores the code as the active coupon candidate. The code is not
// validated here; the pricing engine decides at compute time whether a
// discount is actually granted. Applying a new code replaces the previous one.
func (c *Cart) ApplyCoupon(code string) {
	c.CouponCode = code
}

// RemoveCoupon clears the active coupon.
func (c *Cart) RemoveCoupon() {
	c.CouponCode = ""
}

// Clear empties the cart and drops the coupon. Used after a successful
// order submission.
func (c *Cart) Clear() {
	c.Items = nil
	c.CouponCode = ""
}

// ItemCount returns the total unit count across all lines.
func (c *Cart) ItemCount() int {
	var n int
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

// IsEmpty reports whether the cart holds no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// PricingItems converts the cart lines into pricing engine inputs.
func (c *Cart) PricingItems() []pricing.Item {
	items := make([]pricing.Item, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, pricing.Item{UnitPrice: it.UnitPrice, Quantity: it.Quantity})
	}
	return items
}

// Quote computes the cart's derived totals through the pricing engine.
// Results are always computed from current state, never cached.
func (c *Cart) Quote(engine *pricing.Engine) (pricing.Quote, error) {
	return engine.Quote(c.PricingItems(), c.CouponCode)
}

// Clone returns a deep copy of the cart. Mutating the original afterwards
// does not affect the copy.
func (c *Cart) Clone() *Cart {
	clone := *c
	clone.Items = CopyItems(c.Items)
	return &clone
}

// CopyItems deep-copies a line item slice, including add-on lists.
func CopyItems(items []model.CartItem) []model.CartItem {
	if items == nil {
		return nil
	}
	out := make([]model.CartItem, len(items))
	copy(out, items)
	for i := range out {
		out[i].Customizations.AddOns = append([]string(nil), items[i].Customizations.AddOns...)
	}
	return out
}
