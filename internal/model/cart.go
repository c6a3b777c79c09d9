package model

import (
	"fmt"
	"sort"
	"strings"
)

// Customizations captures the per-line choices made when adding a dish to the cart.
type Customizations struct {
	Size                Size       `json:"size"`
	SpiceLevel          SpiceLevel `json:"spiceLevel"`
	AddOns              []string   `json:"addOns,omitempty"`
	SpecialInstructions string     `json:"specialInstructions,omitempty"`
}

// CartItem is one purchasable unit in a cart. UnitPrice has the size delta and
// add-on prices folded in at add time. Stored items always have Quantity >= 1.
type CartItem struct {
	Key            string         `json:"key"`
	MenuItemID     string         `json:"menuItemId"`
	Name           string         `json:"name"`
	UnitPrice      float64        `json:"unitPrice"`
	Quantity       int            `json:"quantity"`
	Customizations Customizations `json:"customizations"`
}

// LineKey builds the composite key identifying a cart line. The same dish added
// with different customizations must land on distinct lines, so the key folds in
// the size, spice level and the sorted add-on names.
func LineKey(menuItemID string, c Customizations) string {
	parts := []string{menuItemID, string(c.Size), string(c.SpiceLevel)}
	if len(c.AddOns) > 0 {
		addOns := append([]string(nil), c.AddOns...)
		sort.Strings(addOns)
		parts = append(parts, strings.Join(addOns, "+"))
	}
	return strings.Join(parts, "-")
}

// Validate performs the invariant checks a stored cart item must satisfy.
func (i *CartItem) Validate() error {
	if i.MenuItemID == "" {
		return fmt.Errorf("cart item is missing a menu item id")
	}
	if i.UnitPrice < 0 {
		return fmt.Errorf("cart item %q has negative unit price %.2f", i.MenuItemID, i.UnitPrice)
	}
	if i.Quantity < 1 {
		return fmt.Errorf("cart item %q has non-positive quantity %d", i.MenuItemID, i.Quantity)
	}
	return nil
}
