package model

// MenuQuery carries the parsed menu-listing query parameters. Values are
// schema-validated before they reach the catalogue.
type MenuQuery struct {
	Category   string  `json:"category" validate:"omitempty,oneof=mandi starters breads desserts beverages"`
	Search     string  `json:"search" validate:"omitempty,max=80"`
	Vegetarian *bool   `json:"vegetarian"`
	Spice      string  `json:"spice" validate:"omitempty,oneof=mild medium hot"`
	MaxPrice   float64 `json:"maxPrice" validate:"omitempty,gte=0"`
	Limit      int     `json:"limit" validate:"omitempty,gte=1,lte=100"`
	Offset     int     `json:"offset" validate:"omitempty,gte=0"`
}

// AddItemRequest is the payload for adding a dish to a cart.
type AddItemRequest struct {
	MenuItemID          string   `json:"menuItemId" validate:"required"`
	Quantity            int      `json:"quantity" validate:"required,gte=1,lte=10"`
	Size                string   `json:"size" validate:"omitempty,oneof=Quarter Half Full"`
	SpiceLevel          string   `json:"spiceLevel" validate:"omitempty,oneof=mild medium hot"`
	AddOns              []string `json:"addOns" validate:"omitempty,dive,min=1,max=60"`
	SpecialInstructions string   `json:"specialInstructions" validate:"omitempty,max=200"`
}

// UpdateQuantityRequest is the payload for changing a cart line's quantity.
// Zero removes the line.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0,lte=10"`
}

// ApplyCouponRequest is the payload for applying a coupon code to a cart.
type ApplyCouponRequest struct {
	Code string `json:"code" validate:"required,min=3,max=20"`
}

// UpdateStatusRequest is the payload for advancing an order's status.
type UpdateStatusRequest struct {
	// Status is checked against the known lifecycle states via ValidStatus
	// after schema validation.
	Status OrderStatus `json:"status" validate:"required"`
}
