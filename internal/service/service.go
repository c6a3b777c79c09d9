package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/cart"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/pricing"
)

// MenuService defines operations for menu browsing.
type MenuService interface {
	// List retrieves menu items matching the query, plus the total match count.
	List(ctx context.Context, query model.MenuQuery) ([]model.MenuItem, int, error)

	// GetByID retrieves a single menu item. Returns nil when unknown.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)
}

// CartView is a cart snapshot together with its freshly computed totals.
type CartView struct {
	Cart      *cart.Cart    `json:"cart"`
	Pricing   pricing.Quote `json:"pricing"`
	ItemCount int           `json:"itemCount"`
}

// CartService defines operations for session cart management.
type CartService interface {
	// Create makes a new empty cart.
	Create(ctx context.Context) (*CartView, error)

	// Get returns the cart and its current totals.
	Get(ctx context.Context, cartID string) (*CartView, error)

	// AddItem resolves the dish, folds size and add-on prices into the unit
	// price, and adds the line, merging with an existing identical line.
	AddItem(ctx context.Context, cartID string, req model.AddItemRequest) (*CartView, error)

	// UpdateQuantity changes a line's quantity; zero or less removes the line.
	UpdateQuantity(ctx context.Context, cartID, lineKey string, quantity int) (*CartView, error)

	// RemoveItem deletes a line. Missing keys are a no-op.
	RemoveItem(ctx context.Context, cartID, lineKey string) (*CartView, error)

	// ApplyCoupon stores the code on the cart. Whether a discount is granted
	// is decided by the pricing engine and reflected in the returned view.
	ApplyCoupon(ctx context.Context, cartID, code string) (*CartView, error)

	// RemoveCoupon clears the applied coupon.
	RemoveCoupon(ctx context.Context, cartID string) (*CartView, error)
}

// OrderService defines checkout and order lifecycle operations.
type OrderService interface {
	// Checkout assembles an order from the cart and checkout inputs, stores
	// it, and clears the cart. Coupon failures surface as a warning on the
	// response, never as an error.
	Checkout(ctx context.Context, req model.CheckoutRequest) (*model.CheckoutResponse, error)

	// GetByID retrieves an order. Returns nil when unknown.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// List returns all orders, newest first.
	List(ctx context.Context) ([]model.Order, error)

	// AdvanceStatus moves the order one lifecycle step forward.
	AdvanceStatus(ctx context.Context, id uuid.UUID, to model.OrderStatus) (*model.Order, error)
}
