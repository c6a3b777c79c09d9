// Package store provides the injected key-value persistence shim for
// finalized orders. Implementations make no transactional guarantees; an
// order is an opaque snapshot keyed by its id.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

// OrderStore defines the order persistence boundary. It is injected rather
// than reached through package-level state so the checkout path is testable
// without process-wide singletons.
type OrderStore interface {
	// Put stores the order snapshot, replacing any existing entry with the
	// same id.
	Put(ctx context.Context, o *model.Order) error

	// Get retrieves an order by id. Returns nil when the id is unknown.
	Get(ctx context.Context, id uuid.UUID) (*model.Order, error)

	// List returns all stored orders, newest first.
	List(ctx context.Context) ([]model.Order, error)
}

// copyOrder deep-copies an order so callers can never reach the stored
// snapshot through aliased slices.
func copyOrder(o *model.Order) *model.Order {
	if o == nil {
		return nil
	}
	clone := *o
	clone.Items = make([]model.CartItem, len(o.Items))
	copy(clone.Items, o.Items)
	for i := range clone.Items {
		clone.Items[i].Customizations.AddOns = append([]string(nil), o.Items[i].Customizations.AddOns...)
	}
	clone.StatusHistory = append([]model.StatusChange(nil), o.StatusHistory...)
	return &clone
}
