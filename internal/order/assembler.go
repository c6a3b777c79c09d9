// Package order builds immutable order snapshots from validated carts and
// manages their lifecycle transitions.
package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/cart"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/catalog"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/pricing"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/validate"
)

const (
	// MaxQuantityPerLine bounds how many units of one line can be ordered.
	MaxQuantityPerLine = 10

	// maxInstructionLength bounds the free-text special instructions.
	maxInstructionLength = 200
)

// checkoutBundle groups the checkout sections for schema validation so that
// failures report section-qualified fields like "customer.email".
type checkoutBundle struct {
	Customer model.CustomerInfo `json:"customer"`
	Delivery model.DeliveryInfo `json:"delivery"`
	Payment  model.PaymentInfo  `json:"payment"`
}

// Assembler validates a cart plus the checkout input bundle and produces an
// immutable Order snapshot with totals computed exactly once.
type Assembler struct {
	catalog   catalog.Repository
	engine    *pricing.Engine
	validator *validate.Validator
	minOrder  float64
	now       func() time.Time
	logger    zerolog.Logger
}

// NewAssembler creates an order assembler.
func NewAssembler(
	cat catalog.Repository,
	engine *pricing.Engine,
	validator *validate.Validator,
	minOrder float64,
	logger zerolog.Logger,
) *Assembler {
	return &Assembler{
		catalog:   cat,
		engine:    engine,
		validator: validator,
		minOrder:  minOrder,
		now:       time.Now,
		logger:    logger.With().Str("component", "order-assembler").Logger(),
	}
}

// WithClock overrides the assembler's clock. Intended for tests.
func (a *Assembler) WithClock(now func() time.Time) *Assembler {
	a.now = now
	return a
}

// Assemble validates the cart and checkout inputs and returns a finalized
// order. Validation failures are collected and returned together so the
// caller can render the complete list. A coupon that yields no discount is
// reported as a warning next to the successfully assembled order, never as
// an error.
func (a *Assembler) Assemble(
	ctx context.Context,
	c *cart.Cart,
	customer model.CustomerInfo,
	delivery model.DeliveryInfo,
	payment model.PaymentInfo,
) (*model.Order, *model.CouponWarning, error) {
	if c == nil || c.IsEmpty() {
		return nil, nil, model.ErrEmptyCart
	}

	verrs := &model.ValidationErrors{}
	a.validateItems(ctx, c, verrs)

	quote, err := c.Quote(a.engine)
	if err != nil {
		return nil, nil, err
	}
	if quote.Subtotal < a.minOrder {
		verrs.Add("cart", model.ErrCodeMinimumOrderNotMet,
			fmt.Sprintf("order subtotal %.0f is below the minimum of %.0f", quote.Subtotal, a.minOrder))
	}

	if fe := a.validator.Struct(checkoutBundle{customer, delivery, payment}); fe != nil {
		verrs.Merge(fe)
	}

	if verrs.HasErrors() {
		a.logger.Debug().Int("error_count", len(verrs.Errors)).Msg("checkout validation failed")
		return nil, nil, verrs
	}

	now := a.now()
	id := uuid.New()
	o := &model.Order{
		ID:            id,
		Number:        Number(now, id),
		Items:         cart.CopyItems(c.Items),
		CouponCode:    quote.CouponCode,
		Customer:      customer,
		Delivery:      delivery,
		Payment:       payment,
		Totals:        quote.Totals(),
		Status:        model.StatusConfirmed,
		StatusHistory: []model.StatusChange{{Status: model.StatusConfirmed, At: now}},
		CreatedAt:     now,
	}

	a.logger.Info().
		Str("order_id", o.ID.String()).
		Str("order_number", o.Number).
		Int("item_count", len(o.Items)).
		Float64("total", o.Totals.Total).
		Msg("order assembled")

	return o, quote.Warning, nil
}

// validateItems checks every cart line against the catalogue, collecting all
// failures rather than stopping at the first.
func (a *Assembler) validateItems(ctx context.Context, c *cart.Cart, verrs *model.ValidationErrors) {
	for i, it := range c.Items {
		field := fmt.Sprintf("items[%d]", i)

		if it.Quantity < 1 || it.Quantity > MaxQuantityPerLine {
			verrs.Add(field, model.ErrCodeInvalidQuantity,
				fmt.Sprintf("quantity must be between 1 and %d", MaxQuantityPerLine))
		}

		menuItem, err := a.catalog.GetByID(ctx, it.MenuItemID)
		if err != nil {
			verrs.Add(field, model.ErrCodeInternalError, "unable to resolve menu item")
			continue
		}
		if menuItem == nil {
			verrs.Add(field, model.ErrCodeItemNotFound,
				fmt.Sprintf("menu item %q does not exist", it.MenuItemID))
			continue
		}
		if !menuItem.IsAvailable {
			verrs.Add(field, model.ErrCodeItemUnavailable,
				fmt.Sprintf("%s is currently unavailable", menuItem.Name))
			continue
		}

		cust := it.Customizations
		if len(menuItem.Sizes) > 0 {
			if _, ok := menuItem.SizeOption(cust.Size); !ok {
				verrs.Add(field, model.ErrCodeInvalidCustomization,
					fmt.Sprintf("size %q is not offered for %s", cust.Size, menuItem.Name))
			}
		} else if cust.Size != "" {
			verrs.Add(field, model.ErrCodeInvalidCustomization,
				fmt.Sprintf("%s has no size options", menuItem.Name))
		}
		if cust.SpiceLevel != "" && !menuItem.SupportsSpice(cust.SpiceLevel) {
			verrs.Add(field, model.ErrCodeInvalidCustomization,
				fmt.Sprintf("spice level %q is not offered for %s", cust.SpiceLevel, menuItem.Name))
		}
		for _, name := range cust.AddOns {
			if _, ok := menuItem.AddOn(name); !ok {
				verrs.Add(field, model.ErrCodeInvalidCustomization,
					fmt.Sprintf("add-on %q is not offered for %s", name, menuItem.Name))
			}
		}
		if len(cust.SpecialInstructions) > maxInstructionLength {
			verrs.Add(field, model.ErrCodeInvalidCustomization,
				fmt.Sprintf("special instructions must be at most %d characters", maxInstructionLength))
		}
	}
}
