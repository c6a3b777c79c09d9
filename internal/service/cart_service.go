package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/cart"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/catalog"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/pricing"
)

// cartService implements CartService over the session cart store.
type cartService struct {
	store   cart.Store
	catalog catalog.Repository
	engine  *pricing.Engine
	logger  zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(store cart.Store, cat catalog.Repository, engine *pricing.Engine, logger zerolog.Logger) CartService {
	return &cartService{
		store:   store,
		catalog: cat,
		engine:  engine,
		logger:  logger.With().Str("service", "cart").Logger(),
	}
}

// Create makes a new empty cart.
func (s *cartService) Create(ctx context.Context) (*CartView, error) {
	c, err := s.store.Create(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create cart")
		return nil, fmt.Errorf("failed to create cart: %w", err)
	}
	s.logger.Info().Str("cart_id", c.ID).Msg("cart created")
	return s.view(c)
}

// Get returns the cart and its current totals.
func (s *cartService) Get(ctx context.Context, cartID string) (*CartView, error) {
	c, err := s.store.Get(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return s.view(c)
}

// AddItem resolves the dish against the catalogue, folds the size delta and
// add-on prices into the unit price, and merges the line into the cart.
func (s *cartService) AddItem(ctx context.Context, cartID string, req model.AddItemRequest) (*CartView, error) {
	line, err := s.buildLine(ctx, req)
	if err != nil {
		return nil, err
	}
	c, err := s.store.Update(ctx, cartID, func(c *cart.Cart) error {
		return c.AddItem(line)
	})
	if err != nil {
		return nil, err
	}
	s.logger.Debug().
		Str("cart_id", cartID).
		Str("line_key", line.Key).
		Int("quantity", line.Quantity).
		Msg("cart item added")
	return s.view(c)
}

// UpdateQuantity changes a line's quantity; zero or less removes the line.
func (s *cartService) UpdateQuantity(ctx context.Context, cartID, lineKey string, quantity int) (*CartView, error) {
	c, err := s.store.Update(ctx, cartID, func(c *cart.Cart) error {
		c.UpdateQuantity(lineKey, quantity)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.view(c)
}

// RemoveItem deletes a line.
func (s *cartService) RemoveItem(ctx context.Context, cartID, lineKey string) (*CartView, error) {
	c, err := s.store.Update(ctx, cartID, func(c *cart.Cart) error {
		c.RemoveItem(lineKey)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.view(c)
}

// ApplyCoupon stores the code on the cart without validating it; the pricing
// engine is the sole source of truth for whether a discount is granted, and
// the returned view reflects its verdict.
func (s *cartService) ApplyCoupon(ctx context.Context, cartID, code string) (*CartView, error) {
	c, err := s.store.Update(ctx, cartID, func(c *cart.Cart) error {
		c.ApplyCoupon(code)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.view(c)
}

// RemoveCoupon clears the applied coupon.
func (s *cartService) RemoveCoupon(ctx context.Context, cartID string) (*CartView, error) {
	c, err := s.store.Update(ctx, cartID, func(c *cart.Cart) error {
		c.RemoveCoupon()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.view(c)
}

// buildLine validates the add request against the catalogue and produces a
// cart line with size and add-on prices folded into the unit price.
func (s *cartService) buildLine(ctx context.Context, req model.AddItemRequest) (model.CartItem, error) {
	menuItem, err := s.catalog.GetByID(ctx, req.MenuItemID)
	if err != nil {
		return model.CartItem{}, fmt.Errorf("failed to resolve menu item: %w", err)
	}
	if menuItem == nil {
		return model.CartItem{}, model.NewDomainError(model.ErrCodeItemNotFound,
			fmt.Sprintf("menu item %q does not exist", req.MenuItemID))
	}
	if !menuItem.IsAvailable {
		return model.CartItem{}, model.NewDomainError(model.ErrCodeItemUnavailable,
			fmt.Sprintf("%s is currently unavailable", menuItem.Name))
	}

	unitPrice := menuItem.BasePrice
	size := model.Size(req.Size)
	if len(menuItem.Sizes) > 0 {
		opt, ok := menuItem.SizeOption(size)
		if !ok {
			return model.CartItem{}, model.NewDomainError(model.ErrCodeInvalidCustomization,
				fmt.Sprintf("size %q is not offered for %s", req.Size, menuItem.Name))
		}
		unitPrice += opt.PriceDelta
	} else if size != "" {
		return model.CartItem{}, model.NewDomainError(model.ErrCodeInvalidCustomization,
			fmt.Sprintf("%s has no size options", menuItem.Name))
	}

	spice := model.SpiceLevel(req.SpiceLevel)
	if spice == "" && len(menuItem.SpiceLevels) > 0 {
		spice = model.SpiceMedium
	}
	if spice != "" && !menuItem.SupportsSpice(spice) {
		return model.CartItem{}, model.NewDomainError(model.ErrCodeInvalidCustomization,
			fmt.Sprintf("spice level %q is not offered for %s", req.SpiceLevel, menuItem.Name))
	}

	for _, name := range req.AddOns {
		addOn, ok := menuItem.AddOn(name)
		if !ok {
			return model.CartItem{}, model.NewDomainError(model.ErrCodeInvalidCustomization,
				fmt.Sprintf("add-on %q is not offered for %s", name, menuItem.Name))
		}
		unitPrice += addOn.Price
	}

	customizations := model.Customizations{
		Size:                size,
		SpiceLevel:          spice,
		AddOns:              req.AddOns,
		SpecialInstructions: req.SpecialInstructions,
	}
	return model.CartItem{
		Key:            model.LineKey(menuItem.ID, customizations),
		MenuItemID:     menuItem.ID,
		Name:           menuItem.Name,
		UnitPrice:      unitPrice,
		Quantity:       req.Quantity,
		Customizations: customizations,
	}, nil
}

// view attaches freshly computed totals to a cart snapshot.
func (s *cartService) view(c *cart.Cart) (*CartView, error) {
	quote, err := c.Quote(s.engine)
	if err != nil {
		return nil, err
	}
	return &CartView{Cart: c, Pricing: quote, ItemCount: c.ItemCount()}, nil
}
