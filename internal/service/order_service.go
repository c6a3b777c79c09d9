package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/cart"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/events"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/order"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/store"
)

// orderService implements OrderService.
type orderService struct {
	carts     cart.Store
	assembler *order.Assembler
	orders    store.OrderStore
	bus       *events.Bus
	logger    zerolog.Logger

	// failureRate simulates random submission failures; roll is injectable
	// so tests stay deterministic.
	failureRate float64
	roll        func() float64
	now         func() time.Time
}

// NewOrderService creates a new order service.
func NewOrderService(
	carts cart.Store,
	assembler *order.Assembler,
	orders store.OrderStore,
	bus *events.Bus,
	failureRate float64,
	logger zerolog.Logger,
) OrderService {
	return &orderService{
		carts:       carts,
		assembler:   assembler,
		orders:      orders,
		bus:         bus,
		failureRate: failureRate,
		roll:        rand.Float64,
		now:         time.Now,
		logger:      logger.With().Str("service", "order").Logger(),
	}
}

// Checkout assembles an order from the cart, stores it, clears the cart and
// emits the created event. Coupon failures ride along as a warning.
func (s *orderService) Checkout(ctx context.Context, req model.CheckoutRequest) (*model.CheckoutResponse, error) {
	c, err := s.carts.Get(ctx, req.CartID)
	if err != nil {
		return nil, err
	}

	if s.failureRate > 0 && s.roll() < s.failureRate {
		s.logger.Warn().Str("cart_id", req.CartID).Msg("simulated order submission failure")
		return nil, model.ErrOrderRejected
	}

	o, warning, err := s.assembler.Assemble(ctx, c, req.Customer, req.Delivery, req.Payment)
	if err != nil {
		return nil, err
	}

	if err := s.orders.Put(ctx, o); err != nil {
		s.logger.Error().Err(err).Str("order_id", o.ID.String()).Msg("failed to store order")
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	// The cart is cleared only after the order is safely stored.
	if _, err := s.carts.Update(ctx, req.CartID, func(c *cart.Cart) error {
		c.Clear()
		return nil
	}); err != nil {
		s.logger.Warn().Err(err).Str("cart_id", req.CartID).Msg("failed to clear cart after checkout")
	}

	if err := s.bus.Emit(ctx, events.TopicOrderCreated, o.ID, events.OrderCreatedPayload{
		Number: o.Number,
		Total:  o.Totals.Total,
	}); err != nil {
		s.logger.Warn().Err(err).Msg("order created notifiers failed")
	}

	s.logger.Info().
		Str("order_id", o.ID.String()).
		Str("order_number", o.Number).
		Float64("total", o.Totals.Total).
		Msg("order placed")

	return &model.CheckoutResponse{Order: o, CouponWarning: warning}, nil
}

// GetByID retrieves an order.
func (s *orderService) GetByID(ctx context.Context, id uuid.UUID) (*model.Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("order_id", id.String()).Msg("failed to get order")
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return o, nil
}

// List returns all orders, newest first.
func (s *orderService) List(ctx context.Context) ([]model.Order, error) {
	orders, err := s.orders.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// AdvanceStatus moves the order one lifecycle step forward and persists the
// transition. Items and totals are never recomputed.
func (s *orderService) AdvanceStatus(ctx context.Context, id uuid.UUID, to model.OrderStatus) (*model.Order, error) {
	o, err := s.orders.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	if o == nil {
		return nil, model.ErrOrderNotFound
	}

	from := o.Status
	if err := order.Advance(o, to, s.now()); err != nil {
		return nil, err
	}
	if err := s.orders.Put(ctx, o); err != nil {
		return nil, fmt.Errorf("failed to store order: %w", err)
	}

	if err := s.bus.Emit(ctx, events.TopicOrderStatusChanged, o.ID, events.StatusChangedPayload{
		From: from,
		To:   to,
	}); err != nil {
		s.logger.Warn().Err(err).Msg("status change notifiers failed")
	}

	s.logger.Info().
		Str("order_id", o.ID.String()).
		Str("from", string(from)).
		Str("to", string(to)).
		Msg("order status advanced")

	return o, nil
}
