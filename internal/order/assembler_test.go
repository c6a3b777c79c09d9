package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/cart"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/catalog"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/coupon"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/pricing"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/validate"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	registry := coupon.NewRegistry(coupon.DefaultCoupons(), zerolog.Nop())
	engine := pricing.NewEngine(registry, pricing.DefaultConfig(), zerolog.Nop()).
		WithClock(func() time.Time { return testNow })
	repo := catalog.NewMemoryRepository(catalog.Seed(), zerolog.Nop())
	return NewAssembler(repo, engine, validate.New(), 100, zerolog.Nop()).
		WithClock(func() time.Time { return testNow })
}

func validCustomer() model.CustomerInfo {
	return model.CustomerInfo{Name: "Ayesha Khan", Phone: "+919876543210", Email: "ayesha@example.com"}
}

func validDelivery() model.DeliveryInfo {
	return model.DeliveryInfo{Address: "12-4-56 Charminar Road", City: "Hyderabad", PostalCode: "500001"}
}

func validPayment() model.PaymentInfo {
	return model.PaymentInfo{Method: "cash"}
}

func cartLine(menuItemID string, unitPrice float64, quantity int, c model.Customizations) model.CartItem {
	return model.CartItem{
		Key:            model.LineKey(menuItemID, c),
		MenuItemID:     menuItemID,
		Name:           menuItemID,
		UnitPrice:      unitPrice,
		Quantity:       quantity,
		Customizations: c,
	}
}

func validCart(t *testing.T) *cart.Cart {
	t.Helper()
	c := cart.New("cart-1", testNow)
	// Half chicken mandi: 180 base + 140 size delta.
	require.NoError(t, c.AddItem(cartLine("chicken-mandi", 320, 1, model.Customizations{
		Size:       model.SizeHalf,
		SpiceLevel: model.SpiceMedium,
	})))
	return c
}

func TestAssembler_Assemble(t *testing.T) {
	a := newTestAssembler(t)

	c := validCart(t)
	order, warning, err := a.Assemble(context.Background(), c, validCustomer(), validDelivery(), validPayment())
	require.NoError(t, err)
	require.NotNil(t, order)
	assert.Nil(t, warning)

	assert.NotEqual(t, "", order.ID.String())
	assert.Regexp(t, `^SM-20250615-[0-9A-F]{6}$`, order.Number)
	assert.Equal(t, model.StatusConfirmed, order.Status)
	require.Len(t, order.StatusHistory, 1)
	assert.Equal(t, model.StatusConfirmed, order.StatusHistory[0].Status)
	assert.Equal(t, testNow, order.CreatedAt)

	// 320 + 57.6 tax + 50 delivery
	assert.Equal(t, 320.0, order.Totals.Subtotal)
	assert.Equal(t, 58.0, order.Totals.Tax)
	assert.Equal(t, 50.0, order.Totals.DeliveryCharge)
	assert.Equal(t, 428.0, order.Totals.Total)
}

func TestAssembler_Assemble_EmptyCart(t *testing.T) {
	a := newTestAssembler(t)

	_, _, err := a.Assemble(context.Background(), cart.New("cart-1", testNow), validCustomer(), validDelivery(), validPayment())
	assert.ErrorIs(t, err, model.ErrEmptyCart)

	_, _, err = a.Assemble(context.Background(), nil, validCustomer(), validDelivery(), validPayment())
	assert.ErrorIs(t, err, model.ErrEmptyCart)
}

func TestAssembler_Assemble_CollectsAllFailures(t *testing.T) {
	a := newTestAssembler(t)

	c := cart.New("cart-1", testNow)
	// Unknown dish.
	require.NoError(t, c.AddItem(cartLine("shawarma", 100, 1, model.Customizations{})))
	// Unavailable dish.
	require.NoError(t, c.AddItem(cartLine("mutton-haneeth", 320, 1, model.Customizations{Size: model.SizeHalf})))
	// Size not offered.
	require.NoError(t, c.AddItem(cartLine("chicken-mandi", 180, 1, model.Customizations{Size: "Mega"})))

	customer := validCustomer()
	customer.Name = "A"
	customer.Email = "broken"
	delivery := validDelivery()
	delivery.Address = "short"
	payment := model.PaymentInfo{Method: "bitcoin"}

	_, _, err := a.Assemble(context.Background(), c, customer, delivery, payment)
	require.Error(t, err)

	var verrs *model.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := make(map[string]string)
	for _, fe := range verrs.Errors {
		fields[fe.Field] = fe.Code
	}
	assert.Equal(t, model.ErrCodeItemNotFound, fields["items[0]"])
	assert.Equal(t, model.ErrCodeItemUnavailable, fields["items[1]"])
	assert.Equal(t, model.ErrCodeInvalidCustomization, fields["items[2]"])

	// Schema failures carry their section prefix so clients can attribute
	// them to the right form section.
	assert.Equal(t, "MIN", fields["customer.name"])
	assert.Equal(t, "EMAIL", fields["customer.email"])
	assert.Equal(t, "MIN", fields["delivery.address"])
	assert.Equal(t, "ONEOF", fields["payment.method"])
	assert.Len(t, verrs.Errors, 7)
}

func TestAssembler_Assemble_QuantityBounds(t *testing.T) {
	a := newTestAssembler(t)

	c := validCart(t)
	c.Items[0].Quantity = MaxQuantityPerLine + 1

	_, _, err := a.Assemble(context.Background(), c, validCustomer(), validDelivery(), validPayment())
	require.Error(t, err)

	var verrs *model.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, model.ErrCodeInvalidQuantity, verrs.Errors[0].Code)
	assert.Equal(t, "items[0]", verrs.Errors[0].Field)
}

func TestAssembler_Assemble_MinimumOrder(t *testing.T) {
	a := newTestAssembler(t)

	c := cart.New("cart-1", testNow)
	require.NoError(t, c.AddItem(cartLine("saudi-chai", 40, 2, model.Customizations{})))

	_, _, err := a.Assemble(context.Background(), c, validCustomer(), validDelivery(), validPayment())
	require.Error(t, err)

	var verrs *model.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs.Errors, 1)
	assert.Equal(t, model.ErrCodeMinimumOrderNotMet, verrs.Errors[0].Code)

	// Exactly at the minimum passes.
	c = cart.New("cart-2", testNow)
	require.NoError(t, c.AddItem(cartLine("khubz", 50, 2, model.Customizations{})))
	_, _, err = a.Assemble(context.Background(), c, validCustomer(), validDelivery(), validPayment())
	assert.NoError(t, err)
}

func TestAssembler_Assemble_CouponWarningIsNonFatal(t *testing.T) {
	a := newTestAssembler(t)

	c := validCart(t)
	c.ApplyCoupon("NOSUCHCODE")

	order, warning, err := a.Assemble(context.Background(), c, validCustomer(), validDelivery(), validPayment())
	require.NoError(t, err)
	require.NotNil(t, order)
	require.NotNil(t, warning)
	assert.Equal(t, model.CouponNotFound, warning.Reason)
	assert.Equal(t, 0.0, order.Totals.Discount)
	assert.Empty(t, order.CouponCode)
}

func TestAssembler_Assemble_CouponApplied(t *testing.T) {
	a := newTestAssembler(t)

	c := validCart(t)
	c.ApplyCoupon("welcome10")

	order, warning, err := a.Assemble(context.Background(), c, validCustomer(), validDelivery(), validPayment())
	require.NoError(t, err)
	assert.Nil(t, warning)
	assert.Equal(t, "WELCOME10", order.CouponCode)
	assert.Equal(t, 32.0, order.Totals.Discount)
}

func TestAssembler_Assemble_OrderIsSnapshot(t *testing.T) {
	a := newTestAssembler(t)

	c := validCart(t)
	order, _, err := a.Assemble(context.Background(), c, validCustomer(), validDelivery(), validPayment())
	require.NoError(t, err)

	// Clearing the cart afterwards must not touch the order.
	c.Clear()
	require.Len(t, order.Items, 1)
	assert.Equal(t, "chicken-mandi", order.Items[0].MenuItemID)
}

func TestNumber(t *testing.T) {
	at := time.Date(2026, 8, 28, 19, 30, 0, 0, time.UTC)
	id := uuid.MustParse("9f2c41d0-0000-4000-8000-000000000000")

	n := Number(at, id)
	assert.Equal(t, "SM-20260828-9F2C41", n)
}

func TestAdvance(t *testing.T) {
	o := &model.Order{
		Status:        model.StatusConfirmed,
		StatusHistory: []model.StatusChange{{Status: model.StatusConfirmed, At: testNow}},
	}

	require.NoError(t, Advance(o, model.StatusPreparing, testNow.Add(time.Minute)))
	assert.Equal(t, model.StatusPreparing, o.Status)
	require.Len(t, o.StatusHistory, 2)

	// Skipping a step is rejected and leaves the order untouched.
	err := Advance(o, model.StatusDelivered, testNow.Add(2*time.Minute))
	assert.ErrorIs(t, err, model.ErrInvalidTransition)
	assert.Equal(t, model.StatusPreparing, o.Status)
	assert.Len(t, o.StatusHistory, 2)

	// Backwards is rejected too.
	err = Advance(o, model.StatusConfirmed, testNow.Add(2*time.Minute))
	assert.ErrorIs(t, err, model.ErrInvalidTransition)

	require.NoError(t, Advance(o, model.StatusReady, testNow.Add(3*time.Minute)))
	require.NoError(t, Advance(o, model.StatusDelivered, testNow.Add(4*time.Minute)))

	// Delivered is terminal.
	err = Advance(o, model.StatusDelivered, testNow.Add(5*time.Minute))
	assert.ErrorIs(t, err, model.ErrInvalidTransition)

	assert.ErrorIs(t, Advance(nil, model.StatusPreparing, testNow), model.ErrOrderNotFound)
}
