package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/cart"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/catalog"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/coupon"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/pricing"
)

func newTestCartService(t *testing.T) CartService {
	t.Helper()
	registry := coupon.NewRegistry(coupon.DefaultCoupons(), zerolog.Nop())
	engine := pricing.NewEngine(registry, pricing.DefaultConfig(), zerolog.Nop())
	repo := catalog.NewMemoryRepository(catalog.Seed(), zerolog.Nop())
	store := cart.NewMemoryStore(time.Hour, zerolog.Nop())
	return NewCartService(store, repo, engine, zerolog.Nop())
}

func addHalfChickenMandi(t *testing.T, svc CartService, cartID string, quantity int) *CartView {
	t.Helper()
	view, err := svc.AddItem(context.Background(), cartID, model.AddItemRequest{
		MenuItemID: "chicken-mandi",
		Quantity:   quantity,
		Size:       "Half",
		SpiceLevel: "medium",
	})
	require.NoError(t, err)
	return view
}

func TestCartService_CreateAndGet(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, created.Cart.ID)
	assert.Equal(t, 0, created.ItemCount)
	assert.Equal(t, 0.0, created.Pricing.Subtotal)

	got, err := svc.Get(ctx, created.Cart.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Cart.ID, got.Cart.ID)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, model.ErrCartNotFound)
}

func TestCartService_AddItem_FoldsPricesIntoUnitPrice(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)

	view, err := svc.AddItem(ctx, created.Cart.ID, model.AddItemRequest{
		MenuItemID: "chicken-mandi",
		Quantity:   1,
		Size:       "Half",
		SpiceLevel: "hot",
		AddOns:     []string{"Extra Rice", "Peri Peri Sauce"},
	})
	require.NoError(t, err)

	require.Len(t, view.Cart.Items, 1)
	line := view.Cart.Items[0]
	// 180 base + 140 half delta + 50 rice + 30 sauce
	assert.Equal(t, 400.0, line.UnitPrice)
	assert.Equal(t, model.SpiceHot, line.Customizations.SpiceLevel)
	assert.Equal(t, 400.0, view.Pricing.Subtotal)
}

func TestCartService_AddItem_DefaultsSpiceToMedium(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)

	view, err := svc.AddItem(ctx, created.Cart.ID, model.AddItemRequest{
		MenuItemID: "chicken-mandi",
		Quantity:   1,
		Size:       "Quarter",
	})
	require.NoError(t, err)
	assert.Equal(t, model.SpiceMedium, view.Cart.Items[0].Customizations.SpiceLevel)

	// Items without spice levels stay unspiced.
	view, err = svc.AddItem(ctx, created.Cart.ID, model.AddItemRequest{
		MenuItemID: "kunafa",
		Quantity:   1,
	})
	require.NoError(t, err)
	assert.Equal(t, model.SpiceLevel(""), view.Cart.Items[1].Customizations.SpiceLevel)
}

func TestCartService_AddItem_MergesIdenticalLines(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)

	addHalfChickenMandi(t, svc, created.Cart.ID, 1)
	view := addHalfChickenMandi(t, svc, created.Cart.ID, 2)

	require.Len(t, view.Cart.Items, 1)
	assert.Equal(t, 3, view.Cart.Items[0].Quantity)
	assert.Equal(t, 3, view.ItemCount)
}

func TestCartService_AddItem_Rejections(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)

	tests := []struct {
		name         string
		req          model.AddItemRequest
		expectedCode string
	}{
		{
			name:         "unknown item",
			req:          model.AddItemRequest{MenuItemID: "shawarma", Quantity: 1},
			expectedCode: model.ErrCodeItemNotFound,
		},
		{
			name:         "unavailable item",
			req:          model.AddItemRequest{MenuItemID: "mutton-haneeth", Quantity: 1, Size: "Half"},
			expectedCode: model.ErrCodeItemUnavailable,
		},
		{
			name:         "size required for sized items",
			req:          model.AddItemRequest{MenuItemID: "chicken-mandi", Quantity: 1},
			expectedCode: model.ErrCodeInvalidCustomization,
		},
		{
			name:         "size on unsized item",
			req:          model.AddItemRequest{MenuItemID: "kunafa", Quantity: 1, Size: "Half"},
			expectedCode: model.ErrCodeInvalidCustomization,
		},
		{
			name:         "unsupported spice level",
			req:          model.AddItemRequest{MenuItemID: "chicken-65", Quantity: 1, SpiceLevel: "mild"},
			expectedCode: model.ErrCodeInvalidCustomization,
		},
		{
			name:         "unknown add-on",
			req:          model.AddItemRequest{MenuItemID: "chicken-mandi", Quantity: 1, Size: "Half", AddOns: []string{"Truffle Oil"}},
			expectedCode: model.ErrCodeInvalidCustomization,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddItem(ctx, created.Cart.ID, tt.req)
			require.Error(t, err)
			var derr *model.DomainError
			require.True(t, errors.As(err, &derr))
			assert.Equal(t, tt.expectedCode, derr.Code)
		})
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)
	view := addHalfChickenMandi(t, svc, created.Cart.ID, 2)
	key := view.Cart.Items[0].Key

	view, err = svc.UpdateQuantity(ctx, created.Cart.ID, key, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.ItemCount)

	// Zero removes the line.
	view, err = svc.UpdateQuantity(ctx, created.Cart.ID, key, 0)
	require.NoError(t, err)
	assert.True(t, view.Cart.IsEmpty())
}

func TestCartService_RemoveItem(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)
	view := addHalfChickenMandi(t, svc, created.Cart.ID, 1)

	view, err = svc.RemoveItem(ctx, created.Cart.ID, view.Cart.Items[0].Key)
	require.NoError(t, err)
	assert.True(t, view.Cart.IsEmpty())
}

func TestCartService_CouponReflectedInPricing(t *testing.T) {
	svc := newTestCartService(t)
	ctx := context.Background()

	created, err := svc.Create(ctx)
	require.NoError(t, err)
	addHalfChickenMandi(t, svc, created.Cart.ID, 1) // 320

	view, err := svc.ApplyCoupon(ctx, created.Cart.ID, "WELCOME10")
	require.NoError(t, err)
	assert.Equal(t, 32.0, view.Pricing.Discount)
	assert.Nil(t, view.Pricing.Warning)

	// A bogus code still sticks, with the warning carried on the pricing.
	view, err = svc.ApplyCoupon(ctx, created.Cart.ID, "BOGUS")
	require.NoError(t, err)
	assert.Equal(t, "BOGUS", view.Cart.CouponCode)
	assert.Equal(t, 0.0, view.Pricing.Discount)
	require.NotNil(t, view.Pricing.Warning)
	assert.Equal(t, model.CouponNotFound, view.Pricing.Warning.Reason)

	view, err = svc.RemoveCoupon(ctx, created.Cart.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Cart.CouponCode)
	assert.Nil(t, view.Pricing.Warning)
}
