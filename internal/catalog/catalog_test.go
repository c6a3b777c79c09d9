package catalog

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

func boolPtr(b bool) *bool { return &b }

func newTestRepository(t *testing.T) Repository {
	t.Helper()
	return NewMemoryRepository(Seed(), zerolog.Nop())
}

func TestMemoryRepository_ListAll(t *testing.T) {
	repo := newTestRepository(t)

	items, total, err := repo.List(context.Background(), ListFilter{})
	require.NoError(t, err)

	assert.Equal(t, 12, total)
	assert.Len(t, items, 12)

	// Sorted by name.
	for i := 1; i < len(items); i++ {
		assert.LessOrEqual(t, items[i-1].Name, items[i].Name)
	}
}

func TestMemoryRepository_ListFilters(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	tests := []struct {
		name          string
		filter        ListFilter
		expectedTotal int
	}{
		{name: "by category", filter: ListFilter{Category: "mandi"}, expectedTotal: 5},
		{name: "category is case-insensitive", filter: ListFilter{Category: "MANDI"}, expectedTotal: 5},
		{name: "vegetarian only", filter: ListFilter{Vegetarian: boolPtr(true)}, expectedTotal: 7},
		{name: "non-vegetarian only", filter: ListFilter{Vegetarian: boolPtr(false)}, expectedTotal: 5},
		{name: "max price", filter: ListFilter{MaxPrice: 100}, expectedTotal: 4},
		{name: "search in name", filter: ListFilter{Search: "mandi"}, expectedTotal: 4},
		{name: "search is case-insensitive", filter: ListFilter{Search: "KUNAFA"}, expectedTotal: 1},
		{name: "search in description", filter: ListFilter{Search: "cardamom"}, expectedTotal: 1},
		{name: "combined filters", filter: ListFilter{Category: "mandi", Vegetarian: boolPtr(true)}, expectedTotal: 1},
		{name: "no matches", filter: ListFilter{Search: "pizza"}, expectedTotal: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, total, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTotal, total)
		})
	}
}

func TestMemoryRepository_ListSpiceFilter(t *testing.T) {
	repo := newTestRepository(t)

	// Items with no declared spice levels accept any known level, so a spice
	// filter never excludes them.
	items, _, err := repo.List(context.Background(), ListFilter{Spice: model.SpiceMild})
	require.NoError(t, err)

	ids := make(map[string]bool, len(items))
	for _, item := range items {
		ids[item.ID] = true
	}
	assert.True(t, ids["chicken-mandi"])
	assert.True(t, ids["kunafa"])
	// Chicken 65 only comes medium or hot.
	assert.False(t, ids["chicken-65"])
}

func TestMemoryRepository_ListPagination(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first, total, err := repo.List(ctx, ListFilter{Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Len(t, first, 5)

	second, total, err := repo.List(ctx, ListFilter{Limit: 5, Offset: 5})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Len(t, second, 5)
	assert.NotEqual(t, first[0].ID, second[0].ID)

	// Offset beyond the end yields an empty page, not an error.
	tail, total, err := repo.List(ctx, ListFilter{Limit: 5, Offset: 50})
	require.NoError(t, err)
	assert.Equal(t, 12, total)
	assert.Empty(t, tail)
}

func TestMemoryRepository_GetByID(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	item, err := repo.GetByID(ctx, "chicken-mandi")
	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, "Chicken Mandi", item.Name)
	assert.Equal(t, 180.0, item.BasePrice)
	assert.Len(t, item.Sizes, 3)

	missing, err := repo.GetByID(ctx, "shawarma")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSeed(t *testing.T) {
	items := Seed()
	require.Len(t, items, 12)

	seen := make(map[string]bool, len(items))
	for _, item := range items {
		assert.NotEmpty(t, item.ID)
		assert.NotEmpty(t, item.Name)
		assert.NotEmpty(t, item.Category)
		assert.Greater(t, item.BasePrice, 0.0)
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true
	}
}
