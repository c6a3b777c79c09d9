package catalog

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

// ListFilter narrows and pages a menu listing. Zero values mean "no filter".
type ListFilter struct {
	Category   string
	Search     string
	Vegetarian *bool
	Spice      model.SpiceLevel
	MaxPrice   float64
	Limit      int
	Offset     int
}

// Repository defines read access to the menu catalogue.
type Repository interface {
	// List returns the items matching the filter plus the total match count
	// before pagination.
	List(ctx context.Context, filter ListFilter) ([]model.MenuItem, int, error)

	// GetByID retrieves a single menu item. Returns nil when the id is unknown.
	GetByID(ctx context.Context, id string) (*model.MenuItem, error)
}

// memoryRepository serves the static menu dataset from memory. The item slice
// is read-only after construction, so concurrent reads need no locking.
type memoryRepository struct {
	items  []model.MenuItem
	byID   map[string]int
	logger zerolog.Logger
}

// NewMemoryRepository creates a catalogue over the given items, sorted by name.
func NewMemoryRepository(items []model.MenuItem, logger zerolog.Logger) Repository {
	sorted := append([]model.MenuItem(nil), items...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	byID := make(map[string]int, len(sorted))
	for i, item := range sorted {
		byID[item.ID] = i
	}

	r := &memoryRepository{
		items:  sorted,
		byID:   byID,
		logger: logger.With().Str("repository", "catalog").Logger(),
	}
	r.logger.Info().Int("item_count", len(sorted)).Msg("menu catalogue loaded")
	return r
}

// List returns the items matching the filter plus the total match count.
func (r *memoryRepository) List(_ context.Context, filter ListFilter) ([]model.MenuItem, int, error) {
	matched := make([]model.MenuItem, 0, len(r.items))
	for _, item := range r.items {
		if !matches(item, filter) {
			continue
		}
		matched = append(matched, item)
	}
	total := len(matched)

	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset > total {
		offset = total
	}
	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	end := offset + limit
	if end > total {
		end = total
	}

	r.logger.Debug().
		Int("total", total).
		Int("limit", limit).
		Int("offset", offset).
		Msg("listed menu items")

	return matched[offset:end], total, nil
}

// GetByID retrieves a single menu item by id.
func (r *memoryRepository) GetByID(_ context.Context, id string) (*model.MenuItem, error) {
	idx, ok := r.byID[id]
	if !ok {
		r.logger.Debug().Str("menu_item_id", id).Msg("menu item not found")
		return nil, nil
	}
	item := r.items[idx]
	return &item, nil
}

func matches(item model.MenuItem, f ListFilter) bool {
	if f.Category != "" && !strings.EqualFold(item.Category, f.Category) {
		return false
	}
	if f.Vegetarian != nil && item.IsVegetarian != *f.Vegetarian {
		return false
	}
	if f.Spice != "" && !item.SupportsSpice(f.Spice) {
		return false
	}
	if f.MaxPrice > 0 && item.BasePrice > f.MaxPrice {
		return false
	}
	if f.Search != "" {
		needle := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(item.Name), needle) &&
			!strings.Contains(strings.ToLower(item.Description), needle) {
			return false
		}
	}
	return true
}
