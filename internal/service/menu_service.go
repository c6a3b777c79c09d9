package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/yzxsolutions/soofi-mandi-sub000/internal/catalog"
	"github.com/yzxsolutions/soofi-mandi-sub000/internal/model"
)

// menuService implements MenuService over the catalogue repository.
type menuService struct {
	catalog catalog.Repository
	logger  zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(cat catalog.Repository, logger zerolog.Logger) MenuService {
	return &menuService{
		catalog: cat,
		logger:  logger.With().Str("service", "menu").Logger(),
	}
}

// List retrieves menu items matching the query.
func (s *menuService) List(ctx context.Context, query model.MenuQuery) ([]model.MenuItem, int, error) {
	filter := catalog.ListFilter{
		Category:   query.Category,
		Search:     query.Search,
		Vegetarian: query.Vegetarian,
		Spice:      model.SpiceLevel(query.Spice),
		MaxPrice:   query.MaxPrice,
		Limit:      query.Limit,
		Offset:     query.Offset,
	}
	items, total, err := s.catalog.List(ctx, filter)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list menu items")
		return nil, 0, fmt.Errorf("failed to list menu items: %w", err)
	}

	s.logger.Debug().
		Int("count", len(items)).
		Int("total", total).
		Str("category", query.Category).
		Msg("retrieved menu items")

	return items, total, nil
}

// GetByID retrieves a single menu item.
func (s *menuService) GetByID(ctx context.Context, id string) (*model.MenuItem, error) {
	if id == "" {
		return nil, nil
	}
	item, err := s.catalog.GetByID(ctx, id)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_item_id", id).Msg("failed to get menu item")
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return item, nil
}
