package service

import (
	"context"

	"github.com/wardrobeapp/wardrobe-server/internal/query"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
)

// DashboardService computes the wardrobe summary.
type DashboardService struct {
	store *store.Store
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(store *store.Store) *DashboardService {
	return &DashboardService{store: store}
}

// Summary aggregates the current closet and outfits.
func (s *DashboardService) Summary(ctx context.Context) (query.Dashboard, error) {
	items, err := s.store.GetClothingItems(ctx)
	if err != nil {
		return query.Dashboard{}, err
	}
	outfits, err := s.store.GetOutfits(ctx)
	if err != nil {
		return query.Dashboard{}, err
	}
	return query.AggregateDashboard(items, outfits), nil
}
