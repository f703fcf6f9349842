// Package service implements the wardrobe use cases on top of the store,
// the query functions and the search index.
package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	domainerrors "github.com/wardrobeapp/wardrobe-server/internal/errors"
	"github.com/wardrobeapp/wardrobe-server/internal/id"
	"github.com/wardrobeapp/wardrobe-server/internal/query"
	"github.com/wardrobeapp/wardrobe-server/internal/search"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
	"github.com/wardrobeapp/wardrobe-server/internal/validation"
)

// ItemRequest carries the user-editable fields of a clothing item.
type ItemRequest struct {
	Photo    string          `json:"photo" validate:"required"`
	Name     string          `json:"name" validate:"notblank,max=200"`
	Category domain.Category `json:"category,omitempty" validate:"category"`
	Color    string          `json:"color,omitempty" validate:"max=100"`
	Style    domain.Style    `json:"style,omitempty" validate:"style"`
	Weather  domain.Weather  `json:"weather,omitempty" validate:"weather"`
	Notes    string          `json:"notes,omitempty" validate:"max=2000"`
}

// Request aliases for the two write paths.
type (
	CreateItemRequest = ItemRequest
	UpdateItemRequest = ItemRequest
)

// withDefaults fills unset enums the way the add-item form preselects them.
func (r ItemRequest) withDefaults() ItemRequest {
	if r.Category == "" {
		r.Category = domain.CategoryTop
	}
	if r.Style == "" {
		r.Style = domain.StyleCasual
	}
	if r.Weather == "" {
		r.Weather = domain.WeatherMild
	}
	r.Name = strings.TrimSpace(r.Name)
	r.Color = strings.TrimSpace(r.Color)
	return r
}

// ClosetService manages clothing items.
type ClosetService struct {
	store     *store.Store
	search    *SearchService
	validator *validation.Validator
	logger    *slog.Logger
}

// NewClosetService creates a new closet service.
func NewClosetService(store *store.Store, search *SearchService, validator *validation.Validator, logger *slog.Logger) *ClosetService {
	return &ClosetService{
		store:     store,
		search:    search,
		validator: validator,
		logger:    logger,
	}
}

// List returns the items matching criteria in closet order.
func (s *ClosetService) List(ctx context.Context, criteria query.ClosetCriteria) ([]domain.ClothingItem, error) {
	items, err := s.store.GetClothingItems(ctx)
	if err != nil {
		return nil, err
	}
	return query.FilterCloset(items, criteria), nil
}

// Get returns a single item.
func (s *ClosetService) Get(ctx context.Context, itemID string) (*domain.ClothingItem, error) {
	return s.store.GetClothingItem(ctx, itemID)
}

// Create validates req and appends a new item.
func (s *ClosetService) Create(ctx context.Context, req CreateItemRequest) (*domain.ClothingItem, error) {
	req = req.withDefaults()
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	items, err := s.store.GetClothingItems(ctx)
	if err != nil {
		return nil, err
	}
	itemID, err := id.GenerateUnique(id.PrefixItem, func(candidate string) bool {
		return s.store.Items.Contains(items, candidate)
	})
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to generate item id")
	}

	item := domain.ClothingItem{
		ID:        itemID,
		Photo:     req.Photo,
		Name:      req.Name,
		Category:  req.Category,
		Color:     req.Color,
		Style:     req.Style,
		Weather:   req.Weather,
		Notes:     req.Notes,
		CreatedAt: s.store.Now(),
	}
	if err := s.store.AddClothingItem(ctx, item); err != nil {
		return nil, err
	}

	s.search.IndexItem(&item)
	s.logger.Info("clothing item added",
		"item_id", item.ID,
		"category", item.Category,
	)
	return &item, nil
}

// Update replaces the editable fields of an item, keeping its id, createdAt
// and favorite flag.
func (s *ClosetService) Update(ctx context.Context, itemID string, req UpdateItemRequest) (*domain.ClothingItem, error) {
	req = req.withDefaults()
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.store.GetClothingItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item := *existing
	item.Photo = req.Photo
	item.Name = req.Name
	item.Category = req.Category
	item.Color = req.Color
	item.Style = req.Style
	item.Weather = req.Weather
	item.Notes = req.Notes

	if err := s.store.UpdateClothingItem(ctx, itemID, item); err != nil {
		return nil, err
	}

	s.search.IndexItem(&item)
	return &item, nil
}

// ToggleFavorite flips the item's favorite flag. All other fields are unchanged.
func (s *ClosetService) ToggleFavorite(ctx context.Context, itemID string) (*domain.ClothingItem, error) {
	item, err := s.store.GetClothingItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	item.ToggleFavorite()
	if err := s.store.UpdateClothingItem(ctx, itemID, *item); err != nil {
		return nil, err
	}

	s.search.IndexItem(item)
	s.logger.Debug("favorite toggled", "item_id", itemID, "favorite", item.IsFavorite)
	return item, nil
}

// Delete removes an item. Outfits that reference it keep the dangling id and
// resolve the slot as empty. Deleting an unknown id is a no-op.
func (s *ClosetService) Delete(ctx context.Context, itemID string) error {
	if err := s.store.DeleteClothingItem(ctx, itemID); err != nil {
		return err
	}
	s.search.RemoveItem(itemID)
	s.logger.Info("clothing item deleted", "item_id", itemID)
	return nil
}

// Search runs a ranked full-text search over the closet.
func (s *ClosetService) Search(ctx context.Context, params search.SearchParams) ([]domain.ClothingItem, error) {
	return s.search.Search(ctx, params)
}
