package service

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	domainerrors "github.com/wardrobeapp/wardrobe-server/internal/errors"
	"github.com/wardrobeapp/wardrobe-server/internal/id"
	"github.com/wardrobeapp/wardrobe-server/internal/query"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
	"github.com/wardrobeapp/wardrobe-server/internal/validation"
)

// OutfitRequest carries the user-editable fields of an outfit.
// Item ids are weak references and are not checked against the closet.
type OutfitRequest struct {
	Name         string   `json:"name" validate:"notblank,max=200"`
	TopID        string   `json:"topId,omitempty"`
	BottomID     string   `json:"bottomId,omitempty"`
	JacketID     string   `json:"jacketId,omitempty"`
	ShoesID      string   `json:"shoesId,omitempty"`
	AccessoryIDs []string `json:"accessoryIds,omitempty" validate:"max=50,dive,required"`
	Notes        string   `json:"notes,omitempty" validate:"max=2000"`
}

// HasBaseLayer reports whether the request names a top or a bottom.
func (r OutfitRequest) HasBaseLayer() bool {
	return r.TopID != "" || r.BottomID != ""
}

// normalized trims the name and drops repeated accessories, keeping first occurrences.
func (r OutfitRequest) normalized() OutfitRequest {
	r.Name = strings.TrimSpace(r.Name)

	accessories := make([]string, 0, len(r.AccessoryIDs))
	for _, a := range r.AccessoryIDs {
		if !slices.Contains(accessories, a) {
			accessories = append(accessories, a)
		}
	}
	r.AccessoryIDs = accessories
	return r
}

// OutfitService manages outfits and wear recording.
type OutfitService struct {
	store     *store.Store
	validator *validation.Validator
	logger    *slog.Logger
}

// NewOutfitService creates a new outfit service.
func NewOutfitService(store *store.Store, validator *validation.Validator, logger *slog.Logger) *OutfitService {
	return &OutfitService{
		store:     store,
		validator: validator,
		logger:    logger,
	}
}

// List returns every outfit with its items resolved.
func (s *OutfitService) List(ctx context.Context) ([]query.JoinedOutfit, error) {
	outfits, err := s.store.GetOutfits(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.store.GetClothingItems(ctx)
	if err != nil {
		return nil, err
	}
	return query.JoinOutfits(outfits, items), nil
}

// Get returns one outfit with its items resolved.
func (s *OutfitService) Get(ctx context.Context, outfitID string) (*query.JoinedOutfit, error) {
	outfit, err := s.store.GetOutfit(ctx, outfitID)
	if err != nil {
		return nil, err
	}
	items, err := s.store.GetClothingItems(ctx)
	if err != nil {
		return nil, err
	}
	return &query.JoinedOutfit{
		Outfit: *outfit,
		Items:  query.JoinOutfitItems(*outfit, items),
	}, nil
}

// Builder returns the closet grouped by category for composing an outfit.
func (s *OutfitService) Builder(ctx context.Context) (query.CategoryGroups, error) {
	items, err := s.store.GetClothingItems(ctx)
	if err != nil {
		return nil, err
	}
	return query.GroupByCategory(items), nil
}

// Create validates req and appends a new outfit.
func (s *OutfitService) Create(ctx context.Context, req OutfitRequest) (*domain.Outfit, error) {
	req = req.normalized()
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	outfits, err := s.store.GetOutfits(ctx)
	if err != nil {
		return nil, err
	}
	outfitID, err := id.GenerateUnique(id.PrefixOutfit, func(candidate string) bool {
		return s.store.Outfits.Contains(outfits, candidate)
	})
	if err != nil {
		return nil, domainerrors.Wrap(err, domainerrors.CodeInternal, "failed to generate outfit id")
	}

	outfit := domain.Outfit{
		ID:           outfitID,
		Name:         req.Name,
		TopID:        req.TopID,
		BottomID:     req.BottomID,
		JacketID:     req.JacketID,
		ShoesID:      req.ShoesID,
		AccessoryIDs: req.AccessoryIDs,
		Notes:        req.Notes,
		CreatedAt:    s.store.Now(),
	}
	if err := s.store.AddOutfit(ctx, outfit); err != nil {
		return nil, err
	}

	s.logger.Info("outfit created", "outfit_id", outfit.ID, "accessories", len(outfit.AccessoryIDs))
	return &outfit, nil
}

// Update replaces the editable fields of an outfit, keeping its id, createdAt
// and lastWorn.
func (s *OutfitService) Update(ctx context.Context, outfitID string, req OutfitRequest) (*domain.Outfit, error) {
	req = req.normalized()
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	existing, err := s.store.GetOutfit(ctx, outfitID)
	if err != nil {
		return nil, err
	}

	outfit := *existing
	outfit.Name = req.Name
	outfit.TopID = req.TopID
	outfit.BottomID = req.BottomID
	outfit.JacketID = req.JacketID
	outfit.ShoesID = req.ShoesID
	outfit.AccessoryIDs = req.AccessoryIDs
	outfit.Notes = req.Notes

	if err := s.store.UpdateOutfit(ctx, outfitID, outfit); err != nil {
		return nil, err
	}
	return &outfit, nil
}

// ToggleAccessory adds itemID to the outfit's accessories, or removes it if
// already selected. Adding requires the item to exist; removing does not, so a
// dangling accessory can always be cleared. Returns whether it is now selected.
func (s *OutfitService) ToggleAccessory(ctx context.Context, outfitID, itemID string) (*domain.Outfit, bool, error) {
	outfit, err := s.store.GetOutfit(ctx, outfitID)
	if err != nil {
		return nil, false, err
	}

	if !slices.Contains(outfit.AccessoryIDs, itemID) {
		if _, err := s.store.GetClothingItem(ctx, itemID); err != nil {
			return nil, false, err
		}
	}

	selected := outfit.ToggleAccessory(itemID)
	if err := s.store.UpdateOutfit(ctx, outfitID, *outfit); err != nil {
		return nil, false, err
	}
	return outfit, selected, nil
}

// Delete removes an outfit. Its wear records stay in the history but no longer
// show up in the joined history. Deleting an unknown id is a no-op.
func (s *OutfitService) Delete(ctx context.Context, outfitID string) error {
	if err := s.store.DeleteOutfit(ctx, outfitID); err != nil {
		return err
	}
	s.logger.Info("outfit deleted", "outfit_id", outfitID)
	return nil
}

// Wear records that the outfit was worn now.
func (s *OutfitService) Wear(ctx context.Context, outfitID string) (*domain.WearRecord, error) {
	return s.store.RecordWear(ctx, outfitID)
}
