package store

import (
	"context"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	domainerrors "github.com/wardrobeapp/wardrobe-server/internal/errors"
)

// GetOutfits returns every outfit in insertion order.
func (s *Store) GetOutfits(ctx context.Context) ([]domain.Outfit, error) {
	return s.Outfits.GetAll(ctx)
}

// GetOutfit returns a single outfit.
func (s *Store) GetOutfit(ctx context.Context, id string) (*domain.Outfit, error) {
	outfit, err := s.Outfits.Find(ctx, id)
	if domainerrors.Is(err, domainerrors.ErrNotFound) {
		return nil, ErrOutfitNotFound
	}
	return outfit, err
}

// SaveOutfits replaces the whole outfit collection.
func (s *Store) SaveOutfits(ctx context.Context, outfits []domain.Outfit) error {
	return s.Outfits.SaveAll(ctx, outfits)
}

// AddOutfit appends an outfit.
func (s *Store) AddOutfit(ctx context.Context, outfit domain.Outfit) error {
	if outfit.AccessoryIDs == nil {
		outfit.AccessoryIDs = []string{}
	}
	if err := s.Outfits.Add(ctx, outfit); err != nil {
		return err
	}
	s.logger.Debug("outfit added", "outfit_id", outfit.ID)
	return nil
}

// UpdateOutfit replaces the outfit with the given id. Unknown ids are ignored.
func (s *Store) UpdateOutfit(ctx context.Context, id string, outfit domain.Outfit) error {
	if outfit.AccessoryIDs == nil {
		outfit.AccessoryIDs = []string{}
	}
	return s.Outfits.Update(ctx, id, outfit)
}

// DeleteOutfit removes the outfit with the given id. Its wear records stay in
// the history and drop out of joined history views.
func (s *Store) DeleteOutfit(ctx context.Context, id string) error {
	return s.Outfits.Delete(ctx, id)
}
