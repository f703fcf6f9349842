package store

import (
	"context"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	domainerrors "github.com/wardrobeapp/wardrobe-server/internal/errors"
)

// GetClothingItems returns every clothing item in insertion order.
func (s *Store) GetClothingItems(ctx context.Context) ([]domain.ClothingItem, error) {
	return s.Items.GetAll(ctx)
}

// GetClothingItem returns a single clothing item.
func (s *Store) GetClothingItem(ctx context.Context, id string) (*domain.ClothingItem, error) {
	item, err := s.Items.Find(ctx, id)
	if domainerrors.Is(err, domainerrors.ErrNotFound) {
		return nil, ErrItemNotFound
	}
	return item, err
}

// SaveClothingItems replaces the whole item collection.
func (s *Store) SaveClothingItems(ctx context.Context, items []domain.ClothingItem) error {
	return s.Items.SaveAll(ctx, items)
}

// AddClothingItem appends an item.
func (s *Store) AddClothingItem(ctx context.Context, item domain.ClothingItem) error {
	if err := s.Items.Add(ctx, item); err != nil {
		return err
	}
	s.logger.Debug("clothing item added", "item_id", item.ID)
	return nil
}

// UpdateClothingItem replaces the item with the given id. Unknown ids are ignored.
func (s *Store) UpdateClothingItem(ctx context.Context, id string, item domain.ClothingItem) error {
	return s.Items.Update(ctx, id, item)
}

// DeleteClothingItem removes the item with the given id. Outfits that reference
// it keep the dangling id; joins resolve it as absent.
func (s *Store) DeleteClothingItem(ctx context.Context, id string) error {
	return s.Items.Delete(ctx, id)
}
