package query

import (
	"slices"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
)

// OutfitItems is an outfit with its slot references resolved.
// A nil slot means the slot is unset or points at a deleted item.
type OutfitItems struct {
	Top         *domain.ClothingItem  `json:"top,omitempty"`
	Bottom      *domain.ClothingItem  `json:"bottom,omitempty"`
	Jacket      *domain.ClothingItem  `json:"jacket,omitempty"`
	Shoes       *domain.ClothingItem  `json:"shoes,omitempty"`
	Accessories []domain.ClothingItem `json:"accessories"`
}

// JoinedOutfit pairs an outfit with its resolved items.
type JoinedOutfit struct {
	domain.Outfit
	Items OutfitItems `json:"items"`
}

// HistoryEntry is a wear record with the outfit it refers to.
type HistoryEntry struct {
	Record domain.WearRecord `json:"record"`
	Outfit domain.Outfit     `json:"outfit"`
}

// itemIndex maps id to the first item carrying it.
type itemIndex map[string]*domain.ClothingItem

func indexItems(items []domain.ClothingItem) itemIndex {
	idx := make(itemIndex, len(items))
	for i := range items {
		if _, seen := idx[items[i].ID]; !seen {
			idx[items[i].ID] = &items[i]
		}
	}
	return idx
}

// lookup returns a copy of the item, or nil.
func (idx itemIndex) lookup(id string) *domain.ClothingItem {
	if id == "" {
		return nil
	}
	item, ok := idx[id]
	if !ok {
		return nil
	}
	c := *item
	return &c
}

func (idx itemIndex) join(outfit domain.Outfit) OutfitItems {
	joined := OutfitItems{
		Top:         idx.lookup(outfit.TopID),
		Bottom:      idx.lookup(outfit.BottomID),
		Jacket:      idx.lookup(outfit.JacketID),
		Shoes:       idx.lookup(outfit.ShoesID),
		Accessories: make([]domain.ClothingItem, 0, len(outfit.AccessoryIDs)),
	}
	for _, id := range outfit.AccessoryIDs {
		if item := idx.lookup(id); item != nil {
			joined.Accessories = append(joined.Accessories, *item)
		}
	}
	return joined
}

// JoinOutfitItems resolves the outfit's references against items.
// Dangling references resolve to nil; dangling accessories are dropped and the
// rest keep their order.
func JoinOutfitItems(outfit domain.Outfit, items []domain.ClothingItem) OutfitItems {
	return indexItems(items).join(outfit)
}

// JoinOutfits resolves every outfit, preserving order.
func JoinOutfits(outfits []domain.Outfit, items []domain.ClothingItem) []JoinedOutfit {
	idx := indexItems(items)
	out := make([]JoinedOutfit, 0, len(outfits))
	for _, outfit := range outfits {
		out = append(out, JoinedOutfit{Outfit: outfit, Items: idx.join(outfit)})
	}
	return out
}

// JoinHistory pairs each record with its outfit, dropping records whose outfit
// no longer exists, and orders the result most recent first. Records with equal
// dates keep their relative order.
func JoinHistory(records []domain.WearRecord, outfits []domain.Outfit) []HistoryEntry {
	byID := make(map[string]int, len(outfits))
	for i := range outfits {
		if _, seen := byID[outfits[i].ID]; !seen {
			byID[outfits[i].ID] = i
		}
	}

	out := make([]HistoryEntry, 0, len(records))
	for _, record := range records {
		i, ok := byID[record.OutfitID]
		if !ok {
			continue
		}
		out = append(out, HistoryEntry{Record: record, Outfit: outfits[i]})
	}

	slices.SortStableFunc(out, func(a, b HistoryEntry) int {
		return b.Record.Date.Compare(a.Record.Date)
	})
	return out
}
