package store

// Collection keys. Each holds one JSON array.
const (
	KeyClothingItems = "wardrobe_clothing_items"
	KeyOutfits       = "wardrobe_outfits"
	KeyWearHistory   = "wardrobe_wear_history"
)

// Keys lists every collection key.
func Keys() []string {
	return []string{KeyClothingItems, KeyOutfits, KeyWearHistory}
}
