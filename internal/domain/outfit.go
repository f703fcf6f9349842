package domain

import (
	"slices"
	"time"
)

// Outfit is a named combination of clothing items.
// Slot fields hold weak references: the referenced item may have been deleted.
type Outfit struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	TopID        string     `json:"topId,omitempty"`
	BottomID     string     `json:"bottomId,omitempty"`
	JacketID     string     `json:"jacketId,omitempty"`
	ShoesID      string     `json:"shoesId,omitempty"`
	AccessoryIDs []string   `json:"accessoryIds"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastWorn     *time.Time `json:"lastWorn,omitempty"` // Written only by wear recording
}

// HasBaseLayer reports whether the outfit has at least a top or a bottom.
func (o *Outfit) HasBaseLayer() bool {
	return o.TopID != "" || o.BottomID != ""
}

// ToggleAccessory removes itemID from the accessories if present, otherwise appends it.
// Duplicate entries are all removed. Returns true if the accessory is now selected.
func (o *Outfit) ToggleAccessory(itemID string) bool {
	if slices.Contains(o.AccessoryIDs, itemID) {
		o.AccessoryIDs = slices.DeleteFunc(o.AccessoryIDs, func(id string) bool {
			return id == itemID
		})
		return false
	}
	o.AccessoryIDs = append(o.AccessoryIDs, itemID)
	return true
}

// References reports whether the outfit points at itemID in any slot.
func (o *Outfit) References(itemID string) bool {
	if itemID == "" {
		return false
	}
	switch itemID {
	case o.TopID, o.BottomID, o.JacketID, o.ShoesID:
		return true
	}
	return slices.Contains(o.AccessoryIDs, itemID)
}
