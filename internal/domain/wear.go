package domain

import "time"

// WearRecord logs that an outfit was worn. Records are never mutated or deleted.
type WearRecord struct {
	ID       string    `json:"id"`
	OutfitID string    `json:"outfitId"`
	Date     time.Time `json:"date"`
}
