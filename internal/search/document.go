// Package search provides fuzzy full-text search over the closet using Bleve.
// The index is derived data: it can always be rebuilt from the store.
package search

import (
	"github.com/wardrobeapp/wardrobe-server/internal/domain"
)

// ItemDocument is the indexed form of a clothing item.
type ItemDocument struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Color    string `json:"color,omitempty"`
	Notes    string `json:"notes,omitempty"`
	Category string `json:"category"`
	Style    string `json:"style"`
	Weather  string `json:"weather"`
	Favorite bool   `json:"favorite"`

	CreatedAt int64 `json:"created_at"` // Unix millis
}

// ItemToDocument converts a clothing item to its index document.
func ItemToDocument(item *domain.ClothingItem) *ItemDocument {
	return &ItemDocument{
		ID:        item.ID,
		Name:      item.Name,
		Color:     item.Color,
		Notes:     item.Notes,
		Category:  string(item.Category),
		Style:     string(item.Style),
		Weather:   string(item.Weather),
		Favorite:  item.IsFavorite,
		CreatedAt: item.CreatedAt.UnixMilli(),
	}
}

// ToMap converts the document to a map keyed by mapped field names.
// The photo is deliberately absent: data URLs can be megabytes.
func (d *ItemDocument) ToMap() map[string]any {
	m := map[string]any{
		"id":         d.ID,
		"name":       d.Name,
		"category":   d.Category,
		"style":      d.Style,
		"weather":    d.Weather,
		"favorite":   d.Favorite,
		"created_at": float64(d.CreatedAt),
	}
	if d.Color != "" {
		m["color"] = d.Color
	}
	if d.Notes != "" {
		m["notes"] = d.Notes
	}
	return m
}
