// Package query holds the pure read-side functions over wardrobe collections:
// the closet filter, outfit and history joins, and dashboard aggregation.
// Nothing here touches the store; callers pass in already loaded slices.
package query

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
)

// All disables an enum filter, as does the empty string.
const All = "all"

// ClosetCriteria selects clothing items. Zero values are inactive.
type ClosetCriteria struct {
	Query         string
	Category      domain.Category
	Style         domain.Style
	Weather       domain.Weather
	Color         string
	FavoritesOnly bool
}

// FilterCloset returns the items matching every active criterion, in source order.
// items is not modified.
func FilterCloset(items []domain.ClothingItem, c ClosetCriteria) []domain.ClothingItem {
	folder := cases.Fold()
	query := fold(folder, c.Query)
	color := fold(folder, c.Color)

	out := make([]domain.ClothingItem, 0, len(items))
	for _, item := range items {
		if query != "" && !strings.Contains(fold(folder, item.Name), query) {
			continue
		}
		if active(string(c.Category)) && item.Category != c.Category {
			continue
		}
		if active(string(c.Style)) && item.Style != c.Style {
			continue
		}
		if active(string(c.Weather)) && item.Weather != c.Weather {
			continue
		}
		if color != "" && !strings.Contains(fold(folder, item.Color), color) {
			continue
		}
		if c.FavoritesOnly && !item.IsFavorite {
			continue
		}
		out = append(out, item)
	}
	return out
}

func active(v string) bool {
	return v != "" && v != All
}

// fold case-folds s after NFC normalization so that composed and decomposed
// accents compare equal.
func fold(c cases.Caser, s string) string {
	if s == "" {
		return ""
	}
	return c.String(norm.NFC.String(s))
}
