package query

import (
	"math"
	"time"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
)

// CategoryGroups buckets items by category for the outfit builder.
// Every known category is present, possibly with an empty slice.
type CategoryGroups map[domain.Category][]domain.ClothingItem

// GroupByCategory splits items by category, preserving source order within each
// bucket. Items with an unknown category are left out.
func GroupByCategory(items []domain.ClothingItem) CategoryGroups {
	groups := make(CategoryGroups, len(domain.AllCategories()))
	for _, c := range domain.AllCategories() {
		groups[c] = []domain.ClothingItem{}
	}
	for _, item := range items {
		if bucket, ok := groups[item.Category]; ok {
			groups[item.Category] = append(bucket, item)
		}
	}
	return groups
}

// DaysAgo returns the whole number of days elapsed between date and now,
// rounded down. Future dates give 0.
func DaysAgo(date, now time.Time) int {
	elapsed := now.Sub(date)
	if elapsed <= 0 {
		return 0
	}
	return int(math.Floor(elapsed.Hours() / 24))
}
