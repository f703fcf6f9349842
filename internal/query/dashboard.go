package query

import "github.com/wardrobeapp/wardrobe-server/internal/domain"

// Dashboard summarizes the wardrobe.
type Dashboard struct {
	TotalItems   int                     `json:"totalItems"`
	TotalOutfits int                     `json:"totalOutfits"`
	Favorites    int                     `json:"favorites"`
	ByCategory   map[domain.Category]int `json:"byCategory"`
	ByWeather    map[domain.Weather]int  `json:"byWeather"`
}

// AggregateDashboard counts items and outfits. Category and weather tables
// include only values that occur.
func AggregateDashboard(items []domain.ClothingItem, outfits []domain.Outfit) Dashboard {
	d := Dashboard{
		TotalItems:   len(items),
		TotalOutfits: len(outfits),
		ByCategory:   make(map[domain.Category]int),
		ByWeather:    make(map[domain.Weather]int),
	}
	for _, item := range items {
		d.ByCategory[item.Category]++
		d.ByWeather[item.Weather]++
		if item.IsFavorite {
			d.Favorites++
		}
	}
	return d
}
