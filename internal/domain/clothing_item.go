package domain

import "time"

// Category is the wardrobe slot a clothing item fills.
type Category string

// Clothing categories.
const (
	CategoryTop       Category = "top"
	CategoryBottom    Category = "bottom"
	CategoryJacket    Category = "jacket"
	CategoryShoes     Category = "shoes"
	CategoryAccessory Category = "accessory"
)

// AllCategories returns every category in display order.
func AllCategories() []Category {
	return []Category{CategoryTop, CategoryBottom, CategoryJacket, CategoryShoes, CategoryAccessory}
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryTop, CategoryBottom, CategoryJacket, CategoryShoes, CategoryAccessory:
		return true
	}
	return false
}

// Style describes the look of a clothing item.
type Style string

// Clothing styles.
const (
	StyleCasual     Style = "casual"
	StyleStreetwear Style = "streetwear"
	StyleFormal     Style = "formal"
	StyleSporty     Style = "sporty"
	StyleBusiness   Style = "business"
	StyleBohemian   Style = "bohemian"
)

// AllStyles returns every style in display order.
func AllStyles() []Style {
	return []Style{StyleCasual, StyleStreetwear, StyleFormal, StyleSporty, StyleBusiness, StyleBohemian}
}

// Valid reports whether s is a known style.
func (s Style) Valid() bool {
	switch s {
	case StyleCasual, StyleStreetwear, StyleFormal, StyleSporty, StyleBusiness, StyleBohemian:
		return true
	}
	return false
}

// Weather is the conditions a clothing item suits.
type Weather string

// Weather conditions.
const (
	WeatherHot  Weather = "hot"
	WeatherMild Weather = "mild"
	WeatherCold Weather = "cold"
)

// AllWeather returns every weather value in display order.
func AllWeather() []Weather {
	return []Weather{WeatherHot, WeatherMild, WeatherCold}
}

// Valid reports whether w is a known weather value.
func (w Weather) Valid() bool {
	switch w {
	case WeatherHot, WeatherMild, WeatherCold:
		return true
	}
	return false
}

// ClothingItem is a single piece in the wardrobe.
// Photo is an opaque reference: either an inline data URL or a remote URL.
type ClothingItem struct {
	ID         string    `json:"id"`
	Photo      string    `json:"photo"`
	Name       string    `json:"name"`
	Category   Category  `json:"category"`
	Color      string    `json:"color"`
	Style      Style     `json:"style"`
	Weather    Weather   `json:"weather"`
	Notes      string    `json:"notes,omitempty"`
	IsFavorite bool      `json:"isFavorite"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ToggleFavorite flips the favorite flag and returns the new value.
func (c *ClothingItem) ToggleFavorite() bool {
	c.IsFavorite = !c.IsFavorite
	return c.IsFavorite
}
