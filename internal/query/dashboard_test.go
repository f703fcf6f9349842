package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
)

func TestAggregateDashboard(t *testing.T) {
	outfits := []domain.Outfit{{ID: "o1"}, {ID: "o2"}}

	d := AggregateDashboard(closet(), outfits)

	assert.Equal(t, 5, d.TotalItems)
	assert.Equal(t, 2, d.TotalOutfits)
	assert.Equal(t, 2, d.Favorites)
	assert.Equal(t, map[domain.Category]int{
		domain.CategoryJacket: 2,
		domain.CategoryTop:    1,
		domain.CategoryBottom: 1,
		domain.CategoryShoes:  1,
	}, d.ByCategory)
	assert.Equal(t, map[domain.Weather]int{
		domain.WeatherCold: 2,
		domain.WeatherHot:  1,
		domain.WeatherMild: 2,
	}, d.ByWeather)
}

func TestAggregateDashboard_Empty(t *testing.T) {
	d := AggregateDashboard(nil, nil)

	assert.Zero(t, d.TotalItems)
	assert.Zero(t, d.TotalOutfits)
	assert.Empty(t, d.ByCategory)
	assert.Empty(t, d.ByWeather)
}

func TestGroupByCategory(t *testing.T) {
	groups := GroupByCategory(closet())

	assert.Len(t, groups, len(domain.AllCategories()))
	assert.Equal(t, []string{"i1", "i4"}, ids(groups[domain.CategoryJacket]))
	assert.Equal(t, []string{"i2"}, ids(groups[domain.CategoryTop]))
	assert.Empty(t, groups[domain.CategoryAccessory])
	assert.NotNil(t, groups[domain.CategoryAccessory])
}

func TestDaysAgo(t *testing.T) {
	now := time.Date(2026, 10, 18, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"same instant", now, 0},
		{"few hours", now.Add(-5 * time.Hour), 0},
		{"just under two days", now.Add(-47 * time.Hour), 1},
		{"exactly a week", now.AddDate(0, 0, -7), 7},
		{"future", now.Add(time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysAgo(tt.date, now))
		})
	}
}
