// Package main provides a tool to seed a wardrobe store with a sample closet,
// a few outfits and a month of wear history.
//
// It accepts the server's flags and environment:
//
//	go run ./cmd/seed -data-path /tmp/wardrobe
//
// Items go through the closet service, so they are validated and indexed.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/wardrobeapp/wardrobe-server/internal/config"
	"github.com/wardrobeapp/wardrobe-server/internal/di/providers"
	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	"github.com/wardrobeapp/wardrobe-server/internal/search"
	"github.com/wardrobeapp/wardrobe-server/internal/service"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
	"github.com/wardrobeapp/wardrobe-server/internal/validation"
)

// swatch renders a flat color as an inline SVG photo.
func swatch(hex string) string {
	return "data:image/svg+xml;utf8,<svg xmlns='http://www.w3.org/2000/svg' width='8' height='8'>" +
		"<rect width='8' height='8' fill='%23" + hex + "'/></svg>"
}

var sampleItems = []service.ItemRequest{
	{Name: "White Oxford Shirt", Category: domain.CategoryTop, Color: "White", Style: domain.StyleBusiness, Weather: domain.WeatherMild},
	{Name: "Striped Tee", Category: domain.CategoryTop, Color: "Navy", Style: domain.StyleCasual, Weather: domain.WeatherHot},
	{Name: "Merino Sweater", Category: domain.CategoryTop, Color: "Burgundy", Style: domain.StyleCasual, Weather: domain.WeatherCold},
	{Name: "Slim Chinos", Category: domain.CategoryBottom, Color: "Khaki", Style: domain.StyleBusiness, Weather: domain.WeatherMild},
	{Name: "Raw Denim Jeans", Category: domain.CategoryBottom, Color: "Indigo", Style: domain.StyleStreetwear, Weather: domain.WeatherMild},
	{Name: "Linen Shorts", Category: domain.CategoryBottom, Color: "Sand", Style: domain.StyleCasual, Weather: domain.WeatherHot},
	{Name: "Wool Overcoat", Category: domain.CategoryJacket, Color: "Charcoal", Style: domain.StyleFormal, Weather: domain.WeatherCold},
	{Name: "Denim Jacket", Category: domain.CategoryJacket, Color: "Light Blue", Style: domain.StyleStreetwear, Weather: domain.WeatherMild},
	{Name: "Leather Loafers", Category: domain.CategoryShoes, Color: "Brown", Style: domain.StyleBusiness, Weather: domain.WeatherMild},
	{Name: "White Sneakers", Category: domain.CategoryShoes, Color: "White", Style: domain.StyleSporty, Weather: domain.WeatherHot},
	{Name: "Steel Watch", Category: domain.CategoryAccessory, Color: "Silver", Style: domain.StyleBusiness, Weather: domain.WeatherMild},
	{Name: "Knit Beanie", Category: domain.CategoryAccessory, Color: "Grey", Style: domain.StyleCasual, Weather: domain.WeatherCold, Notes: "Hand wash only"},
}

var swatches = map[string]string{
	"White": "f5f5f0", "Navy": "1f2a44", "Burgundy": "6d1a36", "Khaki": "c3b091",
	"Indigo": "2e3a6e", "Sand": "d8c9a3", "Charcoal": "36454f", "Light Blue": "a7c7e7",
	"Brown": "6b4226", "Silver": "c0c0c0", "Grey": "8a8a8a",
}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	kv, err := providers.OpenKV(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	s := store.New(kv, logger)
	defer s.Close()

	var index *search.SearchIndex
	if cfg.Search.Enabled && cfg.Store.Backend != config.BackendMemory {
		index, err = search.NewSearchIndex(search.Options{DataPath: cfg.SearchIndexPath(), Logger: logger})
		if err != nil {
			log.Fatalf("Failed to open search index: %v", err)
		}
		defer index.Close()
	}

	ctx := context.Background()
	v := validation.New()
	closet := service.NewClosetService(s, service.NewSearchService(index, s, logger), v, logger)
	outfits := service.NewOutfitService(s, v, logger)

	fmt.Printf("Seeding %s store at %s\n", cfg.Store.Backend, cfg.Store.DataPath)

	ids := make(map[string]string, len(sampleItems))
	for _, req := range sampleItems {
		req.Photo = swatch(swatches[req.Color])
		item, err := closet.Create(ctx, req)
		if err != nil {
			log.Fatalf("Failed to add %q: %v", req.Name, err)
		}
		ids[item.Name] = item.ID
	}
	if _, err := closet.ToggleFavorite(ctx, ids["Raw Denim Jeans"]); err != nil {
		log.Fatalf("Failed to favorite: %v", err)
	}
	fmt.Printf("  %d items\n", len(sampleItems))

	looks := []service.OutfitRequest{
		{Name: "Office Monday", TopID: ids["White Oxford Shirt"], BottomID: ids["Slim Chinos"], ShoesID: ids["Leather Loafers"], AccessoryIDs: []string{ids["Steel Watch"]}},
		{Name: "Weekend Denim", TopID: ids["Striped Tee"], BottomID: ids["Raw Denim Jeans"], JacketID: ids["Denim Jacket"], ShoesID: ids["White Sneakers"]},
		{Name: "Winter Walk", TopID: ids["Merino Sweater"], BottomID: ids["Raw Denim Jeans"], JacketID: ids["Wool Overcoat"], AccessoryIDs: []string{ids["Knit Beanie"]}, Notes: "Add a scarf below freezing"},
		{Name: "Beach Day", TopID: ids["Striped Tee"], BottomID: ids["Linen Shorts"], ShoesID: ids["White Sneakers"]},
	}

	outfitIDs := make([]string, 0, len(looks))
	for _, req := range looks {
		o, err := outfits.Create(ctx, req)
		if err != nil {
			log.Fatalf("Failed to create outfit %q: %v", req.Name, err)
		}
		outfitIDs = append(outfitIDs, o.ID)
	}
	fmt.Printf("  %d outfits\n", len(outfitIDs))

	// One wear every other day over the past month, oldest first so lastWorn
	// ends on the most recent date.
	rng := rand.New(rand.NewPCG(42, 7))
	now := time.Now()
	wears := 0
	for day := 30; day > 0; day -= 2 {
		at := now.AddDate(0, 0, -day).Add(time.Duration(rng.IntN(12)) * time.Hour)
		if _, err := s.RecordWearAt(ctx, outfitIDs[rng.IntN(len(outfitIDs))], at); err != nil {
			log.Fatalf("Failed to record wear: %v", err)
		}
		wears++
	}
	fmt.Printf("  %d wear records\n", wears)
}
