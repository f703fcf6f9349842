// Package main provides a tool that prints the contents of a wardrobe store
// and checks that every outfit's lastWorn matches its latest wear record.
//
// It accepts the server's flags and environment:
//
//	go run ./cmd/dbinspect -data-path ~/Wardrobe/data -store-backend sqlite
//
// Stop the server first when inspecting a badger store; badger holds a
// directory lock.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/wardrobeapp/wardrobe-server/internal/config"
	"github.com/wardrobeapp/wardrobe-server/internal/di/providers"
	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	"github.com/wardrobeapp/wardrobe-server/internal/query"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
)

// keyTimestamper is implemented by backends that record per-key write times.
type keyTimestamper interface {
	UpdatedAt(ctx context.Context, key string) (time.Time, bool, error)
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

	fmt.Println("=== Wardrobe Inspection ===")
	fmt.Printf("Backend: %s (%s)\n", cfg.Store.Backend, cfg.Store.DataPath)

	problems, err := inspect(context.Background(), os.Stdout, kv, s)
	if err != nil {
		log.Fatalf("Inspection failed: %v", err)
	}
	if problems > 0 {
		os.Exit(1)
	}
}

// inspect writes the report to w and returns the number of lastWorn
// inconsistencies found.
func inspect(ctx context.Context, w io.Writer, kv store.KV, s *store.Store) (int, error) {
	fmt.Fprintln(w, "\nKeys:")
	for _, key := range store.Keys() {
		data, ok, err := kv.Read(ctx, key)
		if err != nil {
			return 0, fmt.Errorf("read %s: %w", key, err)
		}
		if !ok {
			fmt.Fprintf(w, "  %-24s missing\n", key)
			continue
		}
		line := fmt.Sprintf("  %-24s %d bytes", key, len(data))
		if ts, isTimestamped := kv.(keyTimestamper); isTimestamped {
			if updated, found, err := ts.UpdatedAt(ctx, key); err == nil && found {
				line += ", written " + updated.Format(time.RFC3339)
			}
		}
		fmt.Fprintln(w, line)
	}

	items, err := s.GetClothingItems(ctx)
	if err != nil {
		return 0, err
	}
	outfits, err := s.GetOutfits(ctx)
	if err != nil {
		return 0, err
	}
	history, err := s.GetWearHistory(ctx)
	if err != nil {
		return 0, err
	}

	dash := query.AggregateDashboard(items, outfits)
	fmt.Fprintf(w, "\nItems:    %d (%d favorites)\n", dash.TotalItems, dash.Favorites)
	for _, c := range domain.AllCategories() {
		fmt.Fprintf(w, "  %-10s %d\n", c, dash.ByCategory[c])
	}
	fmt.Fprintf(w, "Outfits:  %d\n", dash.TotalOutfits)
	fmt.Fprintf(w, "Wears:    %d\n\n", len(history))

	itemIDs := make(map[string]bool, len(items))
	for _, item := range items {
		itemIDs[item.ID] = true
	}

	unused := 0
	for _, item := range items {
		used := false
		for i := range outfits {
			if outfits[i].References(item.ID) {
				used = true
				break
			}
		}
		if !used {
			unused++
		}
	}
	fmt.Fprintf(w, "Items in no outfit: %d\n", unused)

	latest := make(map[string]time.Time)
	for _, rec := range history {
		if rec.Date.After(latest[rec.OutfitID]) {
			latest[rec.OutfitID] = rec.Date
		}
	}

	problems := 0
	for _, o := range outfits {
		for _, ref := range append([]string{o.TopID, o.BottomID, o.JacketID, o.ShoesID}, o.AccessoryIDs...) {
			if ref != "" && !itemIDs[ref] {
				fmt.Fprintf(w, "  outfit %s (%s): dangling item %s\n", o.ID, o.Name, ref)
			}
		}

		want, worn := latest[o.ID]
		switch {
		case !worn && o.LastWorn != nil:
			fmt.Fprintf(w, "  outfit %s (%s): lastWorn %s but no wear records\n", o.ID, o.Name, o.LastWorn.Format(time.RFC3339))
			problems++
		case worn && (o.LastWorn == nil || !o.LastWorn.Equal(want)):
			fmt.Fprintf(w, "  outfit %s (%s): lastWorn out of sync, latest wear %s\n", o.ID, o.Name, want.Format(time.RFC3339))
			problems++
		}
	}

	orphans := len(history) - len(query.JoinHistory(history, outfits))
	fmt.Fprintf(w, "\nWear records of deleted outfits: %d\n", orphans)

	if problems > 0 {
		fmt.Fprintf(w, "Found %d lastWorn inconsistencies\n", problems)
	} else {
		fmt.Fprintln(w, "lastWorn consistent with history")
	}
	return problems, nil
}
