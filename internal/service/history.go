package service

import (
	"context"

	"github.com/wardrobeapp/wardrobe-server/internal/query"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
)

// HistoryEntry is a joined wear record with the days elapsed since it.
type HistoryEntry struct {
	query.HistoryEntry
	DaysAgo int `json:"daysAgo"`
}

// HistoryService reads the wear history.
type HistoryService struct {
	store *store.Store
}

// NewHistoryService creates a new history service.
func NewHistoryService(store *store.Store) *HistoryService {
	return &HistoryService{store: store}
}

// List returns wear records of existing outfits, most recent first.
func (s *HistoryService) List(ctx context.Context) ([]HistoryEntry, error) {
	records, err := s.store.GetWearHistory(ctx)
	if err != nil {
		return nil, err
	}
	outfits, err := s.store.GetOutfits(ctx)
	if err != nil {
		return nil, err
	}

	now := s.store.Now()
	joined := query.JoinHistory(records, outfits)
	out := make([]HistoryEntry, len(joined))
	for i, entry := range joined {
		out[i] = HistoryEntry{
			HistoryEntry: entry,
			DaysAgo:      query.DaysAgo(entry.Record.Date, now),
		}
	}
	return out, nil
}
