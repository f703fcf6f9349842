package service

import (
	"context"
	"log/slog"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	"github.com/wardrobeapp/wardrobe-server/internal/query"
	"github.com/wardrobeapp/wardrobe-server/internal/search"
	"github.com/wardrobeapp/wardrobe-server/internal/store"
)

// SearchService bridges the closet search index with the store.
// A nil index disables full-text search; Search then falls back to the
// substring filter over item names.
type SearchService struct {
	index  *search.SearchIndex
	store  *store.Store
	logger *slog.Logger
}

// NewSearchService creates a new search service. index may be nil.
func NewSearchService(index *search.SearchIndex, store *store.Store, logger *slog.Logger) *SearchService {
	return &SearchService{
		index:  index,
		store:  store,
		logger: logger,
	}
}

// Enabled reports whether a search index is attached.
func (s *SearchService) Enabled() bool {
	return s.index != nil
}

// Search returns the items matching params, most relevant first.
// Ids the index still holds for deleted items are skipped.
func (s *SearchService) Search(ctx context.Context, params search.SearchParams) ([]domain.ClothingItem, error) {
	items, err := s.store.GetClothingItems(ctx)
	if err != nil {
		return nil, err
	}

	if s.index == nil {
		matched := query.FilterCloset(items, query.ClosetCriteria{
			Query:         params.Query,
			Category:      domain.Category(params.Category),
			Style:         domain.Style(params.Style),
			Weather:       domain.Weather(params.Weather),
			FavoritesOnly: params.FavoritesOnly,
		})
		limit := params.Limit
		if limit <= 0 {
			limit = search.DefaultLimit
		}
		start := min(max(params.Offset, 0), len(matched))
		return matched[start:min(start+limit, len(matched))], nil
	}

	result, err := s.index.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(items))
	for i := range items {
		byID[items[i].ID] = i
	}

	out := make([]domain.ClothingItem, 0, len(result.Hits))
	for _, id := range result.IDs() {
		if i, ok := byID[id]; ok {
			out = append(out, items[i])
		}
	}
	return out, nil
}

// IndexItem indexes a single item. Failures are logged, not returned.
func (s *SearchService) IndexItem(item *domain.ClothingItem) {
	if s.index == nil {
		return
	}
	if err := s.index.IndexItem(item); err != nil {
		s.logger.Warn("failed to index item", "item_id", item.ID, "error", err)
		return
	}
	s.logger.Debug("indexed item", "item_id", item.ID, "name", item.Name)
}

// RemoveItem drops an item from the index. Failures are logged, not returned.
func (s *SearchService) RemoveItem(id string) {
	if s.index == nil {
		return
	}
	if err := s.index.DeleteItem(id); err != nil {
		s.logger.Warn("failed to remove item from index", "item_id", id, "error", err)
	}
}

// Reindex rebuilds the index from the store.
func (s *SearchService) Reindex(ctx context.Context) error {
	if s.index == nil {
		return nil
	}
	items, err := s.store.GetClothingItems(ctx)
	if err != nil {
		return err
	}
	return s.index.Rebuild(items)
}

// ReindexIfStale rebuilds the index when its document count differs from the
// closet size, as after a first start, a mapping change or a failed index write.
func (s *SearchService) ReindexIfStale(ctx context.Context) error {
	if s.index == nil {
		return nil
	}
	count, err := s.index.DocumentCount()
	if err != nil {
		return err
	}

	items, err := s.store.GetClothingItems(ctx)
	if err != nil {
		return err
	}
	if count == uint64(len(items)) {
		return nil
	}

	s.logger.Info("search index out of date, rebuilding", "documents", count, "items", len(items))
	return s.Reindex(ctx)
}

// DocumentCount returns the number of indexed items, or 0 when disabled.
func (s *SearchService) DocumentCount() (uint64, error) {
	if s.index == nil {
		return 0, nil
	}
	return s.index.DocumentCount()
}
