package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	domainerrors "github.com/wardrobeapp/wardrobe-server/internal/errors"
	"github.com/wardrobeapp/wardrobe-server/internal/id"
	"github.com/wardrobeapp/wardrobe-server/internal/query"
	"github.com/wardrobeapp/wardrobe-server/internal/search"
)

func blueJacket() CreateItemRequest {
	return CreateItemRequest{
		Photo:    testPhoto,
		Name:     "Blue Jacket",
		Category: domain.CategoryJacket,
		Style:    domain.StyleCasual,
		Weather:  domain.WeatherCold,
	}
}

func TestClosetService_CreateAndToggleFavorite(t *testing.T) {
	env := setupTestServices(t, false)
	ctx := context.Background()

	created, err := env.closet.Create(ctx, blueJacket())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(created.ID, id.PrefixItem+"-"))
	assert.False(t, created.IsFavorite)
	assert.Equal(t, env.clock.now, created.CreatedAt)

	items, err := env.store.GetClothingItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Blue Jacket", items[0].Name)
	assert.Equal(t, created.ID, items[0].ID)

	toggled, err := env.closet.ToggleFavorite(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsFavorite)

	after, err := env.store.GetClothingItem(ctx, created.ID)
	require.NoError(t, err)
	want := items[0]
	want.IsFavorite = true
	assert.Equal(t, want, *after)
}

func TestClosetService_CreateAppliesDefaults(t *testing.T) {
	env := setupTestServices(t, false)

	item, err := env.closet.Create(context.Background(), CreateItemRequest{Photo: testPhoto, Name: "  Plain Tee  "})
	require.NoError(t, err)

	assert.Equal(t, "Plain Tee", item.Name)
	assert.Equal(t, domain.CategoryTop, item.Category)
	assert.Equal(t, domain.StyleCasual, item.Style)
	assert.Equal(t, domain.WeatherMild, item.Weather)
}

func TestClosetService_ValidationFailsBeforeStore(t *testing.T) {
	tests := []struct {
		name string
		req  CreateItemRequest
	}{
		{"missing name", CreateItemRequest{Photo: testPhoto}},
		{"blank name", CreateItemRequest{Photo: testPhoto, Name: "   "}},
		{"missing photo", CreateItemRequest{Name: "Tee"}},
		{"bad category", CreateItemRequest{Photo: testPhoto, Name: "Tee", Category: "hat"}},
		{"bad weather", CreateItemRequest{Photo: testPhoto, Name: "Tee", Weather: "rainy"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := setupTestServices(t, false)

			_, err := env.closet.Create(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
			assert.Zero(t, env.kv.reads.Load())
			assert.Zero(t, env.kv.writes.Load())
		})
	}
}

func TestClosetService_UpdatePreservesIdentity(t *testing.T) {
	env := setupTestServices(t, false)
	ctx := context.Background()

	created, err := env.closet.Create(ctx, blueJacket())
	require.NoError(t, err)
	_, err = env.closet.ToggleFavorite(ctx, created.ID)
	require.NoError(t, err)

	env.clock.Advance(48 * time.Hour)

	req := blueJacket()
	req.Name = "Navy Jacket"
	req.Color = "navy"
	updated, err := env.closet.Update(ctx, created.ID, req)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.True(t, updated.IsFavorite)
	assert.Equal(t, "Navy Jacket", updated.Name)
	assert.Equal(t, "navy", updated.Color)
}

func TestClosetService_UpdateUnknownWritesNothing(t *testing.T) {
	env := setupTestServices(t, false)

	_, err := env.closet.Update(context.Background(), "item-missing", blueJacket())
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Zero(t, env.kv.writes.Load())
}

func TestClosetService_ToggleFavoriteUnknown(t *testing.T) {
	env := setupTestServices(t, false)

	_, err := env.closet.ToggleFavorite(context.Background(), "item-missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestClosetService_DeleteUnknownIsNoop(t *testing.T) {
	env := setupTestServices(t, false)

	assert.NoError(t, env.closet.Delete(context.Background(), "item-missing"))
	assert.Zero(t, env.kv.writes.Load())
}

func TestClosetService_List(t *testing.T) {
	env := setupTestServices(t, false)
	ctx := context.Background()

	_, err := env.closet.Create(ctx, blueJacket())
	require.NoError(t, err)
	_, err = env.closet.Create(ctx, CreateItemRequest{Photo: testPhoto, Name: "Linen Shirt", Weather: domain.WeatherHot})
	require.NoError(t, err)

	cold, err := env.closet.List(ctx, query.ClosetCriteria{Weather: domain.WeatherCold})
	require.NoError(t, err)
	require.Len(t, cold, 1)
	assert.Equal(t, "Blue Jacket", cold[0].Name)

	all, err := env.closet.List(ctx, query.ClosetCriteria{Category: query.All})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestClosetService_SearchWithIndex(t *testing.T) {
	env := setupTestServices(t, true)
	ctx := context.Background()

	jacket, err := env.closet.Create(ctx, blueJacket())
	require.NoError(t, err)
	_, err = env.closet.Create(ctx, CreateItemRequest{Photo: testPhoto, Name: "White Tee"})
	require.NoError(t, err)

	found, err := env.closet.Search(ctx, search.SearchParams{Query: "jackt"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, jacket.ID, found[0].ID)

	require.NoError(t, env.closet.Delete(ctx, jacket.ID))

	found, err = env.closet.Search(ctx, search.SearchParams{Query: "jacket"})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestClosetService_SearchWithoutIndexFallsBack(t *testing.T) {
	env := setupTestServices(t, false)
	ctx := context.Background()

	_, err := env.closet.Create(ctx, blueJacket())
	require.NoError(t, err)

	found, err := env.closet.Search(ctx, search.SearchParams{Query: "JACK"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.False(t, env.search.Enabled())
}

func TestClosetService_SearchPagination(t *testing.T) {
	for _, withIndex := range []bool{true, false} {
		env := setupTestServices(t, withIndex)
		ctx := context.Background()

		for _, name := range []string{"Shirt A", "Shirt B", "Shirt C"} {
			req := blueJacket()
			req.Name = name
			req.Category = domain.CategoryTop
			_, err := env.closet.Create(ctx, req)
			require.NoError(t, err)
		}

		page1, err := env.closet.Search(ctx, search.SearchParams{Query: "shirt", Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page1, 2, "index=%v", withIndex)

		page2, err := env.closet.Search(ctx, search.SearchParams{Query: "shirt", Limit: 2, Offset: 2})
		require.NoError(t, err)
		require.Len(t, page2, 1, "index=%v", withIndex)
		for _, item := range page1 {
			assert.NotEqual(t, item.ID, page2[0].ID, "index=%v", withIndex)
		}

		past, err := env.closet.Search(ctx, search.SearchParams{Query: "shirt", Limit: 2, Offset: 10})
		require.NoError(t, err)
		assert.Empty(t, past, "index=%v", withIndex)
	}
}

func TestSearchService_ReindexIfStale(t *testing.T) {
	env := setupTestServices(t, true)
	ctx := context.Background()

	// Items written straight to the store bypass the index.
	require.NoError(t, env.store.AddClothingItem(ctx, domain.ClothingItem{ID: "item-1", Name: "Wool Scarf", Category: domain.CategoryAccessory}))

	found, err := env.search.Search(ctx, search.SearchParams{Query: "scarf"})
	require.NoError(t, err)
	assert.Empty(t, found)

	require.NoError(t, env.search.ReindexIfStale(ctx))

	found, err = env.search.Search(ctx, search.SearchParams{Query: "scarf"})
	require.NoError(t, err)
	require.Len(t, found, 1)
}

func TestSearchService_ReindexIfStaleCatchesUpPartialIndex(t *testing.T) {
	env := setupTestServices(t, true)
	ctx := context.Background()

	_, err := env.closet.Create(ctx, blueJacket())
	require.NoError(t, err)
	require.NoError(t, env.store.AddClothingItem(ctx, domain.ClothingItem{ID: "item-2", Name: "Wool Scarf", Category: domain.CategoryAccessory}))

	count, err := env.search.DocumentCount()
	require.NoError(t, err)
	require.Equal(t, uint64(1), count)

	require.NoError(t, env.search.ReindexIfStale(ctx))

	count, err = env.search.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), count)

	found, err := env.search.Search(ctx, search.SearchParams{Query: "scarf"})
	require.NoError(t, err)
	require.Len(t, found, 1)
}

func TestSearchService_ReindexIfStaleLeavesCurrentIndex(t *testing.T) {
	env := setupTestServices(t, true)
	ctx := context.Background()

	_, err := env.closet.Create(ctx, blueJacket())
	require.NoError(t, err)

	require.NoError(t, env.search.ReindexIfStale(ctx))

	count, err := env.search.DocumentCount()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), count)
}

func TestSearchService_Reindex(t *testing.T) {
	env := setupTestServices(t, true)
	ctx := context.Background()

	item, err := env.closet.Create(ctx, blueJacket())
	require.NoError(t, err)
	require.NoError(t, env.store.DeleteClothingItem(ctx, item.ID))

	require.NoError(t, env.search.Reindex(ctx))

	count, err := env.search.DocumentCount()
	require.NoError(t, err)
	assert.Zero(t, count)
}
