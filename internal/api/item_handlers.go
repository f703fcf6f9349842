package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/wardrobeapp/wardrobe-server/internal/api/dto"
	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	"github.com/wardrobeapp/wardrobe-server/internal/query"
	"github.com/wardrobeapp/wardrobe-server/internal/search"
	"github.com/wardrobeapp/wardrobe-server/internal/service"
)

func (s *Server) registerItemRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listItems",
		Method:      http.MethodGet,
		Path:        "/api/v1/items",
		Summary:     "List clothing items",
		Description: "Returns the closet filtered by name, category, style, weather, color and favorites",
		Tags:        []string{"Closet"},
	}, s.handleListItems)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createItem",
		Method:        http.MethodPost,
		Path:          "/api/v1/items",
		Summary:       "Add clothing item",
		Description:   "Adds an item to the closet. Unset category, style and weather default to top, casual and mild",
		Tags:          []string{"Closet"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchItems",
		Method:      http.MethodGet,
		Path:        "/api/v1/items/search",
		Summary:     "Search clothing items",
		Description: "Ranked full-text search over names, colors and notes",
		Tags:        []string{"Closet"},
	}, s.handleSearchItems)

	huma.Register(s.api, huma.Operation{
		OperationID: "getItem",
		Method:      http.MethodGet,
		Path:        "/api/v1/items/{id}",
		Summary:     "Get clothing item",
		Tags:        []string{"Closet"},
	}, s.handleGetItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateItem",
		Method:      http.MethodPut,
		Path:        "/api/v1/items/{id}",
		Summary:     "Update clothing item",
		Description: "Replaces the editable fields. The favorite flag and creation time are kept",
		Tags:        []string{"Closet"},
	}, s.handleUpdateItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteItem",
		Method:      http.MethodDelete,
		Path:        "/api/v1/items/{id}",
		Summary:     "Delete clothing item",
		Description: "Removes the item. Outfits referencing it show the slot as empty",
		Tags:        []string{"Closet"},
	}, s.handleDeleteItem)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleFavorite",
		Method:      http.MethodPost,
		Path:        "/api/v1/items/{id}/favorite",
		Summary:     "Toggle favorite",
		Tags:        []string{"Closet"},
	}, s.handleToggleFavorite)
}

// === DTOs ===

// ListItemsInput contains the closet filters.
type ListItemsInput struct {
	Query     string `query:"q" doc:"Case-insensitive name substring"`
	Category  string `query:"category" default:"all" doc:"Category or all"`
	Style     string `query:"style" default:"all" doc:"Style or all"`
	Weather   string `query:"weather" default:"all" doc:"Weather or all"`
	Color     string `query:"color" doc:"Case-insensitive color substring"`
	Favorites bool   `query:"favorites" doc:"Only favorites"`
}

// ItemListOutput wraps a list of items for Huma.
type ItemListOutput struct {
	Body dto.ListResponse[domain.ClothingItem]
}

// SearchItemsInput contains search parameters.
type SearchItemsInput struct {
	Query     string `query:"q" doc:"Search text"`
	Category  string `query:"category" doc:"Category filter"`
	Style     string `query:"style" doc:"Style filter"`
	Weather   string `query:"weather" doc:"Weather filter"`
	Favorites bool   `query:"favorites" doc:"Only favorites"`
	Limit     int    `query:"limit" default:"20" minimum:"1" maximum:"100" doc:"Max results"`
	Offset    int    `query:"offset" minimum:"0" doc:"Pagination offset"`
}

// ItemInput wraps an item body for Huma.
type ItemInput struct {
	Body service.ItemRequest
}

// UpdateItemInput wraps the item update for Huma.
type UpdateItemInput struct {
	ID   string `path:"id" doc:"Item ID"`
	Body service.ItemRequest
}

// ItemOutput wraps an item for Huma.
type ItemOutput struct {
	Body domain.ClothingItem
}

// DeleteOutput is the response for deletes.
type DeleteOutput struct {
	Body dto.MessageResponse
}

// === Handlers ===

func (s *Server) handleListItems(ctx context.Context, input *ListItemsInput) (*ItemListOutput, error) {
	items, err := s.services.Closet.List(ctx, query.ClosetCriteria{
		Query:         input.Query,
		Category:      domain.Category(input.Category),
		Style:         domain.Style(input.Style),
		Weather:       domain.Weather(input.Weather),
		Color:         input.Color,
		FavoritesOnly: input.Favorites,
	})
	if err != nil {
		return nil, err
	}
	return &ItemListOutput{Body: dto.NewListResponse(items)}, nil
}

func (s *Server) handleCreateItem(ctx context.Context, input *ItemInput) (*ItemOutput, error) {
	item, err := s.services.Closet.Create(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &ItemOutput{Body: *item}, nil
}

func (s *Server) handleSearchItems(ctx context.Context, input *SearchItemsInput) (*ItemListOutput, error) {
	items, err := s.services.Closet.Search(ctx, search.SearchParams{
		Query:         input.Query,
		Category:      input.Category,
		Style:         input.Style,
		Weather:       input.Weather,
		FavoritesOnly: input.Favorites,
		Limit:         input.Limit,
		Offset:        input.Offset,
	})
	if err != nil {
		return nil, err
	}
	return &ItemListOutput{Body: dto.NewListResponse(items)}, nil
}

func (s *Server) handleGetItem(ctx context.Context, input *dto.IDParam) (*ItemOutput, error) {
	item, err := s.services.Closet.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &ItemOutput{Body: *item}, nil
}

func (s *Server) handleUpdateItem(ctx context.Context, input *UpdateItemInput) (*ItemOutput, error) {
	item, err := s.services.Closet.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &ItemOutput{Body: *item}, nil
}

func (s *Server) handleDeleteItem(ctx context.Context, input *dto.IDParam) (*DeleteOutput, error) {
	if err := s.services.Closet.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{Body: dto.MessageResponse{Message: "Item deleted"}}, nil
}

func (s *Server) handleToggleFavorite(ctx context.Context, input *dto.IDParam) (*ItemOutput, error) {
	item, err := s.services.Closet.ToggleFavorite(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &ItemOutput{Body: *item}, nil
}
