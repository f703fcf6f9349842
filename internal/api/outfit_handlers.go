package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/wardrobeapp/wardrobe-server/internal/api/dto"
	"github.com/wardrobeapp/wardrobe-server/internal/domain"
	"github.com/wardrobeapp/wardrobe-server/internal/query"
	"github.com/wardrobeapp/wardrobe-server/internal/service"
)

func (s *Server) registerOutfitRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listOutfits",
		Method:      http.MethodGet,
		Path:        "/api/v1/outfits",
		Summary:     "List outfits",
		Description: "Returns every outfit with its items resolved. Deleted items resolve to null",
		Tags:        []string{"Outfits"},
	}, s.handleListOutfits)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createOutfit",
		Method:        http.MethodPost,
		Path:          "/api/v1/outfits",
		Summary:       "Create outfit",
		Description:   "Creates an outfit. A top or a bottom is required",
		Tags:          []string{"Outfits"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateOutfit)

	huma.Register(s.api, huma.Operation{
		OperationID: "outfitBuilder",
		Method:      http.MethodGet,
		Path:        "/api/v1/outfits/builder",
		Summary:     "Outfit builder",
		Description: "Returns the closet grouped by category",
		Tags:        []string{"Outfits"},
	}, s.handleOutfitBuilder)

	huma.Register(s.api, huma.Operation{
		OperationID: "getOutfit",
		Method:      http.MethodGet,
		Path:        "/api/v1/outfits/{id}",
		Summary:     "Get outfit",
		Tags:        []string{"Outfits"},
	}, s.handleGetOutfit)

	huma.Register(s.api, huma.Operation{
		OperationID: "updateOutfit",
		Method:      http.MethodPut,
		Path:        "/api/v1/outfits/{id}",
		Summary:     "Update outfit",
		Description: "Replaces the editable fields. Creation time and last worn date are kept",
		Tags:        []string{"Outfits"},
	}, s.handleUpdateOutfit)

	huma.Register(s.api, huma.Operation{
		OperationID: "deleteOutfit",
		Method:      http.MethodDelete,
		Path:        "/api/v1/outfits/{id}",
		Summary:     "Delete outfit",
		Tags:        []string{"Outfits"},
	}, s.handleDeleteOutfit)

	huma.Register(s.api, huma.Operation{
		OperationID: "toggleOutfitAccessory",
		Method:      http.MethodPost,
		Path:        "/api/v1/outfits/{id}/accessories/{itemID}",
		Summary:     "Toggle accessory",
		Description: "Adds the item to the outfit's accessories, or removes it if already selected",
		Tags:        []string{"Outfits"},
	}, s.handleToggleAccessory)

	huma.Register(s.api, huma.Operation{
		OperationID:   "wearOutfit",
		Method:        http.MethodPost,
		Path:          "/api/v1/outfits/{id}/wear",
		Summary:       "Wear outfit",
		Description:   "Records that the outfit was worn now and updates its last worn date",
		Tags:          []string{"Outfits"},
		DefaultStatus: http.StatusCreated,
	}, s.handleWearOutfit)
}

// === DTOs ===

// OutfitListOutput wraps joined outfits for Huma.
type OutfitListOutput struct {
	Body dto.ListResponse[query.JoinedOutfit]
}

// JoinedOutfitOutput wraps one joined outfit for Huma.
type JoinedOutfitOutput struct {
	Body query.JoinedOutfit
}

// OutfitInput wraps an outfit body for Huma.
type OutfitInput struct {
	Body service.OutfitRequest
}

// UpdateOutfitInput wraps the outfit update for Huma.
type UpdateOutfitInput struct {
	ID   string `path:"id" doc:"Outfit ID"`
	Body service.OutfitRequest
}

// OutfitOutput wraps an outfit for Huma.
type OutfitOutput struct {
	Body domain.Outfit
}

// BuilderOutput wraps the grouped closet for Huma.
type BuilderOutput struct {
	Body query.CategoryGroups
}

// ToggleAccessoryInput names the outfit and the accessory.
type ToggleAccessoryInput struct {
	ID     string `path:"id" doc:"Outfit ID"`
	ItemID string `path:"itemID" doc:"Accessory item ID"`
}

// ToggleAccessoryResponse reports the outfit and whether the item is now selected.
type ToggleAccessoryResponse struct {
	Outfit   domain.Outfit `json:"outfit" doc:"Updated outfit"`
	Selected bool          `json:"selected" doc:"Whether the accessory is now part of the outfit"`
}

// ToggleAccessoryOutput wraps the toggle response for Huma.
type ToggleAccessoryOutput struct {
	Body ToggleAccessoryResponse
}

// WearOutput wraps the new wear record for Huma.
type WearOutput struct {
	Body domain.WearRecord
}

// === Handlers ===

func (s *Server) handleListOutfits(ctx context.Context, _ *struct{}) (*OutfitListOutput, error) {
	outfits, err := s.services.Outfit.List(ctx)
	if err != nil {
		return nil, err
	}
	return &OutfitListOutput{Body: dto.NewListResponse(outfits)}, nil
}

func (s *Server) handleCreateOutfit(ctx context.Context, input *OutfitInput) (*OutfitOutput, error) {
	outfit, err := s.services.Outfit.Create(ctx, input.Body)
	if err != nil {
		return nil, err
	}
	return &OutfitOutput{Body: *outfit}, nil
}

func (s *Server) handleOutfitBuilder(ctx context.Context, _ *struct{}) (*BuilderOutput, error) {
	groups, err := s.services.Outfit.Builder(ctx)
	if err != nil {
		return nil, err
	}
	return &BuilderOutput{Body: groups}, nil
}

func (s *Server) handleGetOutfit(ctx context.Context, input *dto.IDParam) (*JoinedOutfitOutput, error) {
	outfit, err := s.services.Outfit.Get(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &JoinedOutfitOutput{Body: *outfit}, nil
}

func (s *Server) handleUpdateOutfit(ctx context.Context, input *UpdateOutfitInput) (*OutfitOutput, error) {
	outfit, err := s.services.Outfit.Update(ctx, input.ID, input.Body)
	if err != nil {
		return nil, err
	}
	return &OutfitOutput{Body: *outfit}, nil
}

func (s *Server) handleDeleteOutfit(ctx context.Context, input *dto.IDParam) (*DeleteOutput, error) {
	if err := s.services.Outfit.Delete(ctx, input.ID); err != nil {
		return nil, err
	}
	return &DeleteOutput{Body: dto.MessageResponse{Message: "Outfit deleted"}}, nil
}

func (s *Server) handleToggleAccessory(ctx context.Context, input *ToggleAccessoryInput) (*ToggleAccessoryOutput, error) {
	outfit, selected, err := s.services.Outfit.ToggleAccessory(ctx, input.ID, input.ItemID)
	if err != nil {
		return nil, err
	}
	return &ToggleAccessoryOutput{Body: ToggleAccessoryResponse{Outfit: *outfit, Selected: selected}}, nil
}

func (s *Server) handleWearOutfit(ctx context.Context, input *dto.IDParam) (*WearOutput, error) {
	record, err := s.services.Outfit.Wear(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &WearOutput{Body: *record}, nil
}
