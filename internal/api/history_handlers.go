package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/wardrobeapp/wardrobe-server/internal/api/dto"
	"github.com/wardrobeapp/wardrobe-server/internal/query"
	"github.com/wardrobeapp/wardrobe-server/internal/service"
)

func (s *Server) registerHistoryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listHistory",
		Method:      http.MethodGet,
		Path:        "/api/v1/history",
		Summary:     "Wear history",
		Description: "Returns wear records of existing outfits, most recent first",
		Tags:        []string{"History"},
	}, s.handleListHistory)

	huma.Register(s.api, huma.Operation{
		OperationID: "dashboard",
		Method:      http.MethodGet,
		Path:        "/api/v1/dashboard",
		Summary:     "Dashboard",
		Description: "Returns item, outfit and favorite counts with per-category and per-weather tables",
		Tags:        []string{"History"},
	}, s.handleDashboard)
}

// HistoryOutput wraps the joined history for Huma.
type HistoryOutput struct {
	Body dto.ListResponse[service.HistoryEntry]
}

// DashboardOutput wraps the dashboard for Huma.
type DashboardOutput struct {
	Body query.Dashboard
}

func (s *Server) handleListHistory(ctx context.Context, _ *struct{}) (*HistoryOutput, error) {
	entries, err := s.services.History.List(ctx)
	if err != nil {
		return nil, err
	}
	return &HistoryOutput{Body: dto.NewListResponse(entries)}, nil
}

func (s *Server) handleDashboard(ctx context.Context, _ *struct{}) (*DashboardOutput, error) {
	dashboard, err := s.services.Dashboard.Summary(ctx)
	if err != nil {
		return nil, err
	}
	return &DashboardOutput{Body: dashboard}, nil
}
