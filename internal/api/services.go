package api

import "github.com/wardrobeapp/wardrobe-server/internal/service"

// Services groups the business services used by the API server.
type Services struct {
	Closet    *service.ClosetService
	Outfit    *service.OutfitService
	History   *service.HistoryService
	Dashboard *service.DashboardService
	Search    *service.SearchService
}
