package providers

import (
	"github.com/samber/do/v2"

	"github.com/wardrobeapp/wardrobe-server/internal/logger"
	"github.com/wardrobeapp/wardrobe-server/internal/service"
	"github.com/wardrobeapp/wardrobe-server/internal/validation"
)

// ProvideValidator provides the request validator.
func ProvideValidator(i do.Injector) (*validation.Validator, error) {
	return validation.New(), nil
}

// ProvideClosetService provides the clothing item service.
func ProvideClosetService(i do.Injector) (*service.ClosetService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	searchService := do.MustInvoke[*service.SearchService](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewClosetService(storeHandle.Store, searchService, v, log.Logger), nil
}

// ProvideOutfitService provides the outfit service.
func ProvideOutfitService(i do.Injector) (*service.OutfitService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	v := do.MustInvoke[*validation.Validator](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewOutfitService(storeHandle.Store, v, log.Logger), nil
}

// ProvideHistoryService provides the wear history service.
func ProvideHistoryService(i do.Injector) (*service.HistoryService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	return service.NewHistoryService(storeHandle.Store), nil
}

// ProvideDashboardService provides the dashboard service.
func ProvideDashboardService(i do.Injector) (*service.DashboardService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	return service.NewDashboardService(storeHandle.Store), nil
}
