package services

import (
	"github.com/ghuser/itemvault/pkg/app"
	"github.com/ghuser/itemvault/pkg/cache"
	"github.com/ghuser/itemvault/services/item/domain/repositories"
)

// Services is the application-layer service container for this bounded context.
// It wires domain services with their infrastructure implementations.
type Services struct {
	Item *ItemService
}

// New wires all item application services. The repository is constructed at
// bootstrap (sqlite or postgres, per STORE_DRIVER) and injected here so tests
// can substitute an isolated store per run.
func New(a *app.Application, repo repositories.ItemRepository) *Services {
	var itemCache *cache.ItemCache
	if a.Redis != nil {
		itemCache = cache.NewItemCache(a.Redis)
	}
	return &Services{
		Item: NewItemService(repo, itemCache),
	}
}
