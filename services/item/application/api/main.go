package api

import (
	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemvault/pkg/app"
	"github.com/ghuser/itemvault/services/item/application/handlers"
	appsvcs "github.com/ghuser/itemvault/services/item/application/services"
	"github.com/ghuser/itemvault/services/item/domain/repositories"
)

// ItemRoutes registers item endpoints on the provided chi router.
func ItemRoutes(r chi.Router, a *app.Application, repo repositories.ItemRepository) {
	svcs := appsvcs.New(a, repo)
	admin := handlers.NewAdminItemsHandler(svcs)

	r.Group(func(r chi.Router) {
		r.Route("/items", func(r chi.Router) {
			r.Get("/", handlers.NewGetItemsHandler(svcs).Execute)
			r.Post("/", handlers.NewPostItemHandler(svcs).Execute)
			r.Get("/{id}", handlers.NewGetItemHandler(svcs).Execute)
			r.Delete("/{id}", handlers.NewDeleteItemHandler(svcs).Execute)
		})
		r.Route("/admin/items", func(r chi.Router) {
			r.Post("/", admin.Create)
			r.Delete("/", admin.Clear)
		})
	})
}
