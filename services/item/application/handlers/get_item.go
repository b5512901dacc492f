package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemvault/pkg/errhttp"
	"github.com/ghuser/itemvault/pkg/httpx"
	appsvcs "github.com/ghuser/itemvault/services/item/application/services"
)

// GetItemHandler handles GET /items/{id} requests.
type GetItemHandler struct {
	svc *appsvcs.Services
}

// NewGetItemHandler returns a GetItemHandler backed by the given services.
func NewGetItemHandler(svc *appsvcs.Services) *GetItemHandler {
	return &GetItemHandler{svc: svc}
}

// Execute retrieves a single item by id.
//
//	@Summary		Get item
//	@Description	Retrieves an item by id, served from cache when warm
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item id"
//	@Success		200	{object}	ItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		404	{object}	ErrorResponse
//	@Router			/items/{id} [get]
func (h *GetItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	item, err := h.svc.Item.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err, "Failed to get item")
		return
	}

	httpx.JSON(w, http.StatusOK, ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	})
}
