package handlers

import (
	"net/http"

	"github.com/ghuser/itemvault/pkg/errhttp"
	"github.com/ghuser/itemvault/pkg/httpx"
	appsvcs "github.com/ghuser/itemvault/services/item/application/services"
)

// GetItemsHandler handles GET /items requests.
type GetItemsHandler struct {
	svc *appsvcs.Services
}

// NewGetItemsHandler returns a GetItemsHandler backed by the given services.
func NewGetItemsHandler(svc *appsvcs.Services) *GetItemsHandler {
	return &GetItemsHandler{svc: svc}
}

// Execute lists all items, most recently created first.
//
//	@Summary		List items
//	@Description	Returns all items ordered by created_at descending
//	@Tags			items
//	@Produce		json
//	@Success		200	{array}		ItemResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/items [get]
func (h *GetItemsHandler) Execute(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Item.List(r.Context())
	if err != nil {
		errhttp.WriteError(w, err, "Failed to list items")
		return
	}

	// Always a JSON array, never null.
	resp := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, ItemResponse{
			ID:        item.ID,
			Name:      item.Name,
			CreatedAt: item.CreatedAt,
		})
	}
	httpx.JSON(w, http.StatusOK, resp)
}
