package handlers

import (
	"net/http"
	"time"

	"github.com/ghuser/itemvault/pkg/errhttp"
	"github.com/ghuser/itemvault/pkg/httpx"
	pkgvalidator "github.com/ghuser/itemvault/pkg/validator"
	appsvcs "github.com/ghuser/itemvault/services/item/application/services"
)

// AdminCreateItemRequest is the request body for POST /admin/items. Unlike
// the public create, created_at may be supplied to backdate the row — the
// escape hatch for seeding test data and administrative repair.
type AdminCreateItemRequest struct {
	Name      string     `json:"name"       validate:"required,min=1" example:"Backdated Widget"`
	CreatedAt *time.Time `json:"created_at" validate:"omitempty"      example:"2026-01-10T00:00:00Z"`
} // @name AdminCreateItemRequest

// AdminItemsHandler handles the administrative item endpoints.
type AdminItemsHandler struct {
	svc *appsvcs.Services
}

// NewAdminItemsHandler returns an AdminItemsHandler backed by the given services.
func NewAdminItemsHandler(svc *appsvcs.Services) *AdminItemsHandler {
	return &AdminItemsHandler{svc: svc}
}

// Create inserts an item, optionally backdated.
//
//	@Summary		Create item (admin)
//	@Description	Creates an item with an optional caller-supplied created_at
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AdminCreateItemRequest	true	"Admin item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse
//	@Router			/admin/items [post]
func (h *AdminItemsHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := pkgvalidator.ValidateRequest[AdminCreateItemRequest](w, r)
	if !ok {
		return
	}

	createdAt := time.Now().UTC()
	if req.CreatedAt != nil {
		createdAt = *req.CreatedAt
	}

	item, err := h.svc.Item.CreateBackdated(r.Context(), req.Name, createdAt)
	if err != nil {
		errhttp.WriteError(w, err, "Failed to create item")
		return
	}

	httpx.JSON(w, http.StatusCreated, ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	})
}

// Clear removes every item.
//
//	@Summary		Delete all items (admin)
//	@Description	Bulk clear, intended for test and administrative use
//	@Tags			admin
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Failure		500	{object}	ErrorResponse
//	@Router			/admin/items [delete]
func (h *AdminItemsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Item.DeleteAll(r.Context()); err != nil {
		errhttp.WriteError(w, err, "Failed to delete items")
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]string{"message": "All items deleted"})
}
