package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ghuser/itemvault/pkg/errhttp"
	"github.com/ghuser/itemvault/pkg/httpx"
	appsvcs "github.com/ghuser/itemvault/services/item/application/services"
)

// DeleteItemResponse is returned on successful deletion. ID is always a
// number regardless of how the id was supplied in the path.
type DeleteItemResponse struct {
	Message string `json:"message" example:"Item deleted successfully"`
	ID      int64  `json:"id"      example:"1"`
} // @name DeleteItemResponse

// DeleteItemHandler handles DELETE /items/{id} requests.
type DeleteItemHandler struct {
	svc *appsvcs.Services
}

// NewDeleteItemHandler returns a DeleteItemHandler backed by the given services.
func NewDeleteItemHandler(svc *appsvcs.Services) *DeleteItemHandler {
	return &DeleteItemHandler{svc: svc}
}

// Execute deletes an item once it is at least 5 days old.
//
//	@Summary		Delete item
//	@Description	Deletes an item; rejected with 403 until the item is 5 days old
//	@Tags			items
//	@Produce		json
//	@Param			id	path		string	true	"Item id"
//	@Success		200	{object}	DeleteItemResponse
//	@Failure		400	{object}	ErrorResponse
//	@Failure		403	{object}	errhttp.AgeRestrictedResponse
//	@Failure		404	{object}	ErrorResponse
//	@Failure		500	{object}	ErrorResponse
//	@Router			/items/{id} [delete]
func (h *DeleteItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	id, err := h.svc.Item.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		errhttp.WriteError(w, err, "Failed to delete item")
		return
	}

	httpx.JSON(w, http.StatusOK, DeleteItemResponse{
		Message: "Item deleted successfully",
		ID:      id,
	})
}
