package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ghuser/itemvault/pkg/errhttp"
	"github.com/ghuser/itemvault/pkg/httpx"
	appsvcs "github.com/ghuser/itemvault/services/item/application/services"
)

// CreateItemRequest is the request body for POST /items. Name is left as raw
// JSON so the boundary can reject non-string kinds (numbers, booleans,
// arrays, objects, null) before the service sees a typed string — there is
// no coercion to string.
type CreateItemRequest struct {
	Name json.RawMessage `json:"name"`
} // @name CreateItemRequest

// ItemResponse is the JSON shape of an item on every read and create path.
type ItemResponse struct {
	ID        int64     `json:"id"         example:"1"`
	Name      string    `json:"name"       example:"Widget"`
	CreatedAt time.Time `json:"created_at" example:"2026-01-15T10:30:00Z"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"Item name is required"`
} // @name ErrorResponse

// PostItemHandler handles POST /items requests.
type PostItemHandler struct {
	svc *appsvcs.Services
}

// NewPostItemHandler returns a PostItemHandler backed by the given services.
func NewPostItemHandler(svc *appsvcs.Services) *PostItemHandler {
	return &PostItemHandler{svc: svc}
}

// Execute creates a new item.
//
//	@Summary		Create item
//	@Description	Creates a new item; the store assigns id and created_at
//	@Tags			items
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateItemRequest	true	"Item creation request"
//	@Success		201		{object}	ItemResponse
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/items [post]
func (h *PostItemHandler) Execute(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, errhttp.MsgNameRequired)
		return
	}

	name, ok := stringKind(req.Name)
	if !ok {
		httpx.JSONError(w, http.StatusBadRequest, errhttp.MsgNameRequired)
		return
	}

	item, err := h.svc.Item.Create(r.Context(), name)
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

// stringKind reports whether raw is a JSON string and returns its value.
// Absent fields (nil RawMessage) and every other JSON kind fail.
func stringKind(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
