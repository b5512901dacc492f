// Package errhttp maps domain errors to HTTP status codes and the stable
// JSON error payloads the UI client renders verbatim. Add a case to
// WriteError for each new domain error kind.
package errhttp

import (
	"errors"
	"net/http"
	"time"

	"github.com/ghuser/itemvault/pkg/httpx"
	itemdomain "github.com/ghuser/itemvault/services/item/domain"
)

// Client-facing error messages. Field names and wording are part of the API
// contract; the boundary owns message shaping, the service only picks the kind.
const (
	MsgNameRequired  = "Item name is required"
	MsgInvalidItemID = "Invalid item ID"
	MsgItemNotFound  = "Item not found"
	MsgAgeRestricted = "Item cannot be deleted until it is at least 5 days old"
)

// AgeRestrictedResponse is the 403 payload: enough context for the caller to
// know when the delete becomes valid.
type AgeRestrictedResponse struct {
	Error         string    `json:"error"`
	CreatedAt     time.Time `json:"created_at"`
	DaysRemaining int       `json:"days_remaining"`
}

// WriteError maps err to an HTTP status code and writes a JSON error
// response. Uses errors.Is/As so wrapped errors are matched correctly.
// Unrecognized errors become 500 with the given fallback message — internal
// detail never reaches the payload.
func WriteError(w http.ResponseWriter, err error, fallback string) {
	var ageErr *itemdomain.AgeRestrictedError
	switch {
	case errors.Is(err, itemdomain.ErrItemNameRequired):
		httpx.JSONError(w, http.StatusBadRequest, MsgNameRequired)
	case errors.Is(err, itemdomain.ErrInvalidItemID):
		httpx.JSONError(w, http.StatusBadRequest, MsgInvalidItemID)
	case errors.Is(err, itemdomain.ErrItemNotFound):
		httpx.JSONError(w, http.StatusNotFound, MsgItemNotFound)
	case errors.As(err, &ageErr):
		httpx.JSON(w, http.StatusForbidden, AgeRestrictedResponse{
			Error:         MsgAgeRestricted,
			CreatedAt:     ageErr.CreatedAt,
			DaysRemaining: ageErr.DaysRemaining,
		})
	default:
		httpx.JSONError(w, http.StatusInternalServerError, fallback)
	}
}
