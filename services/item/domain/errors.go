package domain

import (
	"errors"
	"fmt"
	"time"
)

// MinDeletableAgeDays is the number of full days an item must exist before
// it may be deleted.
const MinDeletableAgeDays = 5

// Sentinel errors for the item domain. Use errors.Is() to check these.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrItemNameRequired indicates the submitted name is missing, not a
	// string, or blank after trimming.
	ErrItemNameRequired = errors.New("item name is required")

	// ErrInvalidItemID indicates the id parameter cannot be parsed as an integer.
	ErrInvalidItemID = errors.New("invalid item id")
)

// AgeRestrictedError rejects a delete on an item younger than
// MinDeletableAgeDays. It carries the item's creation time and the number of
// full days remaining until deletion becomes allowed, so callers can tell
// the user when to retry. Check with errors.As().
type AgeRestrictedError struct {
	CreatedAt     time.Time
	DaysRemaining int
}

func (e *AgeRestrictedError) Error() string {
	return fmt.Sprintf("item cannot be deleted until it is at least %d days old (%d days remaining)",
		MinDeletableAgeDays, e.DaysRemaining)
}
