package models

import (
	"time"
)

// Item is the sole aggregate of this bounded context. The store assigns ID
// (auto-increment, never reused) and CreatedAt; all fields are immutable
// after creation — there is no update operation.
type Item struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

// AgeDays returns the number of full 24-hour days elapsed between the item's
// creation and now. Partial days round down.
func (i *Item) AgeDays(now time.Time) int {
	return int(now.Sub(i.CreatedAt) / (24 * time.Hour))
}
