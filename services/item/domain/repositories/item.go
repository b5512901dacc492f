package repositories

import (
	"context"
	"time"

	"github.com/ghuser/itemvault/services/item/domain/models"
)

// ItemRepository is the persistence interface for the Item aggregate.
// The domain layer owns this interface; infrastructure implements it.
//
// Every method is a single atomic statement against the store. There are no
// cross-method transactions, so callers must not assume a row observed by
// GetByID still exists by the time DeleteByID runs — DeleteByID's returned
// count is the authoritative answer.
type ItemRepository interface {
	// Insert persists a new item. The store assigns a fresh unique id. When
	// createdAt is nil the store assigns the current time; a non-nil value
	// backdates the row (administrative/test use only).
	Insert(ctx context.Context, name string, createdAt *time.Time) (*models.Item, error)

	// ListAll returns every item ordered by created_at descending.
	ListAll(ctx context.Context) ([]*models.Item, error)

	// GetByID returns the item with the given id, or ErrItemNotFound.
	GetByID(ctx context.Context, id int64) (*models.Item, error)

	// DeleteByID removes the item with the given id in one statement and
	// reports how many rows were removed (0 or 1).
	DeleteByID(ctx context.Context, id int64) (int64, error)

	// DeleteAll removes every item. Administrative/test use only.
	DeleteAll(ctx context.Context) error
}
