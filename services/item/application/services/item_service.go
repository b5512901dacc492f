package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	pkgcache "github.com/ghuser/itemvault/pkg/cache"
	itemdomain "github.com/ghuser/itemvault/services/item/domain"
	"github.com/ghuser/itemvault/services/item/domain/models"
	"github.com/ghuser/itemvault/services/item/domain/repositories"
	domainsvcs "github.com/ghuser/itemvault/services/item/domain/services"
)

// ItemService orchestrates validation, the age gate, and store calls for the
// item lifecycle. It holds no state of its own beyond its dependencies, so a
// single instance is safe for concurrent use.
//
// Reads by id are served from Redis cache when available. Delete always
// reads the store directly: the age gate must see the authoritative row.
type ItemService struct {
	repo  repositories.ItemRepository
	cache *pkgcache.ItemCache
	now   func() time.Time
}

// NewItemService returns an ItemService wired with the given repository and
// cache. The cache may be nil, in which case reads go straight to the store.
func NewItemService(repo repositories.ItemRepository, itemCache *pkgcache.ItemCache) *ItemService {
	return &ItemService{repo: repo, cache: itemCache, now: time.Now}
}

// WithClock overrides the service's time source. Used by tests to pin the
// age gate to a known instant.
func (s *ItemService) WithClock(now func() time.Time) *ItemService {
	s.now = now
	return s
}

// Create validates and persists an item. The name is stored exactly as
// submitted; trimming is applied only to decide validity. The store assigns
// id and created_at.
func (s *ItemService) Create(ctx context.Context, name string) (*models.Item, error) {
	if _, err := models.NewItemName(name); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrItemNameRequired, err)
	}

	item, err := s.repo.Insert(ctx, name, nil)
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}
	return item, nil
}

// CreateBackdated persists an item with a caller-supplied creation
// timestamp. Administrative escape hatch — the public create path never
// supplies a timestamp.
func (s *ItemService) CreateBackdated(ctx context.Context, name string, createdAt time.Time) (*models.Item, error) {
	itemName, err := models.NewItemName(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrItemNameRequired, err)
	}
	if err := domainsvcs.ValidateItemForCreation(itemName); err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrItemNameRequired, err)
	}

	item, err := s.repo.Insert(ctx, name, &createdAt)
	if err != nil {
		return nil, fmt.Errorf("insert backdated item: %w", err)
	}
	return item, nil
}

// List returns all items ordered by created_at descending. Equal timestamps
// have no defined relative order.
func (s *ItemService) List(ctx context.Context) ([]*models.Item, error) {
	items, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// GetByID resolves rawID and retrieves the item using a read-through cache
// pattern:
//  1. Check Redis cache first.
//  2. On cache miss (or cache error), query the store.
//  3. Asynchronously warm the cache with the store result.
func (s *ItemService) GetByID(ctx context.Context, rawID string) (*models.Item, error) {
	id, err := models.ParseItemID(rawID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemID, err)
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, id); err == nil {
			return &models.Item{
				ID:        cached.ID,
				Name:      cached.Name,
				CreatedAt: cached.CreatedAt,
			}, nil
		} else if !errors.Is(err, redis.Nil) {
			// Cache error — fall through to the store.
			_ = err
		}
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get item: %w", err)
	}

	if s.cache != nil {
		go func() {
			_ = s.cache.Set(context.Background(), &pkgcache.CachedItem{
				ID:        item.ID,
				Name:      item.Name,
				CreatedAt: item.CreatedAt,
			})
		}()
	}

	return item, nil
}

// Delete resolves rawID, applies the age gate, and removes the item.
// The returned id is the deleted item's id.
//
// Failure modes, in order:
//   - ErrInvalidItemID when rawID has no parsable integer prefix
//   - ErrItemNotFound when no row matches the parsed id
//   - *AgeRestrictedError when the item is younger than MinDeletableAgeDays;
//     the row is left untouched
//   - ErrItemNotFound again when the atomic delete removes zero rows — the
//     row vanished between the gate check and the delete (concurrent delete);
//     never reported as success
func (s *ItemService) Delete(ctx context.Context, rawID string) (int64, error) {
	id, err := models.ParseItemID(rawID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", itemdomain.ErrInvalidItemID, err)
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, itemdomain.ErrItemNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("get item: %w", err)
	}

	if err := domainsvcs.CheckDeletable(item, s.now()); err != nil {
		return 0, err
	}

	rows, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	if rows == 0 {
		// Lost the race against a concurrent delete.
		return 0, itemdomain.ErrItemNotFound
	}

	if s.cache != nil {
		_ = s.cache.Delete(context.Background(), id)
	}
	return id, nil
}

// DeleteAll clears every item. Administrative/test use only.
func (s *ItemService) DeleteAll(ctx context.Context) error {
	if err := s.repo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("delete all items: %w", err)
	}
	return nil
}
