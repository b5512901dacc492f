package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ghuser/itemvault/pkg/database"
	"github.com/ghuser/itemvault/pkg/events"
	itemdomain "github.com/ghuser/itemvault/services/item/domain"
	domainevents "github.com/ghuser/itemvault/services/item/domain/events"
	"github.com/ghuser/itemvault/services/item/domain/models"
)

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
// After successful mutations it publishes ItemCreated/ItemDeleted events on
// the bus; a nil bus disables publishing.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus.
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Ping checks store connectivity.
func (r *ItemRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// Insert persists a new item. Postgres assigns the id from the sequence;
// when createdAt is nil the column default (now()) applies.
func (r *ItemRepository) Insert(ctx context.Context, name string, createdAt *time.Time) (*models.Item, error) {
	var item models.Item
	var err error
	if createdAt != nil {
		err = r.db.Pool().QueryRow(ctx,
			`INSERT INTO items (name, created_at) VALUES ($1, $2) RETURNING id, name, created_at`,
			name, createdAt.UTC(),
		).Scan(&item.ID, &item.Name, &item.CreatedAt)
	} else {
		err = r.db.Pool().QueryRow(ctx,
			`INSERT INTO items (name) VALUES ($1) RETURNING id, name, created_at`,
			name,
		).Scan(&item.ID, &item.Name, &item.CreatedAt)
	}
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	if r.bus != nil {
		r.publishCreated(ctx, &item)
	}
	return &item, nil
}

// ListAll returns every item ordered by created_at descending.
func (r *ItemRepository) ListAll(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, name, created_at FROM items ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []*models.Item
	for rows.Next() {
		var item models.Item
		if err := rows.Scan(&item.ID, &item.Name, &item.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// GetByID returns the item with the given id, or ErrItemNotFound.
func (r *ItemRepository) GetByID(ctx context.Context, id int64) (*models.Item, error) {
	var item models.Item
	err := r.db.Pool().QueryRow(ctx,
		`SELECT id, name, created_at FROM items WHERE id = $1`, id,
	).Scan(&item.ID, &item.Name, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &item, nil
}

// DeleteByID removes the item in a single statement and reports rows removed.
func (r *ItemRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	tag, err := r.db.Pool().Exec(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}

	rows := tag.RowsAffected()
	if rows > 0 && r.bus != nil {
		r.publishDeleted(ctx, id)
	}
	return rows, nil
}

// DeleteAll removes every item.
func (r *ItemRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.Pool().Exec(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("delete all items: %w", err)
	}
	return nil
}

// publishCreated emits an ItemCreatedEvent. Publishing is best-effort: the
// row is already committed, so a bus failure must not fail the insert.
func (r *ItemRepository) publishCreated(ctx context.Context, item *models.Item) {
	event := domainevents.ItemCreatedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     item.ID,
		Name:       item.Name,
		OccurredAt: item.CreatedAt,
	}
	r.publish(ctx, domainevents.TopicItemCreated, event.EventID, event)
}

func (r *ItemRepository) publishDeleted(ctx context.Context, id int64) {
	event := domainevents.ItemDeletedEvent{
		EventID:    uuid.New(),
		Version:    1,
		ItemID:     id,
		OccurredAt: time.Now().UTC(),
	}
	r.publish(ctx, domainevents.TopicItemDeleted, event.EventID, event)
}

func (r *ItemRepository) publish(ctx context.Context, topic string, eventID uuid.UUID, event any) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", eventID.String())
	msg.Metadata.Set("event_version", "1")
	_ = r.bus.Publish(ctx, topic, msg)
}
