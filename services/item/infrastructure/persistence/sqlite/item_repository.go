// Package sqlite implements the item repository against an embedded SQLite
// database. This is the default store: a single file (or :memory: in tests),
// WAL mode, one writer.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	itemdomain "github.com/ghuser/itemvault/services/item/domain"
	"github.com/ghuser/itemvault/services/item/domain/models"
)

// ItemRepository implements repositories.ItemRepository against SQLite.
type ItemRepository struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at path, applies pragmas, and
// returns a repository bound to it. Safe to call on an existing database.
//
// SQLite supports one writer at a time, so the pool is capped at a single
// connection to avoid SQLITE_BUSY under concurrent mutations.
func Open(path string) (*ItemRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply %q: %w", pragma, err)
		}
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	return &ItemRepository{db: db}, nil
}

// DB returns the underlying sql.DB, used by the migrator at startup.
func (r *ItemRepository) DB() *sql.DB {
	return r.db
}

// Ping checks store connectivity.
func (r *ItemRepository) Ping(ctx context.Context) error {
	if err := r.db.PingContext(ctx); err != nil {
		return fmt.Errorf("sqlite ping: %w", err)
	}
	return nil
}

// Close closes the database.
func (r *ItemRepository) Close() error {
	return r.db.Close()
}

// Insert persists a new item. SQLite assigns the auto-increment id; when
// createdAt is nil the column default (current time) applies.
func (r *ItemRepository) Insert(ctx context.Context, name string, createdAt *time.Time) (*models.Item, error) {
	var (
		res sql.Result
		err error
	)
	if createdAt != nil {
		res, err = r.db.ExecContext(ctx,
			`INSERT INTO items (name, created_at) VALUES (?, ?)`,
			name, createdAt.UTC(),
		)
	} else {
		res, err = r.db.ExecContext(ctx,
			`INSERT INTO items (name) VALUES (?)`,
			name,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("insert item: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}

	item, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("read back inserted item: %w", err)
	}
	return item, nil
}

// ListAll returns every item ordered by created_at descending.
func (r *ItemRepository) ListAll(ctx context.Context) ([]*models.Item, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, created_at FROM items ORDER BY datetime(created_at) DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

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
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, created_at FROM items WHERE id = ?`, id,
	).Scan(&item.ID, &item.Name, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return &item, nil
}

// DeleteByID removes the item in a single statement and reports rows removed.
func (r *ItemRepository) DeleteByID(ctx context.Context, id int64) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return rows, nil
}

// DeleteAll removes every item.
func (r *ItemRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM items`); err != nil {
		return fmt.Errorf("delete all items: %w", err)
	}
	return nil
}
