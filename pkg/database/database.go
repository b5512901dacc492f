// Package database wraps a pgx connection pool with the lifecycle and health
// probe methods the rest of the application expects.
package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/ghuser/itemvault/pkg/logger"
)

// Database wraps *pgxpool.Pool. The pool is acquired once at process start
// and held for the process lifetime.
type Database struct {
	pool *pgxpool.Pool
	log  logger.Logger
}

// NewPool connects a pgx pool to databaseURL and verifies connectivity.
func NewPool(ctx context.Context, databaseURL string, log logger.Logger) (*Database, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	cfg.MaxConns = 10
	cfg.MaxConnLifetime = time.Hour
	cfg.MaxConnIdleTime = 30 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Database{pool: pool, log: log}, nil
}

// Pool returns the underlying pgx pool.
func (d *Database) Pool() *pgxpool.Pool {
	return d.pool
}

// Ping checks database connectivity.
func (d *Database) Ping(ctx context.Context) error {
	if err := d.pool.Ping(ctx); err != nil {
		return fmt.Errorf("database ping: %w", err)
	}
	return nil
}

// Close releases the pool.
func (d *Database) Close() {
	d.pool.Close()
}
