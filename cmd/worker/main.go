package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/ghuser/itemvault/pkg/app"
	"github.com/ghuser/itemvault/pkg/cache"
	"github.com/ghuser/itemvault/pkg/config"
	"github.com/ghuser/itemvault/pkg/events"
	"github.com/ghuser/itemvault/pkg/logger"
	"github.com/ghuser/itemvault/pkg/telemetry"
	itemEvents "github.com/ghuser/itemvault/services/item/domain/events"
)

// The worker consumes item domain events off the SQL bus and maintains the
// Redis read-model cache: item.created warms it, item.deleted evicts. It
// requires STORE_DRIVER=postgres — the bus rides on the postgres connection.
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	if cfg.StoreDriver != config.DriverPostgres {
		log.Error("worker requires STORE_DRIVER=postgres", "store", cfg.StoreDriver)
		os.Exit(1)
	}

	ctx := context.Background()

	otelShutdown, _, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	eventBus, err := events.NewEventBus(cfg, log)
	if err != nil {
		log.Error("failed to setup event bus", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer eventBus.Close() //nolint:errcheck

	redisClient, err := cache.NewRedisClient(cfg)
	if err != nil {
		log.Error("failed to connect to redis", "error", err)
		os.Exit(1) //nolint:gocritic
	}
	defer redisClient.Close() //nolint:errcheck
	log.Info("redis connected")

	appConfig := &app.Application{
		Logger:   log,
		EventBus: eventBus,
		Redis:    redisClient,
	}

	if err := registerSubscribers(ctx, appConfig); err != nil {
		log.Error("failed to register subscribers", "error", err)
		os.Exit(1) //nolint:gocritic
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down worker...")
	// EventBus.Close() (via defer) waits up to 30s for in-flight handlers.
	log.Info("worker stopped")
}

// registerSubscribers wires all domain event handlers.
// Add new topics here as more services publish events.
func registerSubscribers(ctx context.Context, a *app.Application) error {
	itemCache := cache.NewItemCache(a.Redis)

	topics := map[string]func(context.Context, *message.Message) error{
		itemEvents.TopicItemCreated: handleItemCreated(a, itemCache),
		itemEvents.TopicItemDeleted: handleItemDeleted(a, itemCache),
	}

	for topic, handler := range topics {
		errCh, err := a.EventBus.Subscribe(ctx, topic, handler)
		if err != nil {
			return err
		}

		// Drain subscriber errors in background so the channel never blocks.
		go func(topic string) {
			for err := range errCh {
				a.Logger.ErrorContext(ctx, "subscriber error", "topic", topic, "error", err)
			}
		}(topic)
	}

	a.Logger.Info("event subscribers registered",
		"topics", []string{itemEvents.TopicItemCreated, itemEvents.TopicItemDeleted})
	return nil
}

// handleItemCreated returns a handler for item.created events.
// Handlers must be idempotent — EventBus retries up to 3× on failure.
// Warms the Redis read-model cache so subsequent GetByID calls are served from cache.
func handleItemCreated(a *app.Application, itemCache *cache.ItemCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemEvents.ItemCreatedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := itemCache.Set(ctx, &cache.CachedItem{
			ID:        evt.ItemID,
			Name:      evt.Name,
			CreatedAt: evt.OccurredAt,
		}); err != nil {
			// Cache warming is best-effort; log but do not fail the handler.
			a.Logger.WarnContext(ctx, "cache warm failed for item.created",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache warmed", "item_id", evt.ItemID)
		}

		return nil
	}
}

// handleItemDeleted returns a handler for item.deleted events; it evicts the
// cached read model so stale rows never outlive their 24h TTL.
func handleItemDeleted(a *app.Application, itemCache *cache.ItemCache) func(context.Context, *message.Message) error {
	return func(ctx context.Context, msg *message.Message) error {
		var evt itemEvents.ItemDeletedEvent
		if err := json.Unmarshal(msg.Payload, &evt); err != nil {
			return err
		}

		if err := itemCache.Delete(ctx, evt.ItemID); err != nil {
			a.Logger.WarnContext(ctx, "cache evict failed for item.deleted",
				"item_id", evt.ItemID, "error", err)
		} else {
			a.Logger.InfoContext(ctx, "cache evicted", "item_id", evt.ItemID)
		}

		return nil
	}
}
