package app

import (
	"github.com/ghuser/itemvault/pkg/cache"
	"github.com/ghuser/itemvault/pkg/events"
	"github.com/ghuser/itemvault/pkg/logger"
)

// Application holds shared infrastructure dependencies for all services.
// Pass to all service route registration calls during server initialization.
//
// Logging: app.Logger is backed by a trace-aware handler — use slog's context methods
// and trace_id, span_id, and request_id are injected automatically:
//
//	app.Logger.InfoContext(ctx, "processing item", "item_id", id)
//	app.Logger.ErrorContext(ctx, "failed to delete", "error", err)
//
// Use app.Logger.Info/Error (no context) only for startup and shutdown messages.
type Application struct {
	Logger   logger.Logger
	EventBus *events.EventBus   // nil when the store driver has no SQL bus (sqlite mode)
	Redis    *cache.RedisClient // nil when REDIS_URL is empty
}
