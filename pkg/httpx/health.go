package httpx

import (
	"context"
	"net/http"
	"time"
)

// HealthChecker is satisfied by any infrastructure dependency that exposes
// a Ping method (the item store, RedisClient, EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks holds the set of dependencies to probe in the health endpoint.
// Nil entries are reported as disabled rather than probed — the redis cache
// and event bus are optional depending on configuration.
type HealthChecks struct {
	Store    HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	Store    string `json:"store"`
	Redis    string `json:"redis"`
	EventBus string `json:"event_bus"`
}

// HealthHandler returns an http.HandlerFunc that probes all registered
// HealthCheckers and reports degraded status if any of them fail.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp := healthResponse{Status: "ok"}
		resp.Store = probe(ctx, checks.Store)
		resp.Redis = probe(ctx, checks.Redis)
		resp.EventBus = probe(ctx, checks.EventBus)

		if resp.Store == "unreachable" || resp.Redis == "unreachable" || resp.EventBus == "unreachable" {
			resp.Status = "degraded"
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}

func probe(ctx context.Context, c HealthChecker) string {
	if c == nil {
		return "disabled"
	}
	if err := c.Ping(ctx); err != nil {
		return "unreachable"
	}
	return "ok"
}
