// Package catalog resolves the authoritative station set for a resolution
// pass: the persistent store when it answers, a fixed fallback list when it
// does not.
package catalog

import (
	"context"
	"log/slog"

	"github.com/itsRabb/risqmap-status/internal/domain"
	"github.com/itsRabb/risqmap-status/internal/observability"
)

// Filter narrows a station query. Zero values mean no constraint.
type Filter struct {
	City   string
	State  string
	Status domain.Status
	Limit  int
}

// Store is the persistent station source. Implementations return their
// records ordered by city ascending.
type Store interface {
	ListStations(ctx context.Context, filter Filter) ([]domain.InfrastructureStation, error)
}

// Catalog produces the station set for each pass. A store error or an empty
// result set swaps in the injected fallback list wholesale. One source or
// the other, never a merge of both within one call.
type Catalog struct {
	store    Store
	fallback []domain.InfrastructureStation
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Catalog. A nil store means every pass serves the fallback
// list (the service runs storeless in that mode). A nil fallback uses the
// built-in station table.
func New(store Store, fallback []domain.InfrastructureStation, logger *slog.Logger, metrics *observability.Metrics) *Catalog {
	if fallback == nil {
		fallback = FallbackStations()
	}
	return &Catalog{
		store:    store,
		fallback: fallback,
		logger:   logger,
		metrics:  metrics,
	}
}

// Load returns the station set for one resolution pass. It never returns an
// error: the fallback list guarantees the presentation layer always has
// something to render.
func (c *Catalog) Load(ctx context.Context, filter Filter) []domain.InfrastructureStation {
	if c.store == nil {
		return c.loadFallback("no store configured")
	}

	stations, err := c.store.ListStations(ctx, filter)
	if err != nil {
		c.logger.Warn("station store query failed, serving fallback list", "error", err)
		return c.loadFallback("store error")
	}
	if len(stations) == 0 {
		return c.loadFallback("empty result set")
	}
	return stations
}

// loadFallback copies the fallback list with fresh placeholder statuses. The
// random status is a rendering placeholder, not a ground-truth signal.
func (c *Catalog) loadFallback(reason string) []domain.InfrastructureStation {
	c.metrics.CatalogFallbacks.Inc()
	c.logger.Debug("serving fallback station list", "reason", reason, "stations", len(c.fallback))

	now := domain.Now()
	stations := make([]domain.InfrastructureStation, len(c.fallback))
	for i, s := range c.fallback {
		s.Status = domain.RandomStatus()
		s.LastUpdated = now
		stations[i] = s
	}
	return stations
}
