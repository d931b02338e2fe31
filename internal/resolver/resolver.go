// Package resolver implements the status resolution pipeline: catalog load,
// concurrent per-city overrides, and the heuristic merge that yields the
// presentation-ready station list.
package resolver

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/itsRabb/risqmap-status/internal/catalog"
	"github.com/itsRabb/risqmap-status/internal/domain"
	"github.com/itsRabb/risqmap-status/internal/observability"
)

// Pipeline resolves station statuses for one polling cycle. It is total: a
// pass always yields a station list, never an error: its consumer is a
// dashboard that must degrade gracefully rather than blank out.
type Pipeline struct {
	catalog     *catalog.Catalog
	registry    Registry
	weather     domain.WeatherProvider
	cityTimeout time.Duration
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
}

// New creates a Pipeline. A nil registry resolves every station through the
// generic heuristic path.
func New(cat *catalog.Catalog, registry Registry, weather domain.WeatherProvider, cityTimeout time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		catalog:     cat,
		registry:    registry,
		weather:     weather,
		cityTimeout: cityTimeout,
		logger:      logger,
		metrics:     metrics,
	}
}

// CheckReadiness returns nil once at least one resolution pass has completed.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("no resolution pass has completed yet")
	}
	return nil
}

// Resolve runs one full pass: load the catalog, gather city overrides
// concurrently, and merge. Stations claimed by an override adopt its entry
// verbatim; the rest get the generic heuristic status with a fresh weather
// signal for their own coordinate.
func (p *Pipeline) Resolve(ctx context.Context, filter catalog.Filter) []domain.InfrastructureStation {
	start := time.Now()

	stations := p.catalog.Load(ctx, filter)
	statusMap := p.collectOverrides(ctx)

	now := domain.Now()
	for i := range stations {
		if entry, ok := statusMap[stations[i].Code]; ok {
			stations[i].Status = entry.Status
			stations[i].LastUpdated = entry.LastUpdated
			p.metrics.StationsResolved.WithLabelValues("override").Inc()
			continue
		}
		signal := domain.SafeSignal(ctx, p.weather, stations[i].Latitude, stations[i].Longitude, p.logger)
		stations[i].Status = domain.EstimateStatus(stations[i].PumpType, signal, now)
		stations[i].LastUpdated = now
		p.metrics.StationsResolved.WithLabelValues("heuristic").Inc()
	}

	p.metrics.ResolutionPasses.Inc()
	p.metrics.ResolutionDuration.Observe(time.Since(start).Seconds())
	if !p.ready.Swap(true) {
		p.metrics.ResolverReady.Set(1)
	}
	p.logger.Debug("resolution pass complete",
		"stations", len(stations),
		"overrides", len(statusMap),
		"duration", time.Since(start),
	)
	return stations
}

// collectOverrides fans out over the city registry, each call bounded by its
// own timeout, and fans the claimed entries into one combined map. A failing
// or slow city contributes nothing; it never aborts the pass.
func (p *Pipeline) collectOverrides(ctx context.Context) domain.StatusMap {
	combined := make(domain.StatusMap)
	if len(p.registry) == 0 {
		return combined
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)

	for city, override := range p.registry {
		g.Go(func() error {
			cityCtx, cancel := context.WithTimeout(ctx, p.cityTimeout)
			defer cancel()

			entries := p.runOverride(cityCtx, city, override)

			mu.Lock()
			defer mu.Unlock()
			for code, entry := range entries {
				combined[code] = entry
			}
			return nil
		})
	}
	_ = g.Wait() // overrides never return errors; Wait only joins the fan-out

	return combined
}

// runOverride executes one city rule with panic containment. An override that
// panics is treated the same as one that failed: empty map.
func (p *Pipeline) runOverride(ctx context.Context, city string, override OverrideFunc) (entries domain.StatusMap) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.Error("city override panicked", "city", city, "panic", r)
			p.metrics.CityOverrides.WithLabelValues(city, "empty").Inc()
			entries = nil
		}
	}()

	entries = override(ctx, p.weather, p.logger)

	outcome := "success"
	switch {
	case ctx.Err() != nil:
		outcome = "timeout"
	case len(entries) == 0:
		outcome = "empty"
	}
	p.metrics.CityOverrides.WithLabelValues(city, outcome).Inc()
	return entries
}
