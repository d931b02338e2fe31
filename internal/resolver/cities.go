package resolver

import (
	"context"
	"log/slog"

	"github.com/itsRabb/risqmap-status/internal/domain"
)

// OverrideFunc is one city's status rule. It returns a status map keyed by
// station code for the stations it claims; stations it leaves out fall
// through to the generic heuristics. An override must contain its own
// failures: on any problem it returns an empty map, never an error, so the
// merge step simply has fewer overrides to apply.
type OverrideFunc func(ctx context.Context, weather domain.WeatherProvider, logger *slog.Logger) domain.StatusMap

// Registry maps a city key to its override rule. Modeled as plain data so a
// genuine telemetry integration can replace or extend individual entries
// without touching the resolver's merge contract.
type Registry map[string]OverrideFunc

// DefaultRegistry returns the production override set. Each city fetches
// weather for its own representative coordinate and applies a local rule:
//
//	Jakarta:   coastal stations always pumping (runs continuously regardless
//	           of tide), river stations pumping only while raining
//	Semarang:  pumping only while raining, else standby
//	Surabaya:  maintenance during the computed overnight window, else standby
//	Bandung:   standby unless raining
func DefaultRegistry() Registry {
	return Registry{
		"jakarta":  jakartaOverride,
		"semarang": semarangOverride,
		"surabaya": surabayaOverride,
		"bandung":  bandungOverride,
	}
}

// Representative coordinates for per-city weather fetches.
var cityCoordinates = map[string][2]float64{
	"jakarta":  {-6.1930, 106.8230},
	"semarang": {-6.9667, 110.4167},
	"surabaya": {-7.2575, 112.7521},
	"bandung":  {-6.9175, 107.6191},
}

func jakartaOverride(ctx context.Context, weather domain.WeatherProvider, logger *slog.Logger) domain.StatusMap {
	coord := cityCoordinates["jakarta"]
	signal := domain.SafeSignal(ctx, weather, coord[0], coord[1], logger)
	now := domain.Now()

	riverStatus := domain.StatusStandby
	if signal.IsRaining {
		riverStatus = domain.StatusPumping
	}

	// Jakarta's coastal infrastructure runs continuously regardless of tide.
	return domain.StatusMap{
		"JKT-PLUIT-01":     {Status: domain.StatusPumping, LastUpdated: now},
		"JKT-ANCOL-01":     {Status: domain.StatusPumping, LastUpdated: now},
		"JKT-MANGGARAI-01": {Status: riverStatus, LastUpdated: now},
	}
}

func semarangOverride(ctx context.Context, weather domain.WeatherProvider, logger *slog.Logger) domain.StatusMap {
	coord := cityCoordinates["semarang"]
	signal := domain.SafeSignal(ctx, weather, coord[0], coord[1], logger)
	now := domain.Now()

	status := domain.StatusStandby
	if signal.IsRaining {
		status = domain.StatusPumping
	}

	return domain.StatusMap{
		"SMG-MARINA-01": {Status: status, LastUpdated: now},
		"SMG-BANGER-01": {Status: status, LastUpdated: now},
	}
}

func surabayaOverride(ctx context.Context, weather domain.WeatherProvider, logger *slog.Logger) domain.StatusMap {
	coord := cityCoordinates["surabaya"]
	signal := domain.SafeSignal(ctx, weather, coord[0], coord[1], logger)
	now := domain.Now()

	status := domain.StatusStandby
	switch {
	case domain.InMaintenanceWindow(now):
		status = domain.StatusMaintenance
	case signal.IsRaining:
		status = domain.StatusPumping
	}

	return domain.StatusMap{
		"SBY-WONOREJO-01": {Status: status, LastUpdated: now},
	}
}

func bandungOverride(ctx context.Context, weather domain.WeatherProvider, logger *slog.Logger) domain.StatusMap {
	coord := cityCoordinates["bandung"]
	signal := domain.SafeSignal(ctx, weather, coord[0], coord[1], logger)
	now := domain.Now()

	status := domain.StatusStandby
	if signal.IsRaining {
		status = domain.StatusOperational
	}

	return domain.StatusMap{
		"BDG-CIDURIAN-01": {Status: status, LastUpdated: now},
	}
}
