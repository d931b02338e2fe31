package domain

import "time"

// Heuristic time windows, in local hours. Coarse deterministic approximations
// of tide tables and maintenance schedules, not real prediction data.
const (
	// Morning and evening high-tide windows for coastal defense pumps.
	morningTideStart = 5
	morningTideEnd   = 8
	eveningTideStart = 17
	eveningTideEnd   = 20

	// Overnight maintenance window for drainage basins.
	maintenanceStart = 2
	maintenanceEnd   = 6

	// MaintenanceChance is the probability a drainage basin inside its
	// maintenance window is actually down for maintenance.
	MaintenanceChance = 0.05
)

// InTideWindow reports whether hour falls inside a heuristic high-tide
// window.
func InTideWindow(hour int) bool {
	return (hour >= morningTideStart && hour <= morningTideEnd) ||
		(hour >= eveningTideStart && hour <= eveningTideEnd)
}

// InMaintenanceWindow reports whether t falls inside the drainage-basin
// maintenance window: the overnight hours, or Sunday before noon.
func InMaintenanceWindow(t time.Time) bool {
	hour := t.Hour()
	if hour >= maintenanceStart && hour <= maintenanceEnd {
		return true
	}
	return t.Weekday() == time.Sunday && hour < 12
}

// EstimateStatus is the generic heuristic path: it produces a status for a
// station lacking a telemetry or override entry, as a pure function of pump
// type, the weather signal, and the wall-clock time. Pure except for the
// drainage-basin maintenance draw, which goes through the injected
// RandomSource.
//
// The weather signal is currently unused by the generic rules (city overrides
// consume it) but stays in the signature so a rain-conditioned generic rule
// slots in without changing callers.
func EstimateStatus(pumpType PumpType, _ WeatherSignal, now time.Time) Status {
	switch pumpType {
	case PumpCoastalDefense:
		if InTideWindow(now.Hour()) {
			return StatusPumping
		}
		return StatusOperational
	case PumpDrainageBasin:
		if InMaintenanceWindow(now) && random.Float64() < MaintenanceChance {
			return StatusMaintenance
		}
		return StatusStandby
	case PumpStormwater:
		return StatusOperational
	case PumpRiverManagement:
		return StatusPumping
	default:
		return StatusOperational
	}
}

// RandomStatus returns a uniformly random status from the enumerated set.
// Used only by the fallback catalog as a rendering placeholder, never a
// ground-truth signal.
func RandomStatus() Status {
	return AllStatuses[random.IntN(len(AllStatuses))]
}
