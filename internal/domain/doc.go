// Package domain models flood-control infrastructure status and river gauge
// flood-stage classification for the RisqMap dashboard.
//
// # Status Inference
//
// No SCADA or telemetry feed exists for the pump stations this service
// tracks. Operational status is therefore inferred from two heuristic inputs:
//
//	Weather:      current precipitation at the station (or city) coordinate.
//	              Raining means precipitation above 0.01 inches in the
//	              current accumulation window. See [RainThreshold].
//	Time-of-day:  coarse local-time windows standing in for tide tables and
//	              maintenance schedules. Coastal pumps run during the
//	              approximate high-tide windows 05:00-08:59 and 17:00-20:59;
//	              drainage basins enter a maintenance window 02:00-06:59 or
//	              Sunday mornings.
//
// The tide windows are a deterministic approximation, not tidal-prediction
// data. A real telemetry integration would plug in at the resolver's status
// map seam without touching this package.
//
// # Resolution Order
//
// For each station the resolver first consults the per-city override map
// (stations a city rule has claimed keep that entry verbatim). Stations left
// unclaimed fall through to [EstimateStatus], which branches on pump type:
//
//	coastal_defense:   pumping inside a tide window, else operational
//	drainage_basin:    5% maintenance chance inside the window, else standby
//	stormwater:        operational
//	river_management:  pumping
//
// The maintenance draw goes through the injectable [RandomSource] so tests
// can pin either outcome.
//
// # Flood-Stage Categories
//
// Gauges carry four non-decreasing NOAA-style thresholds
// (action <= flood <= moderate <= major). [ClassifyStage] maps a stage
// reading onto the five-level scale none < action < minor < moderate < major,
// highest band wins. The same function classifies observed history and
// forecast points; there is no separate forecast path.
//
// Alerts derive from the flood threshold: one current alert when the present
// stage breaches it, and one forecast alert for the earliest breaching
// forecast point. Action-level readings never alert.
package domain
