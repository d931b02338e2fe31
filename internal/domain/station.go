package domain

import "time"

// Status is the operational state of a piece of flood-control infrastructure.
// A station always carries exactly one of these values; it is never empty.
type Status string

const (
	StatusOperational Status = "operational"
	StatusPumping     Status = "pumping"
	StatusStandby     Status = "standby"
	StatusMaintenance Status = "maintenance"
	StatusOffline     Status = "offline"
	StatusNoData      Status = "no_data"
)

// AllStatuses lists every valid status, in the order the fallback catalog
// samples from.
var AllStatuses = []Status{
	StatusOperational,
	StatusPumping,
	StatusStandby,
	StatusMaintenance,
	StatusOffline,
	StatusNoData,
}

// Valid reports whether s is one of the enumerated statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusOperational, StatusPumping, StatusStandby,
		StatusMaintenance, StatusOffline, StatusNoData:
		return true
	}
	return false
}

// PumpType classifies a station by function. It selects the heuristic branch
// used when no override or telemetry entry covers the station, and is
// immutable once the catalog record exists.
type PumpType string

const (
	PumpStormwater      PumpType = "stormwater"
	PumpDrainageBasin   PumpType = "drainage_basin"
	PumpCoastalDefense  PumpType = "coastal_defense"
	PumpRiverManagement PumpType = "river_management"
)

// InfrastructureStation is one pump station record as served to the
// dashboard. Code is the stable human-assigned identifier; ID is the storage
// key. LastUpdated reflects the most recent status computation, which may be
// heuristic rather than measured.
type InfrastructureStation struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name,omitempty"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	PumpType    PumpType  `json:"pumpType"`
	Status      Status    `json:"status"`
	LastUpdated time.Time `json:"lastUpdated"`

	// Descriptive fields, not used by status logic.
	CapacityGpm  float64 `json:"capacityGpm,omitempty"`
	Operator     string  `json:"operator,omitempty"`
	Contact      string  `json:"contact,omitempty"`
	DashboardURL string  `json:"dashboardUrl,omitempty"`
}

// StatusEntry is one station's entry in the combined status map produced by
// the per-city overrides (or, eventually, a real telemetry feed). The
// resolver adopts matching entries verbatim.
type StatusEntry struct {
	Status      Status    `json:"status"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// StatusMap keys StatusEntry by station code.
type StatusMap map[string]StatusEntry
