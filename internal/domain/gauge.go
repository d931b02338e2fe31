package domain

import "time"

// FloodCategory is the severity band of a gauge reading.
type FloodCategory string

const (
	CategoryNone     FloodCategory = "none"
	CategoryAction   FloodCategory = "action"
	CategoryMinor    FloodCategory = "minor"
	CategoryModerate FloodCategory = "moderate"
	CategoryMajor    FloodCategory = "major"
)

// Rank orders categories by severity: none(0) < action(1) < minor(2) <
// moderate(3) < major(4). Unknown categories rank below none.
func (c FloodCategory) Rank() int {
	switch c {
	case CategoryNone:
		return 0
	case CategoryAction:
		return 1
	case CategoryMinor:
		return 2
	case CategoryModerate:
		return 3
	case CategoryMajor:
		return 4
	default:
		return -1
	}
}

// Thresholds are a gauge's four NOAA-style stage thresholds. They must be
// non-decreasing: Action <= Flood <= Moderate <= Major.
type Thresholds struct {
	Action   float64 `json:"actionStage"`
	Flood    float64 `json:"floodStage"`
	Moderate float64 `json:"moderateFloodStage"`
	Major    float64 `json:"majorFloodStage"`
}

// Valid reports whether the thresholds are non-decreasing. Source data
// occasionally violates this; the classifier degrades to CategoryNone rather
// than producing a misleading band from a malformed set.
func (t Thresholds) Valid() bool {
	return t.Action <= t.Flood && t.Flood <= t.Moderate && t.Moderate <= t.Major
}

// ObservationPoint is one (timestamp, stage) reading, observed or forecast.
// Category is derived from the stage and the owning gauge's thresholds, never
// stored independently of them.
type ObservationPoint struct {
	Timestamp time.Time     `json:"timestamp"`
	Stage     float64       `json:"stage"`
	Category  FloodCategory `json:"floodCategory,omitempty"`
}

// Gauge is a river gauge with its thresholds and stage series. Both series
// are replaced wholesale on each fetch; there is no incremental merge.
type Gauge struct {
	ID              string             `json:"id"`
	Code            string             `json:"code"`
	Name            string             `json:"name,omitempty"`
	Latitude        float64            `json:"latitude"`
	Longitude       float64            `json:"longitude"`
	City            string             `json:"city"`
	State           string             `json:"state"`
	Thresholds      Thresholds         `json:"thresholds"`
	CurrentStage    float64            `json:"currentStage"`
	ObservedHistory []ObservationPoint `json:"observedHistory,omitempty"`
	Forecast        []ObservationPoint `json:"forecast,omitempty"`
}
