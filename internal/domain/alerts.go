package domain

import "time"

// AlertKind distinguishes an alert on current conditions from one on a
// forecast point.
type AlertKind string

const (
	AlertCurrent  AlertKind = "current"
	AlertForecast AlertKind = "forecast"
)

// FloodAlert is one alert derived from a gauge's stage and thresholds. At
// most one current and one forecast alert exist per gauge per pass.
type FloodAlert struct {
	GaugeCode string        `json:"gaugeCode"`
	GaugeName string        `json:"gaugeName,omitempty"`
	Kind      AlertKind     `json:"kind"`
	Severity  FloodCategory `json:"severity"`
	Stage     float64       `json:"stage"`
	// Timestamp is the breaching forecast point's time; zero for current alerts.
	Timestamp time.Time `json:"timestamp,omitempty"`
	// HoursUntil is the lead time to the breaching forecast point, rounded to
	// the nearest hour; zero for current alerts.
	HoursUntil int       `json:"hoursUntil,omitempty"`
	IssuedAt   time.Time `json:"issuedAt"`
}

// GaugeAssessment is a gauge with its derived category and alerts, ready for
// the presentation layer.
type GaugeAssessment struct {
	Gauge           Gauge         `json:"gauge"`
	CurrentCategory FloodCategory `json:"currentCategory"`
	CurrentAlert    *FloodAlert   `json:"currentAlert,omitempty"`
	ForecastAlert   *FloodAlert   `json:"forecastAlert,omitempty"`
}

// AssessGauge classifies a gauge's current stage and both stage series, and
// derives its alerts. The observed and forecast series are stamped through
// the same classifier.
func AssessGauge(g Gauge) GaugeAssessment {
	g.ObservedHistory = ClassifySeries(g.ObservedHistory, g.Thresholds)
	g.Forecast = ClassifySeries(g.Forecast, g.Thresholds)

	return GaugeAssessment{
		Gauge:           g,
		CurrentCategory: ClassifyStage(g.CurrentStage, g.Thresholds),
		CurrentAlert:    currentAlert(g),
		ForecastAlert:   forecastAlert(g),
	}
}

// currentAlert raises an alert when the present stage is at or above flood
// stage. Severity reuses the classifier bands; action-level is never
// alert-worthy, and the stage >= flood guard means the classifier can only
// return minor or above here.
func currentAlert(g Gauge) *FloodAlert {
	if !g.Thresholds.Valid() || g.CurrentStage < g.Thresholds.Flood {
		return nil
	}
	return &FloodAlert{
		GaugeCode: g.Code,
		GaugeName: g.Name,
		Kind:      AlertCurrent,
		Severity:  ClassifyStage(g.CurrentStage, g.Thresholds),
		Stage:     g.CurrentStage,
		IssuedAt:  clock.Now(),
	}
}

// forecastAlert raises an alert for the first forecast point, in chronological
// order, whose stage reaches flood stage. Later breaching points do not
// produce additional alerts.
func forecastAlert(g Gauge) *FloodAlert {
	if !g.Thresholds.Valid() {
		return nil
	}
	now := clock.Now()
	for _, point := range g.Forecast {
		if point.Stage < g.Thresholds.Flood {
			continue
		}
		return &FloodAlert{
			GaugeCode:  g.Code,
			GaugeName:  g.Name,
			Kind:       AlertForecast,
			Severity:   ClassifyStage(point.Stage, g.Thresholds),
			Stage:      point.Stage,
			Timestamp:  point.Timestamp,
			HoursUntil: roundToHours(point.Timestamp.Sub(now)),
			IssuedAt:   now,
		}
	}
	return nil
}

// roundToHours rounds a duration to the nearest whole hour.
func roundToHours(d time.Duration) int {
	return int(d.Round(time.Hour) / time.Hour)
}
