package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGauge() Gauge {
	return Gauge{
		ID:         "g-1",
		Code:       "CILIWUNG-MT",
		Name:       "Ciliwung at Manggarai",
		City:       "Jakarta",
		State:      "DKI Jakarta",
		Thresholds: testThresholds,
	}
}

func freezeAt(t *testing.T, at time.Time) {
	t.Helper()
	SetClock(clockwork.NewFakeClockAt(at))
	t.Cleanup(func() { SetClock(nil) })
}

func TestAssessGauge_ForecastAlert(t *testing.T) {
	now := time.Date(2024, 4, 22, 9, 0, 0, 0, time.UTC)
	freezeAt(t, now)

	g := testGauge()
	g.CurrentStage = 8
	for i, stage := range []float64{8, 10, 13, 15} {
		g.Forecast = append(g.Forecast, ObservationPoint{
			Timestamp: now.Add(time.Duration(i+1) * time.Hour),
			Stage:     stage,
		})
	}

	result := AssessGauge(g)

	assert.Nil(t, result.CurrentAlert)
	require.NotNil(t, result.ForecastAlert)

	// Exactly one forecast alert, referencing the first breaching point
	// (stage 13 at +3h), not the later stage-15 point.
	alert := result.ForecastAlert
	assert.Equal(t, AlertForecast, alert.Kind)
	assert.Equal(t, "CILIWUNG-MT", alert.GaugeCode)
	assert.Equal(t, 13.0, alert.Stage)
	assert.Equal(t, CategoryMinor, alert.Severity)
	assert.Equal(t, now.Add(3*time.Hour), alert.Timestamp)
	assert.Equal(t, 3, alert.HoursUntil)
	assert.Equal(t, now, alert.IssuedAt)
}

func TestAssessGauge_CurrentAlert(t *testing.T) {
	now := time.Date(2024, 4, 22, 9, 0, 0, 0, time.UTC)
	freezeAt(t, now)

	tests := []struct {
		name     string
		stage    float64
		severity FloodCategory
	}{
		{"at flood stage", 12, CategoryMinor},
		{"at moderate", 14.5, CategoryModerate},
		{"at major", 16.2, CategoryMajor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGauge()
			g.CurrentStage = tt.stage

			result := AssessGauge(g)

			require.NotNil(t, result.CurrentAlert)
			assert.Equal(t, AlertCurrent, result.CurrentAlert.Kind)
			assert.Equal(t, tt.severity, result.CurrentAlert.Severity)
			assert.Equal(t, tt.stage, result.CurrentAlert.Stage)
			assert.Equal(t, tt.severity, result.CurrentCategory)
		})
	}
}

func TestAssessGauge_ActionLevelNeverAlerts(t *testing.T) {
	freezeAt(t, time.Date(2024, 4, 22, 9, 0, 0, 0, time.UTC))

	g := testGauge()
	g.CurrentStage = 11 // action band, below flood stage

	result := AssessGauge(g)

	assert.Equal(t, CategoryAction, result.CurrentCategory)
	assert.Nil(t, result.CurrentAlert)
	assert.Nil(t, result.ForecastAlert)
}

func TestAssessGauge_HoursUntilRounding(t *testing.T) {
	now := time.Date(2024, 4, 22, 9, 0, 0, 0, time.UTC)
	freezeAt(t, now)

	tests := []struct {
		name     string
		lead     time.Duration
		expected int
	}{
		{"rounds down", 2*time.Hour + 20*time.Minute, 2},
		{"rounds up", 2*time.Hour + 40*time.Minute, 3},
		{"exact", 5 * time.Hour, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := testGauge()
			g.Forecast = []ObservationPoint{{Timestamp: now.Add(tt.lead), Stage: 13}}

			result := AssessGauge(g)

			require.NotNil(t, result.ForecastAlert)
			assert.Equal(t, tt.expected, result.ForecastAlert.HoursUntil)
		})
	}
}

func TestAssessGauge_EmptyForecast(t *testing.T) {
	freezeAt(t, time.Date(2024, 4, 22, 9, 0, 0, 0, time.UTC))

	// The forecast path legitimately returns no data when the real forecast
	// integration is absent; no alert is fabricated from an empty series.
	g := testGauge()
	g.CurrentStage = 9

	result := AssessGauge(g)

	assert.Nil(t, result.ForecastAlert)
	assert.Empty(t, result.Gauge.Forecast)
}

func TestAssessGauge_StampsSeriesCategories(t *testing.T) {
	freezeAt(t, time.Date(2024, 4, 22, 9, 0, 0, 0, time.UTC))

	g := testGauge()
	g.ObservedHistory = []ObservationPoint{{Stage: 11}, {Stage: 15}}
	g.Forecast = []ObservationPoint{{Stage: 16.5}}

	result := AssessGauge(g)

	assert.Equal(t, CategoryAction, result.Gauge.ObservedHistory[0].Category)
	assert.Equal(t, CategoryModerate, result.Gauge.ObservedHistory[1].Category)
	assert.Equal(t, CategoryMajor, result.Gauge.Forecast[0].Category)
}

func TestAssessGauge_MalformedThresholds(t *testing.T) {
	freezeAt(t, time.Date(2024, 4, 22, 9, 0, 0, 0, time.UTC))

	g := testGauge()
	g.Thresholds = Thresholds{Action: 16, Flood: 12, Moderate: 10, Major: 8}
	g.CurrentStage = 20
	g.Forecast = []ObservationPoint{{Timestamp: Now().Add(time.Hour), Stage: 20}}

	result := AssessGauge(g)

	assert.Equal(t, CategoryNone, result.CurrentCategory)
	assert.Nil(t, result.CurrentAlert)
	assert.Nil(t, result.ForecastAlert)
}
