package domain

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
)

// stubRandom pins both random draws.
type stubRandom struct {
	float float64
	n     int
}

func (s stubRandom) Float64() float64 { return s.float }
func (s stubRandom) IntN(int) int     { return s.n }

// 2024-04-22 is a Monday.
func mondayAt(hour int) time.Time {
	return time.Date(2024, 4, 22, hour, 0, 0, 0, time.UTC)
}

func TestEstimateStatus_CoastalDefense(t *testing.T) {
	tests := []struct {
		name     string
		hour     int
		expected Status
	}{
		{"before morning tide", 4, StatusOperational},
		{"morning tide start", 5, StatusPumping},
		{"morning tide end", 8, StatusPumping},
		{"after morning tide", 9, StatusOperational},
		{"midday", 12, StatusOperational},
		{"evening tide start", 17, StatusPumping},
		{"evening tide end", 20, StatusPumping},
		{"after evening tide", 21, StatusOperational},
		{"midnight", 0, StatusOperational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateStatus(PumpCoastalDefense, NeutralSignal, mondayAt(tt.hour))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEstimateStatus_DrainageBasin(t *testing.T) {
	t.Cleanup(func() { SetRandomSource(nil) })

	t.Run("maintenance window with draw hitting", func(t *testing.T) {
		SetRandomSource(stubRandom{float: 0.0})
		got := EstimateStatus(PumpDrainageBasin, NeutralSignal, mondayAt(3))
		assert.Equal(t, StatusMaintenance, got)
	})

	t.Run("maintenance window with draw missing", func(t *testing.T) {
		SetRandomSource(stubRandom{float: 0.99})
		got := EstimateStatus(PumpDrainageBasin, NeutralSignal, mondayAt(3))
		assert.Equal(t, StatusStandby, got)
	})

	t.Run("outside window the draw never fires", func(t *testing.T) {
		SetRandomSource(stubRandom{float: 0.0})
		got := EstimateStatus(PumpDrainageBasin, NeutralSignal, mondayAt(14))
		assert.Equal(t, StatusStandby, got)
	})

	t.Run("sunday morning counts as maintenance window", func(t *testing.T) {
		SetRandomSource(stubRandom{float: 0.0})
		sunday := time.Date(2024, 4, 21, 10, 0, 0, 0, time.UTC)
		got := EstimateStatus(PumpDrainageBasin, NeutralSignal, sunday)
		assert.Equal(t, StatusMaintenance, got)
	})

	t.Run("sunday afternoon is outside the window", func(t *testing.T) {
		SetRandomSource(stubRandom{float: 0.0})
		sunday := time.Date(2024, 4, 21, 13, 0, 0, 0, time.UTC)
		got := EstimateStatus(PumpDrainageBasin, NeutralSignal, sunday)
		assert.Equal(t, StatusStandby, got)
	})
}

func TestEstimateStatus_FixedTypes(t *testing.T) {
	rainy := SignalFromPrecipitation(0.5)

	tests := []struct {
		name     string
		pumpType PumpType
		expected Status
	}{
		{"stormwater is always operational", PumpStormwater, StatusOperational},
		{"river management is always pumping", PumpRiverManagement, StatusPumping},
		{"unknown type defaults to operational", PumpType("levee"), StatusOperational},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for hour := 0; hour < 24; hour++ {
				assert.Equal(t, tt.expected, EstimateStatus(tt.pumpType, NeutralSignal, mondayAt(hour)))
				assert.Equal(t, tt.expected, EstimateStatus(tt.pumpType, rainy, mondayAt(hour)))
			}
		})
	}
}

// Every pump type must yield a valid enumerated status for every hour and
// weather combination, never no_data or an out-of-range value.
func TestEstimateStatus_AlwaysValidEnum(t *testing.T) {
	t.Cleanup(func() { SetRandomSource(nil) })

	pumpTypes := []PumpType{
		PumpStormwater, PumpDrainageBasin, PumpCoastalDefense, PumpRiverManagement,
	}
	signals := []WeatherSignal{NeutralSignal, SignalFromPrecipitation(1.2)}
	draws := []stubRandom{{float: 0.0}, {float: 0.99}}

	for _, pt := range pumpTypes {
		for _, sig := range signals {
			for _, draw := range draws {
				SetRandomSource(draw)
				for hour := 0; hour < 24; hour++ {
					got := EstimateStatus(pt, sig, mondayAt(hour))
					assert.True(t, got.Valid(), "pumpType=%s hour=%d status=%s", pt, hour, got)
					assert.NotEqual(t, StatusNoData, got)
				}
			}
		}
	}
}

func TestRandomStatus_DrawsFromEnum(t *testing.T) {
	t.Cleanup(func() { SetRandomSource(nil) })

	for i := range AllStatuses {
		SetRandomSource(stubRandom{n: i})
		assert.Equal(t, AllStatuses[i], RandomStatus())
	}
}

func TestSetClock(t *testing.T) {
	t.Cleanup(func() { SetClock(nil) })

	frozen := time.Date(2024, 4, 22, 3, 0, 0, 0, time.UTC)
	SetClock(clockwork.NewFakeClockAt(frozen))
	assert.Equal(t, frozen, Now())

	SetClock(nil)
	assert.WithinDuration(t, time.Now(), Now(), time.Minute)
}
