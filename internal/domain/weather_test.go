package domain

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubWeather struct {
	signal WeatherSignal
	err    error
}

func (s stubWeather) CurrentSignal(context.Context, float64, float64) (WeatherSignal, error) {
	return s.signal, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSignalFromPrecipitation(t *testing.T) {
	tests := []struct {
		name          string
		precipitation float64
		raining       bool
	}{
		{"dry", 0, false},
		{"at threshold", RainThreshold, false},
		{"just above threshold", 0.011, true},
		{"heavy rain", 1.4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			signal := SignalFromPrecipitation(tt.precipitation)
			assert.Equal(t, tt.raining, signal.IsRaining)
			assert.Equal(t, tt.precipitation, signal.Precipitation)
		})
	}
}

func TestSafeSignal_PassThrough(t *testing.T) {
	provider := stubWeather{signal: WeatherSignal{IsRaining: true, Precipitation: 0.3}}

	signal := SafeSignal(context.Background(), provider, -6.2, 106.8, discardLogger())

	assert.True(t, signal.IsRaining)
	assert.Equal(t, 0.3, signal.Precipitation)
}

func TestSafeSignal_FailOpen(t *testing.T) {
	// A fetch failure must never surface: the caller gets the neutral signal
	// and keeps computing with one fewer heuristic input.
	provider := stubWeather{err: errors.New("connection refused")}

	signal := SafeSignal(context.Background(), provider, -6.2, 106.8, discardLogger())

	assert.Equal(t, NeutralSignal, signal)
}

func TestSafeSignal_NilProvider(t *testing.T) {
	signal := SafeSignal(context.Background(), nil, -6.2, 106.8, discardLogger())
	assert.Equal(t, NeutralSignal, signal)
}
