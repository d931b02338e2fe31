package domain

import (
	"context"
	"log/slog"
)

// RainThreshold is the precipitation level (inches per current accumulation
// window) above which a coordinate counts as raining.
const RainThreshold = 0.01

// WeatherSignal is the per-coordinate heuristic input. Ephemeral: fetched
// fresh each resolution pass, never persisted.
type WeatherSignal struct {
	IsRaining     bool    `json:"isRaining"`
	Precipitation float64 `json:"precipitation"`
}

// NeutralSignal is the signal used when no weather data is available. Absence
// of weather data must never block status computation; it only removes one
// heuristic input.
var NeutralSignal = WeatherSignal{IsRaining: false, Precipitation: 0}

// SignalFromPrecipitation derives a WeatherSignal from a raw precipitation
// reading.
func SignalFromPrecipitation(precipitation float64) WeatherSignal {
	return WeatherSignal{
		IsRaining:     precipitation > RainThreshold,
		Precipitation: precipitation,
	}
}

// WeatherProvider fetches the current precipitation signal for a coordinate.
type WeatherProvider interface {
	CurrentSignal(ctx context.Context, lat, lon float64) (WeatherSignal, error)
}

// SafeSignal fetches a weather signal and applies the fail-open contract: on
// any fetch or parse failure (or a nil provider) it logs a warning and
// returns the neutral signal instead of an error.
func SafeSignal(ctx context.Context, provider WeatherProvider, lat, lon float64, logger *slog.Logger) WeatherSignal {
	if provider == nil {
		return NeutralSignal
	}
	signal, err := provider.CurrentSignal(ctx, lat, lon)
	if err != nil {
		logger.Warn("weather fetch failed, using neutral signal",
			"lat", lat,
			"lon", lon,
			"error", err,
		)
		return NeutralSignal
	}
	return signal
}
