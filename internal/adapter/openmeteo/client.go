// Package openmeteo implements domain.WeatherProvider against the Open-Meteo
// current-weather API.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/itsRabb/risqmap-status/internal/domain"
	"github.com/itsRabb/risqmap-status/internal/observability"
)

// Client fetches the current precipitation for a coordinate. It is a plain
// read-through client: no retry, no cache. Callers tolerate repeated cold
// calls because resolution passes run on a coarse polling cadence.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates an Open-Meteo client.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// CurrentSignal returns the weather signal for a coordinate. Failures are
// returned as errors; the fail-open policy lives in domain.SafeSignal, not
// here, so callers that do want to observe failures still can.
func (c *Client) CurrentSignal(ctx context.Context, lat, lon float64) (domain.WeatherSignal, error) {
	params := url.Values{
		"latitude":           {fmt.Sprintf("%.4f", lat)},
		"longitude":          {fmt.Sprintf("%.4f", lon)},
		"current":            {"precipitation"},
		"precipitation_unit": {"inch"},
	}
	fullURL := fmt.Sprintf("%s/v1/forecast?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.WeatherSignal{}, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.WeatherAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.WeatherRequests.WithLabelValues("error").Inc()
		return domain.WeatherSignal{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.WeatherRequests.WithLabelValues("error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return domain.WeatherSignal{}, fmt.Errorf("weather API error: status %d: %s", resp.StatusCode, body)
	}

	var weatherResp response
	if err := json.NewDecoder(resp.Body).Decode(&weatherResp); err != nil {
		c.metrics.WeatherRequests.WithLabelValues("error").Inc()
		return domain.WeatherSignal{}, fmt.Errorf("decode response: %w", err)
	}

	c.metrics.WeatherRequests.WithLabelValues("success").Inc()
	return domain.SignalFromPrecipitation(weatherResp.Current.Precipitation), nil
}

// Open-Meteo API response types.

type response struct {
	Current current `json:"current"`
}

type current struct {
	Precipitation float64 `json:"precipitation"`
}
