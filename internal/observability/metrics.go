package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// status inference service.
type Metrics struct {
	ResolutionPasses   prometheus.Counter
	ResolutionDuration prometheus.Histogram
	StationsResolved   *prometheus.CounterVec // labels: source={override,heuristic}
	CatalogFallbacks   prometheus.Counter
	ResolverReady      prometheus.Gauge

	// Weather fetch metrics.
	WeatherRequests    *prometheus.CounterVec // labels: outcome={success,error}
	WeatherAPIDuration prometheus.Histogram

	// City override metrics.
	CityOverrides *prometheus.CounterVec // labels: city, outcome={success,empty,timeout}

	// Gauge alerting metrics.
	AlertsRaised    *prometheus.CounterVec // labels: kind={current,forecast}, severity
	AlertsPublished prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		ResolutionPasses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "risqmap_status",
			Name:      "resolution_passes_total",
			Help:      "Total completed status resolution passes.",
		}),
		ResolutionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "risqmap_status",
			Name:      "resolution_duration_seconds",
			Help:      "Duration of a complete catalog-override-merge pass.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		StationsResolved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "risqmap_status",
			Name:      "stations_resolved_total",
			Help:      "Stations resolved per pass by status source.",
		}, []string{"source"}),
		CatalogFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "risqmap_status",
			Name:      "catalog_fallbacks_total",
			Help:      "Times the catalog served the fixed fallback list instead of the store.",
		}),
		ResolverReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "risqmap_status",
			Name:      "resolver_ready",
			Help:      "1 once the resolver has completed at least one pass.",
		}),
		WeatherRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "risqmap_status",
			Name:      "weather_requests_total",
			Help:      "Weather API requests by outcome.",
		}, []string{"outcome"}),
		WeatherAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "risqmap_status",
			Name:      "weather_api_duration_seconds",
			Help:      "Weather API request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		CityOverrides: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "risqmap_status",
			Name:      "city_overrides_total",
			Help:      "Per-city override executions by outcome.",
		}, []string{"city", "outcome"}),
		AlertsRaised: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "risqmap_status",
			Name:      "alerts_raised_total",
			Help:      "Flood alerts derived from gauge assessments by kind and severity.",
		}, []string{"kind", "severity"}),
		AlertsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "risqmap_status",
			Name:      "alerts_published_total",
			Help:      "Flood alerts published to the alert topic.",
		}),
	}

	prometheus.MustRegister(
		m.ResolutionPasses,
		m.ResolutionDuration,
		m.StationsResolved,
		m.CatalogFallbacks,
		m.ResolverReady,
		m.WeatherRequests,
		m.WeatherAPIDuration,
		m.CityOverrides,
		m.AlertsRaised,
		m.AlertsPublished,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		ResolutionPasses:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "risqmap_status", Name: "resolution_passes_total"}),
		ResolutionDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "risqmap_status", Name: "resolution_duration_seconds"}),
		StationsResolved:   prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "risqmap_status", Name: "stations_resolved_total"}, []string{"source"}),
		CatalogFallbacks:   prometheus.NewCounter(prometheus.CounterOpts{Namespace: "risqmap_status", Name: "catalog_fallbacks_total"}),
		ResolverReady:      prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "risqmap_status", Name: "resolver_ready"}),
		WeatherRequests:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "risqmap_status", Name: "weather_requests_total"}, []string{"outcome"}),
		WeatherAPIDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "risqmap_status", Name: "weather_api_duration_seconds"}),
		CityOverrides:      prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "risqmap_status", Name: "city_overrides_total"}, []string{"city", "outcome"}),
		AlertsRaised:       prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "risqmap_status", Name: "alerts_raised_total"}, []string{"kind", "severity"}),
		AlertsPublished:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "risqmap_status", Name: "alerts_published_total"}),
	}
}
