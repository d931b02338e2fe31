// Package gauges assesses river gauges: classification of current and
// forecast stages, alert derivation, and optional alert publishing.
package gauges

import (
	"context"
	"log/slog"

	"github.com/itsRabb/risqmap-status/internal/domain"
	"github.com/itsRabb/risqmap-status/internal/observability"
)

// Store is the persistent gauge source.
type Store interface {
	ListGauges(ctx context.Context) ([]domain.Gauge, error)
}

// ForecastProvider supplies a gauge's forecast series. This is the seam a
// real river-forecast integration plugs into; the default implementation
// returns no data.
type ForecastProvider interface {
	Forecast(ctx context.Context, gauge domain.Gauge) ([]domain.ObservationPoint, error)
}

// NoForecast is the provider used when no real forecast integration is
// configured. Unlike the pump-status path, which always fabricates an
// estimate, the gauge path deliberately returns no data rather than a
// fabricated series.
type NoForecast struct{}

func (NoForecast) Forecast(context.Context, domain.Gauge) ([]domain.ObservationPoint, error) {
	return nil, nil
}

// AlertPublisher forwards derived alerts to downstream consumers.
type AlertPublisher interface {
	PublishAlerts(ctx context.Context, alerts []domain.FloodAlert) error
}

// Service runs gauge assessment passes.
type Service struct {
	store     Store
	forecasts ForecastProvider
	publisher AlertPublisher
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Service. A nil forecasts provider behaves as NoForecast; a
// nil publisher disables publishing.
func New(store Store, forecasts ForecastProvider, publisher AlertPublisher, logger *slog.Logger, metrics *observability.Metrics) *Service {
	if forecasts == nil {
		forecasts = NoForecast{}
	}
	return &Service{
		store:     store,
		forecasts: forecasts,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// Assess loads all gauges, attaches forecast series, classifies, and derives
// alerts. Unlike the station pipeline there is no fallback dataset: when the
// store cannot answer, the result is an empty list, not fabricated gauges.
func (s *Service) Assess(ctx context.Context) []domain.GaugeAssessment {
	if s.store == nil {
		return nil
	}
	gaugeList, err := s.store.ListGauges(ctx)
	if err != nil {
		s.logger.Warn("gauge store query failed, returning no assessments", "error", err)
		return nil
	}

	assessments := make([]domain.GaugeAssessment, 0, len(gaugeList))
	var alerts []domain.FloodAlert

	for _, g := range gaugeList {
		forecast, err := s.forecasts.Forecast(ctx, g)
		switch {
		case err != nil:
			s.logger.Warn("forecast fetch failed, assessing without forecast",
				"gauge", g.Code,
				"error", err,
			)
		case len(forecast) > 0:
			// A provider series replaces whatever the store loaded; an
			// empty answer keeps the stored series.
			g.Forecast = forecast
		}

		assessment := domain.AssessGauge(g)
		assessments = append(assessments, assessment)

		for _, alert := range []*domain.FloodAlert{assessment.CurrentAlert, assessment.ForecastAlert} {
			if alert == nil {
				continue
			}
			s.metrics.AlertsRaised.WithLabelValues(string(alert.Kind), string(alert.Severity)).Inc()
			alerts = append(alerts, *alert)
		}
	}

	s.publish(ctx, alerts)
	return assessments
}

// publish forwards alerts best-effort: a publisher failure is logged, never
// surfaced, because assessment results must still reach the dashboard.
func (s *Service) publish(ctx context.Context, alerts []domain.FloodAlert) {
	if s.publisher == nil || len(alerts) == 0 {
		return
	}
	if err := s.publisher.PublishAlerts(ctx, alerts); err != nil {
		s.logger.Warn("alert publish failed", "alerts", len(alerts), "error", err)
		return
	}
	s.metrics.AlertsPublished.Add(float64(len(alerts)))
}
