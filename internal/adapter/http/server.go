// Package http exposes the dashboard-facing API plus health, readiness, and
// metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/itsRabb/risqmap-status/internal/catalog"
	"github.com/itsRabb/risqmap-status/internal/domain"
)

// StationResolver produces the merged station list for one request.
type StationResolver interface {
	Resolve(ctx context.Context, filter catalog.Filter) []domain.InfrastructureStation
	CheckReadiness(ctx context.Context) error
}

// GaugeAssessor produces gauge assessments for one request.
type GaugeAssessor interface {
	Assess(ctx context.Context) []domain.GaugeAssessment
}

// Server exposes the station, gauge, health, readiness, and metrics routes.
type Server struct {
	httpServer *http.Server
	resolver   StationResolver
	gauges     GaugeAssessor
	logger     *slog.Logger
}

// NewServer creates the HTTP server and wires its routes.
func NewServer(addr string, resolver StationResolver, gauges GaugeAssessor, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		resolver: resolver,
		gauges:   gauges,
		logger:   logger,
	}

	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /v1/stations", s.handleStations)
	mux.HandleFunc("GET /v1/gauges", s.handleGauges)

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := s.resolver.CheckReadiness(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "not ready",
			"error":  err.Error(),
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleStations runs a resolution pass. The pipeline is total, so this
// endpoint always answers 200 with a list.
func (s *Server) handleStations(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	stations := s.resolver.Resolve(r.Context(), filter)
	writeJSON(w, http.StatusOK, map[string]any{
		"stations": stations,
		"count":    len(stations),
	})
}

func (s *Server) handleGauges(w http.ResponseWriter, r *http.Request) {
	assessments := s.gauges.Assess(r.Context())
	writeJSON(w, http.StatusOK, map[string]any{
		"gauges": assessments,
		"count":  len(assessments),
	})
}

func parseFilter(r *http.Request) (catalog.Filter, error) {
	q := r.URL.Query()
	filter := catalog.Filter{
		City:  q.Get("city"),
		State: q.Get("state"),
	}

	if status := q.Get("status"); status != "" {
		s := domain.Status(status)
		if !s.Valid() {
			return catalog.Filter{}, &badParamError{param: "status", value: status}
		}
		filter.Status = s
	}
	if limit := q.Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			return catalog.Filter{}, &badParamError{param: "limit", value: limit}
		}
		filter.Limit = n
	}
	return filter, nil
}

type badParamError struct {
	param string
	value string
}

func (e *badParamError) Error() string {
	return "invalid " + e.param + ": " + e.value
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
