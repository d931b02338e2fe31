// Package postgres implements the station and gauge stores against a
// PostgreSQL database via pgx.
package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/itsRabb/risqmap-status/internal/catalog"
	"github.com/itsRabb/risqmap-status/internal/domain"
)

// Store wraps database access for station and gauge records.
type Store struct {
	pool *pgxpool.Pool
}

// New creates a Store backed by a pgx pool.
func New(ctx context.Context, databaseURL string) (*Store, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool resources.
func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

const listStationsSQL = `
    SELECT id, code, name, latitude, longitude, city, state,
           pump_type, status, last_updated,
           capacity_gpm, operator_name, contact, dashboard_url
    FROM stations
`

// ListStations returns station records matching the filter, ordered by city
// ascending. Column names are the store's snake_case contract
// (pump_type, capacity_gpm, last_updated).
func (s *Store) ListStations(ctx context.Context, filter catalog.Filter) ([]domain.InfrastructureStation, error) {
	query, args := buildStationQuery(filter)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query stations: %w", err)
	}
	defer rows.Close()

	stations := make([]domain.InfrastructureStation, 0)
	for rows.Next() {
		var st domain.InfrastructureStation
		var name, operator, contact, dashboardURL *string
		var capacity *float64
		if err := rows.Scan(
			&st.ID,
			&st.Code,
			&name,
			&st.Latitude,
			&st.Longitude,
			&st.City,
			&st.State,
			&st.PumpType,
			&st.Status,
			&st.LastUpdated,
			&capacity,
			&operator,
			&contact,
			&dashboardURL,
		); err != nil {
			return nil, fmt.Errorf("scan station: %w", err)
		}
		st.Name = deref(name)
		st.Operator = deref(operator)
		st.Contact = deref(contact)
		st.DashboardURL = deref(dashboardURL)
		if capacity != nil {
			st.CapacityGpm = *capacity
		}
		stations = append(stations, st)
	}
	return stations, rows.Err()
}

func buildStationQuery(filter catalog.Filter) (string, []any) {
	var conditions []string
	var args []any

	if filter.City != "" {
		args = append(args, filter.City)
		conditions = append(conditions, fmt.Sprintf("city = $%d", len(args)))
	}
	if filter.State != "" {
		args = append(args, filter.State)
		conditions = append(conditions, fmt.Sprintf("state = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, string(filter.Status))
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}

	query := listStationsSQL
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY city ASC"
	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	return query, args
}

const listGaugesSQL = `
    SELECT id, code, name, latitude, longitude, city, state,
           action_stage, flood_stage, moderate_flood_stage, major_flood_stage,
           current_stage
    FROM gauges
    ORDER BY city ASC
`

// ListGauges returns all gauge records with their thresholds and latest
// observed stage. Series data is attached upstream by the forecast provider.
func (s *Store) ListGauges(ctx context.Context) ([]domain.Gauge, error) {
	rows, err := s.pool.Query(ctx, listGaugesSQL)
	if err != nil {
		return nil, fmt.Errorf("query gauges: %w", err)
	}
	defer rows.Close()

	gauges := make([]domain.Gauge, 0)
	for rows.Next() {
		var g domain.Gauge
		var name *string
		if err := rows.Scan(
			&g.ID,
			&g.Code,
			&name,
			&g.Latitude,
			&g.Longitude,
			&g.City,
			&g.State,
			&g.Thresholds.Action,
			&g.Thresholds.Flood,
			&g.Thresholds.Moderate,
			&g.Thresholds.Major,
			&g.CurrentStage,
		); err != nil {
			return nil, fmt.Errorf("scan gauge: %w", err)
		}
		g.Name = deref(name)
		gauges = append(gauges, g)
	}
	return gauges, rows.Err()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
