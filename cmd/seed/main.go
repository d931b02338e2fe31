// Command seed creates the stations and gauges tables and inserts the
// built-in fallback dataset plus a demo gauge set, so a fresh database can
// serve the real-store path.
//
// Usage:
//
//	DATABASE_URL=postgres://... go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/itsRabb/risqmap-status/internal/catalog"
	"github.com/itsRabb/risqmap-status/internal/domain"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS stations (
    id             TEXT PRIMARY KEY,
    code           TEXT NOT NULL UNIQUE,
    name           TEXT,
    latitude       DOUBLE PRECISION NOT NULL,
    longitude      DOUBLE PRECISION NOT NULL,
    city           TEXT NOT NULL,
    state          TEXT NOT NULL,
    pump_type      TEXT NOT NULL,
    status         TEXT NOT NULL DEFAULT 'no_data',
    last_updated   TIMESTAMPTZ NOT NULL DEFAULT now(),
    capacity_gpm   DOUBLE PRECISION,
    operator_name  TEXT,
    contact        TEXT,
    dashboard_url  TEXT
);

CREATE TABLE IF NOT EXISTS gauges (
    id                    TEXT PRIMARY KEY,
    code                  TEXT NOT NULL UNIQUE,
    name                  TEXT,
    latitude              DOUBLE PRECISION NOT NULL,
    longitude             DOUBLE PRECISION NOT NULL,
    city                  TEXT NOT NULL,
    state                 TEXT NOT NULL,
    action_stage          DOUBLE PRECISION NOT NULL,
    flood_stage           DOUBLE PRECISION NOT NULL,
    moderate_flood_stage  DOUBLE PRECISION NOT NULL,
    major_flood_stage     DOUBLE PRECISION NOT NULL,
    current_stage         DOUBLE PRECISION NOT NULL DEFAULT 0
);
`

const insertStationSQL = `
    INSERT INTO stations (id, code, name, latitude, longitude, city, state,
                          pump_type, status, capacity_gpm, operator_name)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
    ON CONFLICT (code) DO NOTHING
`

const insertGaugeSQL = `
    INSERT INTO gauges (id, code, name, latitude, longitude, city, state,
                        action_stage, flood_stage, moderate_flood_stage,
                        major_flood_stage, current_stage)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
    ON CONFLICT (code) DO NOTHING
`

// demoGauges are river gauges with NOAA-style thresholds in meters.
var demoGauges = []domain.Gauge{
	{
		ID: "seed-manggarai", Code: "CILIWUNG-MT", Name: "Ciliwung at Manggarai",
		Latitude: -6.2078, Longitude: 106.8486, City: "Jakarta", State: "DKI Jakarta",
		Thresholds:   domain.Thresholds{Action: 7.5, Flood: 8.5, Moderate: 9.0, Major: 9.5},
		CurrentStage: 7.1,
	},
	{
		ID: "seed-depok", Code: "CILIWUNG-DP", Name: "Ciliwung at Depok",
		Latitude: -6.4025, Longitude: 106.8296, City: "Depok", State: "West Java",
		Thresholds:   domain.Thresholds{Action: 2.0, Flood: 2.7, Moderate: 3.2, Major: 3.5},
		CurrentStage: 1.8,
	},
	{
		ID: "seed-garang", Code: "GARANG-SM", Name: "Kali Garang at Simongan Weir",
		Latitude: -7.0051, Longitude: 110.3985, City: "Semarang", State: "Central Java",
		Thresholds:   domain.Thresholds{Action: 3.0, Flood: 4.0, Moderate: 4.6, Major: 5.2},
		CurrentStage: 2.4,
	},
}

func main() {
	_ = godotenv.Load()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		fmt.Fprintln(os.Stderr, "DATABASE_URL is required")
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		fmt.Fprintf(os.Stderr, "create schema: %v\n", err)
		os.Exit(1)
	}

	stations := catalog.FallbackStations()
	for _, s := range stations {
		_, err := pool.Exec(ctx, insertStationSQL,
			s.ID, s.Code, nullable(s.Name), s.Latitude, s.Longitude, s.City, s.State,
			string(s.PumpType), string(domain.StatusNoData), nullableFloat(s.CapacityGpm), nullable(s.Operator),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insert station %s: %v\n", s.Code, err)
			os.Exit(1)
		}
	}

	for _, g := range demoGauges {
		_, err := pool.Exec(ctx, insertGaugeSQL,
			g.ID, g.Code, nullable(g.Name), g.Latitude, g.Longitude, g.City, g.State,
			g.Thresholds.Action, g.Thresholds.Flood, g.Thresholds.Moderate, g.Thresholds.Major,
			g.CurrentStage,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insert gauge %s: %v\n", g.Code, err)
			os.Exit(1)
		}
	}

	fmt.Printf("seeded %d stations and %d gauges\n", len(stations), len(demoGauges))
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nullableFloat(f float64) *float64 {
	if f == 0 {
		return nil
	}
	return &f
}
