package catalog_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/itsRabb/risqmap-status/internal/catalog"
	"github.com/itsRabb/risqmap-status/internal/domain"
	"github.com/itsRabb/risqmap-status/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	stations  []domain.InfrastructureStation
	err       error
	gotFilter catalog.Filter
}

func (s *stubStore) ListStations(_ context.Context, filter catalog.Filter) ([]domain.InfrastructureStation, error) {
	s.gotFilter = filter
	return s.stations, s.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func storeStations() []domain.InfrastructureStation {
	return []domain.InfrastructureStation{
		{ID: "1", Code: "JKT-PLUIT-01", City: "Jakarta", PumpType: domain.PumpCoastalDefense, Status: domain.StatusPumping, LastUpdated: time.Date(2024, 4, 22, 8, 0, 0, 0, time.UTC)},
		{ID: "2", Code: "SBY-WONOREJO-01", City: "Surabaya", PumpType: domain.PumpDrainageBasin, Status: domain.StatusStandby},
	}
}

func codes(stations []domain.InfrastructureStation) []string {
	out := make([]string, len(stations))
	for i, s := range stations {
		out[i] = s.Code
	}
	return out
}

func TestLoad_StorePassThrough(t *testing.T) {
	store := &stubStore{stations: storeStations()}
	c := catalog.New(store, nil, discardLogger(), observability.NewMetricsForTesting())

	got := c.Load(context.Background(), catalog.Filter{City: "Jakarta", Limit: 5})

	// Store results pass through untouched, status and lastUpdated included.
	assert.Equal(t, storeStations(), got)
	assert.Equal(t, "Jakarta", store.gotFilter.City)
	assert.Equal(t, 5, store.gotFilter.Limit)
}

func TestLoad_StoreError(t *testing.T) {
	store := &stubStore{err: errors.New("connection reset")}
	c := catalog.New(store, nil, discardLogger(), observability.NewMetricsForTesting())

	got := c.Load(context.Background(), catalog.Filter{})

	// Assert on codes, not statuses: fallback statuses are random placeholders.
	assert.Equal(t, codes(catalog.FallbackStations()), codes(got))
}

func TestLoad_EmptyResult(t *testing.T) {
	store := &stubStore{stations: nil}
	c := catalog.New(store, nil, discardLogger(), observability.NewMetricsForTesting())

	got := c.Load(context.Background(), catalog.Filter{})

	assert.Equal(t, codes(catalog.FallbackStations()), codes(got))
}

func TestLoad_NoStore(t *testing.T) {
	c := catalog.New(nil, nil, discardLogger(), observability.NewMetricsForTesting())

	got := c.Load(context.Background(), catalog.Filter{})

	assert.Equal(t, codes(catalog.FallbackStations()), codes(got))
}

func TestLoad_FallbackStatusesAreValid(t *testing.T) {
	c := catalog.New(nil, nil, discardLogger(), observability.NewMetricsForTesting())

	for _, s := range c.Load(context.Background(), catalog.Filter{}) {
		assert.True(t, s.Status.Valid(), "station %s", s.Code)
		assert.False(t, s.LastUpdated.IsZero(), "station %s", s.Code)
	}
}

func TestLoad_InjectedFixture(t *testing.T) {
	fixture := []domain.InfrastructureStation{
		{ID: "x", Code: "TEST-01", City: "Testville", PumpType: domain.PumpStormwater},
	}
	store := &stubStore{err: errors.New("down")}
	c := catalog.New(store, fixture, discardLogger(), observability.NewMetricsForTesting())

	got := c.Load(context.Background(), catalog.Filter{})

	require.Len(t, got, 1)
	assert.Equal(t, "TEST-01", got[0].Code)
}

// Never a partial merge: either every record comes from the store, or every
// record comes from the fallback list.
func TestLoad_NeverMerges(t *testing.T) {
	store := &stubStore{stations: storeStations()}
	c := catalog.New(store, nil, discardLogger(), observability.NewMetricsForTesting())

	got := c.Load(context.Background(), catalog.Filter{})

	// The store answered with two records; the result must be exactly those
	// two, not padded with the (larger) fallback list.
	assert.Equal(t, codes(storeStations()), codes(got))
}
