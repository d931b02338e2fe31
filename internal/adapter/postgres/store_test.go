package postgres

import (
	"testing"

	"github.com/itsRabb/risqmap-status/internal/catalog"
	"github.com/itsRabb/risqmap-status/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestBuildStationQuery(t *testing.T) {
	t.Run("no filter", func(t *testing.T) {
		query, args := buildStationQuery(catalog.Filter{})

		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "ORDER BY city ASC")
		assert.Empty(t, args)
	})

	t.Run("city only", func(t *testing.T) {
		query, args := buildStationQuery(catalog.Filter{City: "Jakarta"})

		assert.Contains(t, query, "WHERE city = $1")
		assert.Equal(t, []any{"Jakarta"}, args)
	})

	t.Run("all filters", func(t *testing.T) {
		query, args := buildStationQuery(catalog.Filter{
			City:   "Semarang",
			State:  "Central Java",
			Status: domain.StatusPumping,
			Limit:  25,
		})

		assert.Contains(t, query, "city = $1")
		assert.Contains(t, query, "state = $2")
		assert.Contains(t, query, "status = $3")
		assert.Contains(t, query, "LIMIT $4")
		assert.Equal(t, []any{"Semarang", "Central Java", "pumping", 25}, args)
	})

	t.Run("limit without conditions", func(t *testing.T) {
		query, args := buildStationQuery(catalog.Filter{Limit: 10})

		assert.NotContains(t, query, "WHERE")
		assert.Contains(t, query, "LIMIT $1")
		assert.Equal(t, []any{10}, args)
	})
}
