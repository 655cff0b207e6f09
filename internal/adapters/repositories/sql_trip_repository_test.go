package repositories

import (
	"city-route-service/internal/domain"
	"city-route-service/internal/platform/db"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepo(t *testing.T) *SQLTripRepository {
	t.Helper()

	conn, err := db.Open(db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, InitSchema(conn, SQLite))
	// Running it twice must be harmless.
	require.NoError(t, InitSchema(conn, SQLite))

	return NewSQLTripRepository(conn, SQLite)
}

func TestSQLTripRepositorySaveAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	at := time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

	id1, err := repo.SaveTrip(ctx, &domain.Trip{
		VehicleName: "taxi",
		Category:    domain.Car,
		From:        0,
		To:          4,
		Reachable:   true,
		Distance:    50,
		ETAHours:    0,
		Path:        []int{0, 1, 2, 3, 4},
		SimulatedAt: at,
	})
	require.NoError(t, err)

	id2, err := repo.SaveTrip(ctx, &domain.Trip{
		VehicleName: "drone",
		Category:    domain.Drone,
		From:        2,
		To:          7,
		SimulatedAt: at.Add(time.Minute),
	})
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	trips, err := repo.ListTrips(ctx, 10)
	require.NoError(t, err)
	require.Len(t, trips, 2)

	assert.Equal(t, "drone", trips[0].VehicleName)
	assert.False(t, trips[0].Reachable)
	assert.Nil(t, trips[0].Path)

	assert.Equal(t, domain.Car, trips[1].Category)
	assert.True(t, trips[1].Reachable)
	assert.Equal(t, 50, trips[1].Distance)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, trips[1].Path)
	assert.True(t, at.Equal(trips[1].SimulatedAt))

	limited, err := repo.ListTrips(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestSQLTripRepositoryNilGuards(t *testing.T) {
	repo := &SQLTripRepository{}
	_, err := repo.SaveTrip(context.Background(), &domain.Trip{})
	assert.ErrorContains(t, err, "DB is nil")

	_, err = newTestRepo(t).SaveTrip(context.Background(), nil)
	assert.ErrorContains(t, err, "trip is nil")
}

func TestDialect(t *testing.T) {
	d, err := ParseDialect("Postgres")
	require.NoError(t, err)
	assert.Equal(t, Postgres, d)

	_, err = ParseDialect("oracle")
	assert.Error(t, err)

	assert.Equal(t, "SELECT a FROM t WHERE x = $1 AND y = $2", Postgres.rebind("SELECT a FROM t WHERE x = ? AND y = ?"))
	assert.Equal(t, "x = ?", MySQL.rebind("x = ?"))
	assert.Contains(t, MySQL.createTripsQuery(), "AUTO_INCREMENT")
	assert.Contains(t, Postgres.createTripsQuery(), "BIGSERIAL")
}
