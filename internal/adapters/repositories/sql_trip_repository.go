package repositories

import (
	"city-route-service/internal/domain"
	"city-route-service/internal/platform/obs"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// SQL-backed implementation of the TripRepository port.
type SQLTripRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLTripRepository(db *sql.DB, dialect Dialect) *SQLTripRepository {
	return &SQLTripRepository{DB: db, Dialect: dialect}
}

// Record one simulated trip and return its row id.
func (s *SQLTripRepository) SaveTrip(ctx context.Context, trip *domain.Trip) (_ int64, err error) {
	defer obs.Time(ctx, "trips.SaveTrip")(&err)

	if s.DB == nil {
		return 0, errors.New("sql trip repository: DB is nil")
	}
	if trip == nil {
		return 0, errors.New("save trip: trip is nil")
	}

	path := trip.Path
	if path == nil {
		path = []int{}
	}
	pathJSON, err := json.Marshal(path)
	if err != nil {
		return 0, fmt.Errorf("save trip: encode path: %w", err)
	}

	simulatedAt := trip.SimulatedAt
	if simulatedAt.IsZero() {
		simulatedAt = time.Now()
	}

	args := []any{
		trip.VehicleName,
		string(trip.Category),
		trip.From,
		trip.To,
		trip.Reachable,
		trip.Distance,
		trip.ETAHours,
		string(pathJSON),
		simulatedAt.UnixMilli(),
	}

	query := `
	INSERT INTO trips (
		vehicle_name,
		category,
		from_location,
		to_location,
		reachable,
		distance,
		eta_hours,
		path,
		simulated_at_ms
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	// The pgx stdlib driver does not implement LastInsertId.
	if s.Dialect == Postgres {
		var id int64
		if err := s.DB.QueryRowContext(ctx, s.Dialect.rebind(query)+" RETURNING id", args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("save trip: insert: %w", err)
		}
		return id, nil
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("save trip: insert: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("save trip: last insert id: %w", err)
	}

	return id, nil
}

// Return the most recent trips, newest first.
func (s *SQLTripRepository) ListTrips(ctx context.Context, limit int) (_ []*domain.Trip, err error) {
	defer obs.Time(ctx, "trips.ListTrips")(&err)

	if s.DB == nil {
		return nil, errors.New("sql trip repository: DB is nil")
	}
	if limit <= 0 {
		limit = 50
	}

	query := `
	SELECT
		vehicle_name,
		category,
		from_location,
		to_location,
		reachable,
		distance,
		eta_hours,
		path,
		simulated_at_ms
	FROM trips
	ORDER BY id DESC
	LIMIT ?;
	`
	rows, err := s.DB.QueryContext(ctx, s.Dialect.rebind(query), limit)
	if err != nil {
		return nil, fmt.Errorf("list trips: query trips table: %w", err)
	}
	defer rows.Close()

	trips := make([]*domain.Trip, 0, limit)
	for rows.Next() {
		var (
			t        domain.Trip
			category string
			pathJSON string
			simMs    int64
		)
		err := rows.Scan(
			&t.VehicleName,
			&category,
			&t.From,
			&t.To,
			&t.Reachable,
			&t.Distance,
			&t.ETAHours,
			&pathJSON,
			&simMs,
		)
		if err != nil {
			return nil, fmt.Errorf("list trips: scan row: %w", err)
		}

		if err := json.Unmarshal([]byte(pathJSON), &t.Path); err != nil {
			return nil, fmt.Errorf("list trips: decode path: %w", err)
		}
		if len(t.Path) == 0 {
			t.Path = nil
		}
		t.Category = domain.TransportCategory(category)
		t.SimulatedAt = time.UnixMilli(simMs).UTC()

		trips = append(trips, &t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list trips: row iteration: %w", err)
	}

	return trips, nil
}
