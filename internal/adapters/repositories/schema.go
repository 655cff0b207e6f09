package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Dialect selects the SQL flavour of the trip log.
type Dialect string

const (
	Postgres Dialect = "pgx"
	SQLite   Dialect = "sqlite"
	MySQL    Dialect = "mysql"
)

func ParseDialect(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "pgx", "postgres":
		return Postgres, nil
	case "sqlite":
		return SQLite, nil
	case "mysql":
		return MySQL, nil
	default:
		return "", fmt.Errorf("parse dialect: unsupported driver %q", driver)
	}
}

// rebind rewrites "?" placeholders into "$1, $2, ..." for postgres.
func (d Dialect) rebind(q string) string {
	if d != Postgres {
		return q
	}

	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d Dialect) createTripsQuery() string {
	id := "id INTEGER PRIMARY KEY AUTOINCREMENT"
	switch d {
	case Postgres:
		id = "id BIGSERIAL PRIMARY KEY"
	case MySQL:
		id = "id BIGINT AUTO_INCREMENT PRIMARY KEY"
	}

	return fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS trips (
		%s,
		vehicle_name VARCHAR(128) NOT NULL,
		category VARCHAR(32) NOT NULL,
		from_location INTEGER NOT NULL,
		to_location INTEGER NOT NULL,
		reachable BOOLEAN NOT NULL,
		distance BIGINT NOT NULL,
		eta_hours BIGINT NOT NULL,
		path TEXT NOT NULL,
		simulated_at_ms BIGINT NOT NULL
	);
	`, id)
}

// Initialize the trip log schema.
func InitSchema(db *sql.DB, dialect Dialect) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	statements := []string{
		dialect.createTripsQuery(),
	}
	// MySQL has no CREATE INDEX IF NOT EXISTS.
	if dialect != MySQL {
		statements = append(statements, `
	CREATE INDEX IF NOT EXISTS idx_trips_simulated_at
	ON trips(simulated_at_ms);
	`)
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}
