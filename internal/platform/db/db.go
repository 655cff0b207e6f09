package db

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

// Driver names registered with database/sql by the imports above.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
	DriverMySQL    = "mysql"
)

// Open connects to the trip log database and verifies the connection.
func Open(driver, dsn string) (*sql.DB, error) {
	driver = strings.ToLower(strings.TrimSpace(driver))
	switch driver {
	case DriverPostgres, "postgres":
		driver = DriverPostgres
	case DriverSQLite, DriverMySQL:
	default:
		return nil, fmt.Errorf("openDB: unsupported driver %q", driver)
	}

	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("openDB: %s dsn is empty", driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("openDB: open %s database: %w", driver, err)
	}

	if driver == DriverSQLite {
		// One writer at a time; also keeps ":memory:" databases on a single connection.
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
	}
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("openDB: verify %s connection: %w", driver, err)
	}

	return db, nil
}
