// Package sqlstore implements the stores on top of database/sql. The same
// queries serve PostgreSQL (pgx driver) and SQLite; only the schema differs.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"

	"github.com/dtroode/quizboard-server/database"
	"github.com/dtroode/quizboard-server/internal/logger"
)

// Supported driver names.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Connection struct {
	*sql.DB
	dialect database.Dialect
}

// NewConnection opens the database, checks it is reachable and applies migrations.
func NewConnection(ctx context.Context, driver, dsn string, lg *logger.Logger) (*Connection, error) {
	var (
		db      *sql.DB
		dialect database.Dialect
		err     error
	)

	switch driver {
	case DriverPostgres:
		dialect = database.DialectPostgres
		db, err = sql.Open("pgx", dsn)
	case DriverSQLite:
		dialect = database.DialectSQLite
		if strings.TrimSpace(dsn) == "" {
			dsn = "quiz.db"
		}
		db, err = sql.Open("sqlite3", dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if dialect == database.DialectSQLite {
		// single writer; also keeps a :memory: database alive across calls
		db.SetMaxOpenConns(1)
		if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to configure sqlite: %w", err)
		}
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := database.Migrate(ctx, db, dialect, lg); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &Connection{DB: db, dialect: dialect}, nil
}

func (c *Connection) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

func (c *Connection) Ping(ctx context.Context) error {
	if c.DB == nil {
		return fmt.Errorf("database handle is nil")
	}
	return c.DB.PingContext(ctx)
}
