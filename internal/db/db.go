package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	// Drivers registered for database/sql. The MySQL driver registers
	// itself through the mysql import in config.go.
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const pingTimeout = 5 * time.Second

// DB wraps a database/sql pool opened for one configured connection.
type DB struct {
	pool *sql.DB
	cfg  Config
}

// Open builds the DSN for cfg, opens the pool, and verifies it with a
// ping so callers fail fast on bad settings or an unreachable server.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	slog.Debug("opening database", "target", cfg.Redacted())

	pool, err := sql.Open(cfg.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("opening %s database: %w", cfg.Driver, err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.PingContext(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to %s: %w", cfg.Redacted(), err)
	}

	return &DB{pool: pool, cfg: cfg}, nil
}

// Ping verifies the connection is still alive.
func (d *DB) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := d.pool.PingContext(pingCtx); err != nil {
		return fmt.Errorf("pinging %s: %w", d.cfg.Redacted(), err)
	}
	return nil
}

// Close releases the connection pool.
func (d *DB) Close() error {
	return d.pool.Close()
}

// Result holds a query's column names and rows rendered as strings, ready
// for table, CSV, or JSON output. NULL comes back as the empty string.
type Result struct {
	Columns []string
	Rows    [][]string
}

// Query runs a read statement and buffers the full result set. A failing
// query returns a nil result and the driver's error.
func (d *DB) Query(ctx context.Context, query string) (*Result, error) {
	rows, err := d.pool.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("running query: %w", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("reading result columns: %w", err)
	}

	res := &Result{Columns: cols}
	for rows.Next() {
		vals := make([]sql.NullString, len(cols))
		scan := make([]any, len(cols))
		for i := range vals {
			scan[i] = &vals[i]
		}
		if err := rows.Scan(scan...); err != nil {
			return nil, fmt.Errorf("scanning row %d: %w", len(res.Rows)+1, err)
		}
		row := make([]string, len(cols))
		for i, v := range vals {
			if v.Valid {
				row[i] = v.String
			}
		}
		res.Rows = append(res.Rows, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading rows: %w", err)
	}
	return res, nil
}
