package db

import (
	"context"
	"fmt"
	"strings"

	"github.com/dataforge-labs/dataforge/internal/dataset"
)

// Mode selects how Load treats the destination table.
type Mode string

const (
	// ModeReplace drops and recreates the table before loading.
	ModeReplace Mode = "replace"
	// ModeAppend inserts into the existing table.
	ModeAppend Mode = "append"
)

const defaultBatchSize = 500

// LoadOptions tune a Load call. The zero value means replace mode with
// the default batch size and column kinds inferred from the data.
type LoadOptions struct {
	Mode      Mode
	BatchSize int

	// Types carries one column kind per column. Replace mode uses them
	// for the CREATE TABLE; both modes use them to coerce values. When
	// the length does not match the columns they are inferred instead.
	Types []dataset.ColumnType
}

// Load writes rows into table using batched transactions around a
// prepared insert. It returns the number of rows committed. Zero rows is
// success: replace mode still creates the empty table.
func (d *DB) Load(ctx context.Context, table string, columns []string, rows [][]string, opts LoadOptions) (int64, error) {
	if strings.TrimSpace(table) == "" {
		return 0, fmt.Errorf("table name must not be empty")
	}
	if len(columns) == 0 {
		return 0, fmt.Errorf("at least one column is required")
	}

	mode := opts.Mode
	if mode == "" {
		mode = ModeReplace
	}
	if mode != ModeReplace && mode != ModeAppend {
		return 0, fmt.Errorf("unknown load mode %q (expected replace or append)", mode)
	}

	batchSize := opts.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}

	types := opts.Types
	if len(types) != len(columns) {
		types = dataset.InferColumns(&dataset.Table{Columns: columns, Rows: rows})
	}

	if mode == ModeReplace {
		if err := d.createTable(ctx, table, columns, types); err != nil {
			return 0, err
		}
	}
	if len(rows) == 0 {
		return 0, nil
	}

	insert := d.insertSQL(table, columns)
	var total int64
	for start := 0; start < len(rows); start += batchSize {
		end := min(start+batchSize, len(rows))
		n, err := d.insertBatch(ctx, insert, columns, types, rows[start:end], start)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// insertBatch runs one transaction over a slice of rows. On any failure
// the transaction rolls back, so an errored batch contributes no rows.
// offset is the index of the batch's first row, used in error messages.
func (d *DB) insertBatch(ctx context.Context, insert string, columns []string, types []dataset.ColumnType, rows [][]string, offset int) (int64, error) {
	tx, err := d.pool.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insert)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	var inserted int64
	for i, row := range rows {
		if len(row) != len(columns) {
			_ = tx.Rollback()
			return 0, fmt.Errorf("row %d has %d values, want %d", offset+i+1, len(row), len(columns))
		}
		args, err := coerceRow(row, types)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("row %d: %w", offset+i+1, err)
		}
		if _, err := stmt.ExecContext(ctx, args...); err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("inserting row %d: %w", offset+i+1, err)
		}
		inserted++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing batch: %w", err)
	}
	return inserted, nil
}

func coerceRow(row []string, types []dataset.ColumnType) ([]any, error) {
	args := make([]any, len(row))
	for i, v := range row {
		a, err := dataset.Coerce(v, types[i])
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+1, err)
		}
		args[i] = a
	}
	return args, nil
}

func (d *DB) createTable(ctx context.Context, table string, columns []string, types []dataset.ColumnType) error {
	drop := "DROP TABLE IF EXISTS " + d.quoteIdent(table)
	if _, err := d.pool.ExecContext(ctx, drop); err != nil {
		return fmt.Errorf("dropping table %s: %w", table, err)
	}

	defs := make([]string, len(columns))
	for i, c := range columns {
		defs[i] = d.quoteIdent(c) + " " + d.columnSQLType(types[i])
	}
	create := fmt.Sprintf("CREATE TABLE %s (%s)", d.quoteIdent(table), strings.Join(defs, ", "))
	if _, err := d.pool.ExecContext(ctx, create); err != nil {
		return fmt.Errorf("creating table %s: %w", table, err)
	}
	return nil
}

func (d *DB) insertSQL(table string, columns []string) string {
	quoted := make([]string, len(columns))
	ph := make([]string, len(columns))
	for i, c := range columns {
		quoted[i] = d.quoteIdent(c)
		if d.cfg.Driver == DriverPostgres {
			ph[i] = fmt.Sprintf("$%d", i+1)
		} else {
			ph[i] = "?"
		}
	}
	return fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		d.quoteIdent(table),
		strings.Join(quoted, ", "),
		strings.Join(ph, ", "),
	)
}

// quoteIdent quotes a table or column identifier for the configured
// dialect: backticks for MySQL, double quotes elsewhere.
func (d *DB) quoteIdent(id string) string {
	if d.cfg.Driver == DriverMySQL {
		return "`" + strings.ReplaceAll(id, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}

// columnSQLType maps a portable column kind to a concrete type for the
// configured dialect. SQLite stores temporal values as ISO-8601 text.
func (d *DB) columnSQLType(t dataset.ColumnType) string {
	switch d.cfg.Driver {
	case DriverMySQL:
		switch t {
		case dataset.TypeInteger:
			return "BIGINT"
		case dataset.TypeBoolean:
			return "BOOLEAN"
		case dataset.TypeReal:
			return "DOUBLE"
		case dataset.TypeDate:
			return "DATE"
		case dataset.TypeTimestamp:
			return "DATETIME"
		}
		return "TEXT"
	case DriverPostgres:
		switch t {
		case dataset.TypeInteger:
			return "BIGINT"
		case dataset.TypeBoolean:
			return "BOOLEAN"
		case dataset.TypeReal:
			return "DOUBLE PRECISION"
		case dataset.TypeDate:
			return "DATE"
		case dataset.TypeTimestamp:
			return "TIMESTAMP"
		}
		return "TEXT"
	default:
		switch t {
		case dataset.TypeInteger, dataset.TypeBoolean:
			return "INTEGER"
		case dataset.TypeReal:
			return "REAL"
		}
		return "TEXT"
	}
}
