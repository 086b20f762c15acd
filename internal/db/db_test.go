package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dataforge-labs/dataforge/internal/dataset"
)

// openSQLite opens a throwaway file-backed SQLite database. The sqlite
// driver needs no server, so the whole load path runs for real.
func openSQLite(t *testing.T) *DB {
	t.Helper()

	cfg := Config{
		Driver: DriverSQLite,
		Path:   filepath.Join(t.TempDir(), "test.db"),
	}
	d, err := Open(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = d.Close() })
	return d
}

var (
	customerColumns = []string{"invoice_no", "customer_id", "age", "price", "invoice_date"}
	customerRows    = [][]string{
		{"I138884", "C241288", "28", "1500.40", "2022-08-05"},
		{"I317333", "C111565", "21", "1800.51", "2021-12-12"},
		{"I127801", "C266599", "53", "300.08", "2021-11-09"},
	}
)

func TestOpen_SQLite(t *testing.T) {
	d := openSQLite(t)
	require.NoError(t, d.Ping(context.Background()))
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestLoad_Replace(t *testing.T) {
	d := openSQLite(t)
	ctx := context.Background()

	n, err := d.Load(ctx, "customers", customerColumns, customerRows, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)

	res, err := d.Query(ctx, "SELECT invoice_no, age, price, invoice_date FROM customers ORDER BY invoice_no")
	require.NoError(t, err)
	require.Len(t, res.Rows, 3)
	assert.Equal(t, []string{"I127801", "53", "300.08", "2021-11-09"}, res.Rows[0])
	assert.Equal(t, []string{"I138884", "28", "1500.4", "2022-08-05"}, res.Rows[1])
}

func TestLoad_ReplaceResetsTable(t *testing.T) {
	d := openSQLite(t)
	ctx := context.Background()

	_, err := d.Load(ctx, "customers", customerColumns, customerRows, LoadOptions{})
	require.NoError(t, err)

	n, err := d.Load(ctx, "customers", customerColumns, customerRows[:1], LoadOptions{Mode: ModeReplace})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	res, err := d.Query(ctx, "SELECT COUNT(*) FROM customers")
	require.NoError(t, err)
	assert.Equal(t, "1", res.Rows[0][0])
}

func TestLoad_Append(t *testing.T) {
	d := openSQLite(t)
	ctx := context.Background()

	_, err := d.Load(ctx, "customers", customerColumns, customerRows[:2], LoadOptions{})
	require.NoError(t, err)

	n, err := d.Load(ctx, "customers", customerColumns, customerRows[2:], LoadOptions{Mode: ModeAppend})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	res, err := d.Query(ctx, "SELECT COUNT(*) FROM customers")
	require.NoError(t, err)
	assert.Equal(t, "3", res.Rows[0][0])
}

func TestLoad_ZeroRowsStillCreatesTable(t *testing.T) {
	d := openSQLite(t)
	ctx := context.Background()

	n, err := d.Load(ctx, "customers", customerColumns, nil, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	res, err := d.Query(ctx, "SELECT COUNT(*) FROM customers")
	require.NoError(t, err)
	assert.Equal(t, "0", res.Rows[0][0])
}

func TestLoad_SmallBatches(t *testing.T) {
	d := openSQLite(t)
	ctx := context.Background()

	n, err := d.Load(ctx, "customers", customerColumns, customerRows, LoadOptions{BatchSize: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestLoad_EmptyValueBecomesNull(t *testing.T) {
	d := openSQLite(t)
	ctx := context.Background()

	rows := [][]string{
		{"I1", "C1", "", "10.5", "2022-01-01"},
		{"I2", "C2", "40", "11.5", "2022-01-02"},
	}
	_, err := d.Load(ctx, "customers", customerColumns, rows, LoadOptions{})
	require.NoError(t, err)

	res, err := d.Query(ctx, "SELECT COUNT(*) FROM customers WHERE age IS NULL")
	require.NoError(t, err)
	assert.Equal(t, "1", res.Rows[0][0])
}

func TestLoad_BooleanStoredAsInteger(t *testing.T) {
	d := openSQLite(t)
	ctx := context.Background()

	_, err := d.Load(ctx, "flags", []string{"id", "member"}, [][]string{
		{"1", "yes"},
		{"2", "no"},
	}, LoadOptions{})
	require.NoError(t, err)

	res, err := d.Query(ctx, "SELECT member FROM flags ORDER BY id")
	require.NoError(t, err)
	assert.Equal(t, "1", res.Rows[0][0])
	assert.Equal(t, "0", res.Rows[1][0])
}

func TestLoad_RowLengthMismatch(t *testing.T) {
	d := openSQLite(t)
	ctx := context.Background()

	rows := [][]string{
		{"I1", "C1", "28", "10.5", "2022-01-01"},
		{"I2", "C2"},
	}
	_, err := d.Load(ctx, "customers", customerColumns, rows, LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row 2")
}

func TestLoad_Validation(t *testing.T) {
	d := openSQLite(t)
	ctx := context.Background()

	_, err := d.Load(ctx, "", customerColumns, nil, LoadOptions{})
	assert.ErrorContains(t, err, "table name")

	_, err = d.Load(ctx, "customers", nil, nil, LoadOptions{})
	assert.ErrorContains(t, err, "at least one column")

	_, err = d.Load(ctx, "customers", customerColumns, nil, LoadOptions{Mode: "upsert"})
	assert.ErrorContains(t, err, "unknown load mode")
}

func TestLoad_ExplicitTypes(t *testing.T) {
	d := openSQLite(t)
	ctx := context.Background()

	// Force the age column to text; values stay verbatim strings.
	types := []dataset.ColumnType{
		dataset.TypeText, dataset.TypeText, dataset.TypeText, dataset.TypeText, dataset.TypeText,
	}
	_, err := d.Load(ctx, "customers", customerColumns, customerRows[:1], LoadOptions{Types: types})
	require.NoError(t, err)

	res, err := d.Query(ctx, "SELECT price FROM customers")
	require.NoError(t, err)
	assert.Equal(t, "1500.40", res.Rows[0][0])
}

func TestQuery_Malformed(t *testing.T) {
	d := openSQLite(t)

	res, err := d.Query(context.Background(), "SELECT nope FROM missing_table")
	require.Error(t, err)
	assert.Nil(t, res)
}

func TestQuery_Columns(t *testing.T) {
	d := openSQLite(t)
	ctx := context.Background()

	_, err := d.Load(ctx, "customers", customerColumns, customerRows, LoadOptions{})
	require.NoError(t, err)

	res, err := d.Query(ctx, "SELECT invoice_no, customer_id FROM customers LIMIT 1")
	require.NoError(t, err)
	assert.Equal(t, []string{"invoice_no", "customer_id"}, res.Columns)
}
