package dataset

import (
	"strconv"
	"strings"
	"time"
)

// ColumnType is the SQL-portable vocabulary type inference produces.
// Dialect-specific mapping to concrete column types happens in the db
// layer.
type ColumnType string

const (
	TypeInteger   ColumnType = "integer"
	TypeBoolean   ColumnType = "boolean"
	TypeReal      ColumnType = "real"
	TypeDate      ColumnType = "date"
	TypeTimestamp ColumnType = "timestamp"
	TypeText      ColumnType = "text"
)

// InferColumns guesses one type per column from all of the table's values.
// A type is assigned only when every non-empty value satisfies it; empty
// values never veto a narrower type, and an all-empty column is text.
func InferColumns(t *Table) []ColumnType {
	cols := make([][]string, len(t.Columns))
	for _, row := range t.Rows {
		for i := range cols {
			if i < len(row) {
				cols[i] = append(cols[i], row[i])
			}
		}
	}

	types := make([]ColumnType, len(cols))
	for i, values := range cols {
		types[i] = inferColumn(values)
	}
	return types
}

// inferColumn narrows over integer, boolean, real, date, timestamp; the
// fallback is text. Integer is tried before boolean so 1/0 columns stay
// numeric.
func inferColumn(values []string) ColumnType {
	nonEmpty := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			nonEmpty = append(nonEmpty, v)
		}
	}
	if len(nonEmpty) == 0 {
		return TypeText
	}

	if allMatch(nonEmpty, isInt) {
		return TypeInteger
	}
	if allMatch(nonEmpty, isBool) {
		return TypeBoolean
	}
	if allMatch(nonEmpty, isFloat) {
		return TypeReal
	}

	allTemporal := true
	anyTime := false
	for _, v := range nonEmpty {
		_, hasTime, ok := parseTemporal(v)
		if !ok {
			allTemporal = false
			break
		}
		anyTime = anyTime || hasTime
	}
	if allTemporal {
		if anyTime {
			return TypeTimestamp
		}
		return TypeDate
	}

	return TypeText
}

func allMatch(values []string, fn func(string) bool) bool {
	for _, v := range values {
		if !fn(v) {
			return false
		}
	}
	return true
}

// isInt requires a signed base-10 integer that fits in int64.
func isInt(s string) bool {
	_, err := strconv.ParseInt(s, 10, 64)
	return err == nil
}

// isFloat accepts decimal or scientific notation. Values that already
// parse as int are not floats, keeping integer columns integer.
func isFloat(s string) bool {
	if isInt(s) {
		return false
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// isBool accepts common textual booleans and 1/0.
func isBool(s string) bool {
	switch strings.ToLower(s) {
	case "true", "false", "t", "f", "yes", "no", "y", "n", "1", "0":
		return true
	}
	return false
}

// dateLayouts are date formats without a time component.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	"02/01/2006",
	"20060102",
}

// timestampLayouts are formats with a time component.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006/01/02 15:04:05",
}

// parseTemporal tries timestamps first, then dates. hasTime reports
// whether the matched layout carries a time component.
func parseTemporal(s string) (t time.Time, hasTime bool, ok bool) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true, true
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, false, true
		}
	}
	return time.Time{}, false, false
}
