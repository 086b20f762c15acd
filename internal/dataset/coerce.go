package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// Coerce converts one raw CSV value into a driver-friendly Go value for
// the given column kind. Empty values become nil (SQL NULL); temporal
// values are normalized to ISO-8601 so every dialect accepts them.
func Coerce(value string, t ColumnType) (any, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return nil, nil
	}

	switch t {
	case TypeInteger:
		n, err := strconv.ParseInt(trimmed, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", value)
		}
		return n, nil
	case TypeReal:
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not a number", value)
		}
		return f, nil
	case TypeBoolean:
		switch strings.ToLower(trimmed) {
		case "true", "t", "yes", "y", "1":
			return true, nil
		case "false", "f", "no", "n", "0":
			return false, nil
		}
		return nil, fmt.Errorf("%q is not a boolean", value)
	case TypeDate:
		tm, _, ok := parseTemporal(trimmed)
		if !ok {
			return nil, fmt.Errorf("%q is not a date", value)
		}
		return tm.Format("2006-01-02"), nil
	case TypeTimestamp:
		tm, _, ok := parseTemporal(trimmed)
		if !ok {
			return nil, fmt.Errorf("%q is not a timestamp", value)
		}
		return tm.Format("2006-01-02 15:04:05"), nil
	default:
		return value, nil
	}
}
