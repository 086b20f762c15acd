package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const utf8BOM = "﻿"

// Table is an in-memory tabular dataset. Columns hold normalized SQL-safe
// identifiers; every row has exactly len(Columns) fields.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ReadFile reads a CSV file into a Table.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	t, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return t, nil
}

// Read parses CSV data from r. The first record is the header; rows with
// a different field count than the header are an error. A header-only
// dataset yields a Table with zero rows.
func Read(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("empty dataset: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	t := &Table{Columns: normalizeHeader(stripHeaderBOM(header))}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row %d: %w", len(t.Rows)+2, err)
		}
		t.Rows = append(t.Rows, rec)
	}
	return t, nil
}

// TableName derives a SQL table name from a dataset file path:
// base name without extension, normalized the same way as columns.
func TableName(path string) string {
	base := filepath.Base(path)
	return NormalizeName(strings.TrimSuffix(base, filepath.Ext(base)))
}

// stripHeaderBOM removes a UTF-8 BOM from the first header cell if present.
func stripHeaderBOM(header []string) []string {
	if len(header) == 0 {
		return header
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)
	return header
}

// normalizeHeader maps every header cell through NormalizeName and
// disambiguates duplicates with a numeric suffix.
func normalizeHeader(header []string) []string {
	out := make([]string, len(header))
	seen := make(map[string]int, len(header))
	for i, h := range header {
		name := NormalizeName(h)
		if n := seen[name]; n > 0 {
			seen[name] = n + 1
			name = fmt.Sprintf("%s_%d", name, n+1)
		}
		seen[name]++
		out[i] = name
	}
	return out
}

// NormalizeName converts arbitrary header text into a lowercase ASCII
// identifier suitable for SQL schemas: lowercase, accents stripped
// (NFD, remove Mn, NFC), space/dash/dot folded to underscore, anything
// else dropped. An empty result falls back to "col", and names are capped
// at 63 bytes to stay inside PostgreSQL's identifier limit.
func NormalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	t := transform.Chain(
		norm.NFD,
		runes.Remove(runes.In(unicode.Mn)),
		norm.NFC,
	)
	ascii, _, _ := transform.String(t, s)

	var b strings.Builder
	prevUnderscore := false
	for _, r := range ascii {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		case r == '_' || r == ' ' || r == '-' || r == '.':
			if !prevUnderscore {
				b.WriteRune('_')
				prevUnderscore = true
			}
		}
	}

	name := strings.Trim(b.String(), "_")
	if name == "" {
		return "col"
	}
	if len(name) > 63 {
		// Keep the head and the distinguishing tail.
		name = name[:10] + name[len(name)-53:]
	}
	return name
}
