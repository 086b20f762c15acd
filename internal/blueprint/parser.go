package blueprint

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Parse decodes blueprint YAML into a Blueprint. It does not validate;
// callers wanting schema checking run Validate first (see ParseFile).
func Parse(data []byte) (*Blueprint, error) {
	var bp Blueprint
	if err := yaml.Unmarshal(data, &bp); err != nil {
		return nil, fmt.Errorf("parsing blueprint: %w", err)
	}
	return &bp, nil
}

// ParseFile reads a blueprint file, validates it against the embedded
// JSON Schema, and decodes it. Schema violations come back as a single
// error listing every issue.
func ParseFile(path string) (*Blueprint, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating blueprint %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid blueprint %s:\n%s", path, result.Summary())
	}

	bp, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing blueprint %s: %w", path, err)
	}
	return bp, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
