package blueprint

import (
	"strings"
	"testing"
)

func TestValidate_ValidBlueprints(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"minimal", `name: tiny
version: 1.0.0
entries:
  - path: docs
    kind: dir
`},
		{"all kinds", validBlueprintYAML},
		{"seeded empty", `name: seeded
version: 0.1.0
entries:
  - path: data/raw.csv
    kind: empty
    seed: "a,b\n"
`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if !result.Valid {
				t.Errorf("expected valid, got issues:\n%s", result.Summary())
			}
		})
	}
}

func TestValidate_InvalidBlueprints(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		desc string
	}{
		{"missing name", `version: 1.0.0
entries:
  - path: docs
    kind: dir
`, "name is required"},
		{"bad version", `name: x
version: latest
entries:
  - path: docs
    kind: dir
`, "version must be semver"},
		{"no entries", `name: x
version: 1.0.0
entries: []
`, "entries must be non-empty"},
		{"unknown kind", `name: x
version: 1.0.0
entries:
  - path: docs
    kind: folder
`, "kind outside the enum"},
		{"missing path", `name: x
version: 1.0.0
entries:
  - kind: dir
`, "path is required"},
		{"absolute path", `name: x
version: 1.0.0
entries:
  - path: /etc/passwd
    kind: text
    text: nope
`, "absolute paths are rejected"},
		{"dotdot path", `name: x
version: 1.0.0
entries:
  - path: ../outside.txt
    kind: text
    text: nope
`, "paths escaping the root are rejected"},
		{"text without payload", `name: x
version: 1.0.0
entries:
  - path: a.txt
    kind: text
`, "text entries need text"},
		{"binary without payload", `name: x
version: 1.0.0
entries:
  - path: a.bin
    kind: binary
`, "binary entries need data"},
		{"seed on dir", `name: x
version: 1.0.0
entries:
  - path: docs
    kind: dir
    seed: "a,b\n"
`, "directories carry no payload"},
		{"unknown field", `name: x
version: 1.0.0
entries:
  - path: a.txt
    kind: text
    text: hi
    mode: 0600
`, "additionalProperties is false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("Validate error: %v", err)
			}
			if result.Valid {
				t.Errorf("expected invalid (%s), but got valid", tt.desc)
			}
			if len(result.Issues) == 0 {
				t.Errorf("expected at least one issue (%s)", tt.desc)
			}
		})
	}
}

func TestValidate_IssueFields(t *testing.T) {
	result, err := Validate([]byte(`name: x
version: 1.0.0
entries:
  - path: docs
    kind: folder
`))
	if err != nil {
		t.Fatalf("Validate error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result")
	}

	hasMessage := false
	for _, issue := range result.Issues {
		if issue.Message != "" {
			hasMessage = true
		}
		if issue.Path != "" && !strings.HasPrefix(issue.Path, "/") {
			t.Errorf("issue path %q should be /-rooted", issue.Path)
		}
	}
	if !hasMessage {
		t.Error("expected at least one issue with a non-empty message")
	}
}

func TestValidate_InvalidYAML(t *testing.T) {
	_, err := Validate([]byte("entries: [unclosed"))
	if err == nil {
		t.Fatal("expected error for invalid YAML, got nil")
	}
}

func TestValidate_SchemaCompiles(t *testing.T) {
	schema, err := getSchema()
	if err != nil {
		t.Fatalf("getSchema() error: %v", err)
	}
	if schema == nil {
		t.Fatal("getSchema() returned nil schema")
	}
}

func TestValidationResult_Summary(t *testing.T) {
	r := &ValidationResult{
		Valid: false,
		Issues: []ValidationIssue{
			{Path: "/entries/0/kind", Message: "value must be one of ...", Keyword: "enum"},
			{Message: "top-level problem"},
		},
	}
	s := r.Summary()
	if !strings.Contains(s, "/entries/0/kind:") {
		t.Errorf("summary missing pathed issue: %q", s)
	}
	if !strings.Contains(s, "top-level problem") {
		t.Errorf("summary missing unpathed issue: %q", s)
	}
}
