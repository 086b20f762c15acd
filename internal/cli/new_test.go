package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/dataforge-labs/dataforge/internal/blueprint"
	"github.com/dataforge-labs/dataforge/internal/materialize"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"default workspace name", "customer-shopping-analytics", false},
		{"single letter", "a", false},
		{"digits and dashes", "retail-2024", false},
		{"leading digit", "9lives", false},
		{"empty", "", true},
		{"uppercase", "Customer", true},
		{"space", "has space", true},
		{"leading dash", "-leading", true},
		{"underscore", "under_score", true},
		{"dot", "v1.2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestWorkspaceName(t *testing.T) {
	if got := workspaceName(nil); got != blueprint.DefaultWorkspaceName {
		t.Errorf("workspaceName(nil) = %q, want %q", got, blueprint.DefaultWorkspaceName)
	}
	if got := workspaceName([]string{"retail-lab"}); got != "retail-lab" {
		t.Errorf("workspaceName = %q, want %q", got, "retail-lab")
	}
}

func TestResolveWorkspaceDir(t *testing.T) {
	old := workspaceOutputDir
	defer func() { workspaceOutputDir = old }()

	workspaceOutputDir = ""
	if got := resolveWorkspaceDir("shop"); got != "shop" {
		t.Errorf("resolveWorkspaceDir = %q, want %q", got, "shop")
	}

	workspaceOutputDir = filepath.Join("tmp", "work")
	want := filepath.Join("tmp", "work", "shop")
	if got := resolveWorkspaceDir("shop"); got != want {
		t.Errorf("resolveWorkspaceDir = %q, want %q", got, want)
	}
}

func TestLoadBlueprint_Builtin(t *testing.T) {
	bp, err := loadBlueprint("")
	if err != nil {
		t.Fatalf("loadBlueprint error: %v", err)
	}
	if bp.Name != blueprint.DefaultWorkspaceName {
		t.Errorf("Name = %q, want %q", bp.Name, blueprint.DefaultWorkspaceName)
	}
}

func TestLoadBlueprint_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bp.yaml")
	content := `name: demo
version: 0.1.0
entries:
  - path: data
    kind: dir
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	bp, err := loadBlueprint(path)
	if err != nil {
		t.Fatalf("loadBlueprint error: %v", err)
	}
	if bp.Name != "demo" {
		t.Errorf("Name = %q, want %q", bp.Name, "demo")
	}
}

func TestLoadBlueprint_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bp.yaml")
	content := `name: demo
version: 0.1.0
entries:
  - path: whatever
    kind: symlink
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := loadBlueprint(path); err == nil {
		t.Fatal("expected error for unknown kind, got nil")
	}
}

func TestPrintMaterializeResult(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	result := &materialize.Result{
		Root:    "customer-shopping-analytics",
		Created: []string{"data/raw", "README.md"},
		Skipped: []string{"data/raw/customer_shopping_behavior.csv"},
	}
	printMaterializeResult(cmd, blueprint.Builtin(), result)

	out := buf.String()
	for _, want := range []string{
		"Workspace customer-shopping-analytics at customer-shopping-analytics",
		"created   data/raw",
		"created   README.md",
		"preserved data/raw/customer_shopping_behavior.csv",
		"Next steps:",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestPrintMaterializeResult_CustomBlueprintSkipsNextSteps(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	bp := &blueprint.Blueprint{Name: "demo", Version: "0.1.0"}
	printMaterializeResult(cmd, bp, &materialize.Result{Root: "demo"})

	if strings.Contains(buf.String(), "Next steps:") {
		t.Errorf("custom blueprint should not print next steps:\n%s", buf.String())
	}
}

func TestPlural(t *testing.T) {
	if got := plural(1, "y", "ies"); got != "y" {
		t.Errorf("plural(1) = %q, want %q", got, "y")
	}
	if got := plural(3, "y", "ies"); got != "ies" {
		t.Errorf("plural(3) = %q, want %q", got, "ies")
	}
	if got := plural(0, "y", "ies"); got != "ies" {
		t.Errorf("plural(0) = %q, want %q", got, "ies")
	}
}
