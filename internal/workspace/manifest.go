package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.yaml.in/yaml/v3"
)

// ManifestFile is the marker file recorded at the workspace root.
const ManifestFile = ".dataforge.yaml"

// Manifest records how a workspace was created. Doctor compares the
// recorded blueprint version against the current one, and the db commands
// use the workspace root to locate default paths.
type Manifest struct {
	Blueprint        string    `yaml:"blueprint"`
	BlueprintVersion string    `yaml:"blueprint_version"`
	ToolVersion      string    `yaml:"tool_version"`
	CreatedAt        time.Time `yaml:"created_at"`
}

// ManifestPath returns the full path to the manifest for a workspace root.
func ManifestPath(dir string) string {
	return filepath.Join(dir, ManifestFile)
}

// LoadManifest reads and parses the manifest from a workspace root.
func LoadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(ManifestPath(dir))
	if err != nil {
		return nil, fmt.Errorf("reading workspace manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing workspace manifest: %w", err)
	}
	return &m, nil
}

// SaveManifest writes the manifest to a workspace root.
func SaveManifest(dir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling workspace manifest: %w", err)
	}
	if err := os.WriteFile(ManifestPath(dir), data, 0644); err != nil {
		return fmt.Errorf("writing workspace manifest: %w", err)
	}
	return nil
}

// WriteManifest records a fresh manifest after a materialization run.
func WriteManifest(dir, blueprintName, blueprintVersion, toolVersion string) error {
	return SaveManifest(dir, &Manifest{
		Blueprint:        blueprintName,
		BlueprintVersion: blueprintVersion,
		ToolVersion:      toolVersion,
		CreatedAt:        time.Now().UTC(),
	})
}

// Find walks up from dir looking for a workspace manifest and returns the
// workspace root containing it.
func Find(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", dir, err)
	}

	for {
		if _, err := os.Stat(ManifestPath(abs)); err == nil {
			return abs, nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("no %s found in %s or any parent directory", ManifestFile, dir)
		}
		abs = parent
	}
}
