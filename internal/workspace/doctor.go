package workspace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Masterminds/semver/v3"

	"github.com/dataforge-labs/dataforge/internal/blueprint"
	"github.com/dataforge-labs/dataforge/internal/materialize"
)

// Check validates a materialized workspace against bp, printing one line
// per finding to w. When fix is true it repairs what it can: missing
// entries are re-materialized (guarded semantics keep collected data
// safe), zero-length guarded files are seeded, and a missing manifest is
// rewritten. It returns the number of entries still missing afterwards.
func Check(w io.Writer, dir string, bp *blueprint.Blueprint, toolVersion string, fix bool) (int, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return 0, fmt.Errorf("workspace %s: %w", dir, err)
	}
	if !info.IsDir() {
		return 0, fmt.Errorf("workspace %s is not a directory", dir)
	}

	fmt.Fprintf(w, "Workspace check: %s\n", dir)

	checkManifest(w, dir, bp, toolVersion, fix)

	missing := 0
	for _, e := range bp.Entries {
		target := filepath.Join(dir, filepath.FromSlash(e.Path))
		if !checkEntry(w, e, target, dir, fix) {
			missing++
		}
	}
	return missing, nil
}

// checkEntry reports one blueprint entry. It returns false while the
// entry is still missing.
func checkEntry(w io.Writer, e blueprint.Entry, target, root string, fix bool) bool {
	info, err := os.Stat(target)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", e.Path)
		if !fix {
			return false
		}
		if applyErr := materialize.Apply(e, root); applyErr != nil {
			fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", e.Path, applyErr)
			return false
		}
		fmt.Fprintf(w, "  [FIX ] Created %s\n", e.Path)
		return true
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", e.Path, err)
		return false
	}

	if e.Kind == blueprint.KindDir {
		if !info.IsDir() {
			fmt.Fprintf(w, "  [WARN] %s exists but is not a directory\n", e.Path)
			return true
		}
		fmt.Fprintf(w, "  [ OK ] %s\n", e.Path)
		return true
	}

	if info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s exists but is a directory\n", e.Path)
		return true
	}

	if e.Guarded() && info.Size() == 0 {
		fmt.Fprintf(w, "  [WARN] %s is empty (no data yet)\n", e.Path)
		if fix && e.Seed != "" {
			if applyErr := materialize.Apply(e, root); applyErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not seed %s: %v\n", e.Path, applyErr)
				return true
			}
			fmt.Fprintf(w, "  [FIX ] Seeded %s\n", e.Path)
		}
		return true
	}

	fmt.Fprintf(w, "  [ OK ] %s\n", e.Path)
	return true
}

// checkManifest reports on the workspace manifest and the blueprint
// version drift between the workspace and this build.
func checkManifest(w io.Writer, dir string, bp *blueprint.Blueprint, toolVersion string, fix bool) {
	m, err := LoadManifest(dir)
	if err != nil {
		fmt.Fprintf(w, "  [MISS] %s not found or unreadable\n", ManifestFile)
		if fix {
			if writeErr := WriteManifest(dir, bp.Name, bp.Version, toolVersion); writeErr != nil {
				fmt.Fprintf(w, "  [FAIL] Could not write %s: %v\n", ManifestFile, writeErr)
				return
			}
			fmt.Fprintf(w, "  [FIX ] Wrote %s\n", ManifestFile)
		} else {
			fmt.Fprintln(w, "         Run 'dataforge doctor --fix' to record one")
		}
		return
	}

	recorded, recErr := semver.NewVersion(m.BlueprintVersion)
	current, curErr := semver.NewVersion(bp.Version)
	if recErr != nil || curErr != nil {
		fmt.Fprintf(w, "  [WARN] cannot compare blueprint versions (%q vs %q)\n",
			m.BlueprintVersion, bp.Version)
		return
	}

	switch {
	case recorded.LessThan(current):
		fmt.Fprintf(w, "  [WARN] workspace uses blueprint %s %s; %s is current (re-run 'dataforge new' to refresh)\n",
			m.Blueprint, recorded, current)
	case recorded.GreaterThan(current):
		fmt.Fprintf(w, "  [WARN] workspace blueprint %s %s is newer than this build knows (%s); upgrade the CLI\n",
			m.Blueprint, recorded, current)
	default:
		fmt.Fprintf(w, "  [ OK ] %s (blueprint %s %s)\n", ManifestFile, m.Blueprint, recorded)
	}
}
