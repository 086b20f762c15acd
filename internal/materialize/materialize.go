package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dataforge-labs/dataforge/internal/blueprint"
)

// Permissions for created directories and files.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Result holds the outcome of a materialization run. Paths are the entry
// paths from the blueprint, relative to Root.
type Result struct {
	Root    string   // absolute materialization root
	Created []string // entries written this run
	Skipped []string // entries left untouched (existing dirs, preserved guarded files)
}

// Op is the operation Plan predicts for an entry.
type Op string

const (
	OpCreate    Op = "create"    // target missing, will be written
	OpOverwrite Op = "overwrite" // existing file will be rewritten
	OpPreserve  Op = "preserve"  // guarded or empty file keeps its content
	OpExists    Op = "exists"    // directory already present
	OpConflict  Op = "conflict"  // target exists with the wrong type
)

// Action is one entry of a dry run.
type Action struct {
	Path string
	Kind blueprint.Kind
	Op   Op
}

// Materialize realizes bp under root, creating the root if needed. Entries
// are processed in declaration order; the first filesystem error aborts
// the run. There is no rollback: a failed run leaves a partial tree that
// a re-run completes.
func Materialize(bp *blueprint.Blueprint, root string) (*Result, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}
	if err := os.MkdirAll(absRoot, dirPerm); err != nil {
		return nil, fmt.Errorf("creating root %s: %w", absRoot, err)
	}

	result := &Result{Root: absRoot}
	for _, e := range bp.Entries {
		target, err := resolve(absRoot, e.Path)
		if err != nil {
			return nil, err
		}

		written, err := apply(e, target)
		if err != nil {
			return nil, err
		}
		if written {
			result.Created = append(result.Created, e.Path)
		} else {
			result.Skipped = append(result.Skipped, e.Path)
		}
	}
	return result, nil
}

// apply materializes a single entry. It reports whether anything was
// written to target.
func apply(e blueprint.Entry, target string) (bool, error) {
	if e.Kind == blueprint.KindDir {
		return ensureDir(target)
	}

	// Parent directories first, so files never race their folders.
	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", filepath.Dir(target), err)
	}

	switch e.Kind {
	case blueprint.KindEmpty:
		return seedFile(target, e.Seed)
	case blueprint.KindNotebook:
		content, err := blueprint.NotebookSkeleton()
		if err != nil {
			return false, err
		}
		return true, writeFile(target, content)
	case blueprint.KindText:
		return true, writeFile(target, []byte(e.Text))
	case blueprint.KindBinary:
		return true, writeFile(target, e.Data)
	default:
		return false, fmt.Errorf("entry %s: unknown kind %q", e.Path, e.Kind)
	}
}

// Apply materializes a single entry under root, with the same containment
// check and guarded semantics as a full run. Doctor repair uses it to
// restore missing entries without resetting modified ones.
func Apply(e blueprint.Entry, root string) error {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolving root %s: %w", root, err)
	}
	target, err := resolve(absRoot, e.Path)
	if err != nil {
		return err
	}
	_, err = apply(e, target)
	return err
}

// Plan reports what Materialize would do for bp under root, without
// touching the filesystem. Invalid entry paths still fail, so a plan
// doubles as a containment check.
func Plan(bp *blueprint.Blueprint, root string) ([]Action, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving root %s: %w", root, err)
	}

	actions := make([]Action, 0, len(bp.Entries))
	for _, e := range bp.Entries {
		target, err := resolve(absRoot, e.Path)
		if err != nil {
			return nil, err
		}
		actions = append(actions, Action{Path: e.Path, Kind: e.Kind, Op: predict(e, target)})
	}
	return actions, nil
}

// predict classifies what apply would do to target.
func predict(e blueprint.Entry, target string) Op {
	info, err := os.Stat(target)

	if e.Kind == blueprint.KindDir {
		switch {
		case err != nil:
			return OpCreate
		case info.IsDir():
			return OpExists
		default:
			return OpConflict
		}
	}

	switch {
	case err != nil:
		return OpCreate
	case info.IsDir():
		return OpConflict
	case e.Kind == blueprint.KindEmpty:
		if info.Size() == 0 && e.Seed != "" {
			return OpCreate
		}
		return OpPreserve
	default:
		return OpOverwrite
	}
}

// resolve validates an entry path and joins it under root. Absolute
// paths and paths escaping the root are rejected before any write.
func resolve(root, entryPath string) (string, error) {
	if entryPath == "" {
		return "", fmt.Errorf("blueprint entry has an empty path")
	}
	rel := filepath.FromSlash(entryPath)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("entry path %q escapes the materialization root", entryPath)
	}
	return filepath.Join(root, rel), nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(target string) (bool, error) {
	if info, err := os.Stat(target); err == nil {
		if info.IsDir() {
			return false, nil
		}
		return false, fmt.Errorf("%s exists but is not a directory", target)
	}
	if err := os.MkdirAll(target, dirPerm); err != nil {
		return false, fmt.Errorf("creating directory %s: %w", target, err)
	}
	return true, nil
}

// seedFile creates a zero-byte file, writing seed only while the file is
// missing or empty. Existing non-empty content is never clobbered.
func seedFile(target, seed string) (bool, error) {
	info, err := os.Stat(target)
	if err == nil && info.Size() > 0 {
		return false, nil
	}
	if err == nil && seed == "" {
		// Already touched, nothing to add.
		return false, nil
	}
	return true, writeFile(target, []byte(seed))
}

func writeFile(target string, content []byte) error {
	if err := os.WriteFile(target, content, filePerm); err != nil {
		return fmt.Errorf("writing %s: %w", target, err)
	}
	return nil
}
