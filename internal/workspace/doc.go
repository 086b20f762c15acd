// Package workspace manages the .dataforge.yaml manifest a materialized
// workspace carries, locates workspace roots, and runs the doctor checks
// that verify and repair a tree against its blueprint.
package workspace
