// Package materialize realizes a blueprint on the filesystem: one linear
// pass over the entry table, creating directories and files under a single
// root. Guarded entries preserve existing non-empty content; everything
// else is overwritten on every run. Plan walks the same table without
// writing and reports what a run would do.
package materialize
