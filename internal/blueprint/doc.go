// Package blueprint defines the declarative description of a workspace
// tree: an ordered list of typed entries (directories, empty files,
// notebook skeletons, literal text, literal binary) plus the built-in
// customer-shopping-analytics blueprint. User-supplied blueprint YAML is
// validated against an embedded JSON Schema before use.
package blueprint
