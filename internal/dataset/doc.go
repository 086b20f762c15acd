// Package dataset reads CSV datasets for loading into a database: header
// normalization into SQL-safe identifiers, UTF-8 BOM stripping, and
// per-column type inference over the sampled values.
package dataset
