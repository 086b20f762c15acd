package blueprint

// Kind discriminates what an entry materializes to.
type Kind string

// Entry kinds. Anything else fails validation.
const (
	KindDir      Kind = "dir"      // directory, created with ancestors
	KindEmpty    Kind = "empty"    // zero-byte file, optionally seeded
	KindNotebook Kind = "notebook" // fixed notebook skeleton, overwritten
	KindText     Kind = "text"     // literal string, overwritten
	KindBinary   Kind = "binary"   // literal bytes, overwritten
)

// ValidKinds contains all accepted entry kind values.
var ValidKinds = []Kind{KindDir, KindEmpty, KindNotebook, KindText, KindBinary}

// Entry describes one directory or file of a blueprint. Path is
// slash-separated and relative to the materialization root. Declaration
// order is execution order.
type Entry struct {
	Path string `yaml:"path" json:"path"`
	Kind Kind   `yaml:"kind" json:"kind"`

	// Text is the file content for kind "text".
	Text string `yaml:"text,omitempty" json:"text,omitempty"`

	// Data is the payload for kind "binary". YAML carries it as a
	// !!binary (base64) scalar.
	Data []byte `yaml:"data,omitempty" json:"data,omitempty"`

	// Seed is written into a kind "empty" file only while the file is
	// missing or zero-length. Existing non-empty content is preserved
	// across re-runs.
	Seed string `yaml:"seed,omitempty" json:"seed,omitempty"`
}

// Blueprint is an ordered set of entries materialized under one root.
type Blueprint struct {
	Name        string  `yaml:"name" json:"name"`
	Version     string  `yaml:"version" json:"version"`
	Description string  `yaml:"description,omitempty" json:"description,omitempty"`
	Entries     []Entry `yaml:"entries" json:"entries"`
}

// Guarded reports whether the entry preserves existing non-empty content
// across runs (the seeded dataset placeholders).
func (e Entry) Guarded() bool {
	return e.Kind == KindEmpty
}
