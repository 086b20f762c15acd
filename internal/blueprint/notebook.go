package blueprint

import (
	"encoding/json"
	"fmt"
)

// notebookDoc mirrors the on-disk Jupyter notebook format, version 4.5.
// Field order matters: it is the serialization order.
type notebookDoc struct {
	NBFormat      int            `json:"nbformat"`
	NBFormatMinor int            `json:"nbformat_minor"`
	Metadata      map[string]any `json:"metadata"`
	Cells         []notebookCell `json:"cells"`
}

type notebookCell struct {
	CellType string         `json:"cell_type"`
	Metadata map[string]any `json:"metadata"`
	Source   []string       `json:"source"`
}

// NotebookSkeleton renders the document written for kind "notebook"
// entries: nbformat 4, minor 5, a single markdown cell, two-space indent.
func NotebookSkeleton() ([]byte, error) {
	doc := notebookDoc{
		NBFormat:      4,
		NBFormatMinor: 5,
		Metadata:      map[string]any{},
		Cells: []notebookCell{{
			CellType: "markdown",
			Metadata: map[string]any{},
			Source:   []string{"# Notebook\n\nThis is a generated notebook skeleton. Replace with your content."},
		}},
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding notebook skeleton: %w", err)
	}
	return out, nil
}
