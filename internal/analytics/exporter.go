package analytics

import (
	"encoding/json"
	"fmt"
	"os"
)

// Exporter writes snapshots to a JSON artifact on disk.
type Exporter struct {
	path string
}

// NewExporter creates an Exporter targeting the given path.
func NewExporter(path string) *Exporter {
	return &Exporter{path: path}
}

// Path returns the target path of the artifact.
func (e *Exporter) Path() string { return e.path }

// Export serializes the snapshot to the configured path, replacing any
// previous artifact entirely. The file is the hand-off point to the
// chart renderer, which expects this exact document shape.
func (e *Exporter) Export(snap Snapshot) error {
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(e.path, data, 0o644); err != nil {
		return fmt.Errorf("write report %s: %w", e.path, err)
	}
	return nil
}
