package results

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// timestampLayout names result directories: results/<YYYYMMDDHHMMSS>.
const timestampLayout = "20060102150405"

// ManifestName is the run manifest written into each result directory.
const ManifestName = "run.json"

// Run identifies one benchmark run and owns its result directory.
type Run struct {
	ID        uuid.UUID `json:"runId"`
	StartedAt time.Time `json:"startedAt"`
	Version   string    `json:"version,omitempty"`

	// Dir is set once CreateDir succeeds.
	Dir string `json:"-"`
}

// NewRun allocates a run identity stamped with the current UTC time.
func NewRun(version string) *Run {
	return &Run{
		ID:        uuid.New(),
		StartedAt: time.Now().UTC(),
		Version:   version,
	}
}

// CreateDir creates the run's timestamped directory under root and writes
// the run manifest into it.
func (r *Run) CreateDir(root string) (string, error) {
	dir := filepath.Join(root, r.StartedAt.Format(timestampLayout))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create results dir %s: %w", dir, err)
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode run manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestName), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write run manifest: %w", err)
	}

	r.Dir = dir
	return dir, nil
}
