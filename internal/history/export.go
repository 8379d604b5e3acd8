// Package history writes the point-in-time "save history" export: the whole
// job collection as a dated JSON file. One-way; there is no matching import
// contract, though the output happens to be valid input to the JSON import
// path.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/devtrackhq/jobgrid/internal/models"
)

// Export serializes jobs into dir as job-tracker-<YYYY-MM-DD>.json and
// returns the written path.
func Export(jobs []models.JobApplication, dir string, now time.Time) (string, error) {
	data, err := json.MarshalIndent(jobs, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encode history: %w", err)
	}
	name := fmt.Sprintf("job-tracker-%s.json", now.Format("2006-01-02"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write history: %w", err)
	}
	return path, nil
}
