package history

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devtrackhq/jobgrid/internal/models"
)

func TestExport(t *testing.T) {
	dir := t.TempDir()
	jobs := []models.JobApplication{
		{ID: "a", Company: "Acme", Title: "Engineer", Status: "applied"},
		{ID: "b", Company: "Globex", Title: "Analyst", Status: "interview"},
	}
	now := time.Date(2024, time.June, 5, 14, 0, 0, 0, time.UTC)

	path, err := Export(jobs, dir, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "job-tracker-2024-06-05.json"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var restored []models.JobApplication
	require.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, jobs, restored)
}

func TestExportEmptyCollection(t *testing.T) {
	dir := t.TempDir()
	path, err := Export(nil, dir, time.Now())
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestExportBadDir(t *testing.T) {
	_, err := Export(nil, filepath.Join(t.TempDir(), "missing", "deeper"), time.Now())
	assert.Error(t, err)
}
