package planloader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fieldtrack/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validManifest() PlanManifest {
	return PlanManifest{
		Version: "1.0",
		Source: SourceInfo{
			Team:       "cairo-east",
			Filename:   "plan.csv",
			ExportedAt: time.Date(2026, 1, 2, 16, 0, 0, 0, time.UTC),
		},
		Plan: PlanInfo{
			WeekStart: "2026-01-05",
			RowCount:  2,
		},
	}
}

func writeManifest(t *testing.T, dir string, manifest PlanManifest) {
	t.Helper()

	data, err := json.MarshalIndent(manifest, "", "  ")
	require.NoError(t, err)

	err = os.WriteFile(filepath.Join(dir, "manifest.json"), data, 0644)
	require.NoError(t, err)
}

func TestLoadManifest_Success(t *testing.T) {
	tmpDir := t.TempDir()
	writeManifest(t, tmpDir, validManifest())

	loaded, err := LoadManifest(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, "1.0", loaded.Version)
	assert.Equal(t, "cairo-east", loaded.Source.Team)
	assert.Equal(t, "2026-01-05", loaded.Plan.WeekStart)
	assert.Equal(t, int64(2), loaded.Plan.RowCount)
}

func TestLoadManifest_NotFound(t *testing.T) {
	tmpDir := t.TempDir()

	loaded, err := LoadManifest(tmpDir)
	require.Error(t, err)
	assert.Nil(t, loaded)
	assert.Contains(t, err.Error(), "manifest.json not found")
}

func TestLoadManifest_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	err := os.WriteFile(filepath.Join(tmpDir, "manifest.json"), []byte("{not json"), 0644)
	require.NoError(t, err)

	loaded, err := LoadManifest(tmpDir)
	require.Error(t, err)
	assert.Nil(t, loaded)
}

func TestPlanManifest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PlanManifest)
		wantErr string
	}{
		{name: "valid", mutate: func(*PlanManifest) {}},
		{
			name:    "missing version",
			mutate:  func(m *PlanManifest) { m.Version = "" },
			wantErr: "version is required",
		},
		{
			name:    "missing team",
			mutate:  func(m *PlanManifest) { m.Source.Team = "" },
			wantErr: "team is required",
		},
		{
			name:    "missing exported_at",
			mutate:  func(m *PlanManifest) { m.Source.ExportedAt = time.Time{} },
			wantErr: "exported_at",
		},
		{
			name:    "bad week_start",
			mutate:  func(m *PlanManifest) { m.Plan.WeekStart = "Jan 5" },
			wantErr: "week_start",
		},
		{
			name:    "zero row_count",
			mutate:  func(m *PlanManifest) { m.Plan.RowCount = 0 },
			wantErr: "row_count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			manifest := validManifest()
			tt.mutate(&manifest)

			err := manifest.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestPlanManifest_Verify_ChecksumMatch(t *testing.T) {
	tmpDir := t.TempDir()
	writePlanCSV(t, tmpDir, "visit_date,client_name,specialty,area,rep,notes\n")

	path := filepath.Join(tmpDir, PlanFilename)
	checksum, err := util.CalculateFileChecksum(path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)

	manifest := validManifest()
	manifest.Source.SizeBytes = info.Size()
	manifest.Source.SHA256 = checksum

	assert.NoError(t, manifest.Verify(tmpDir))
}

func TestPlanManifest_Verify_ChecksumMismatch(t *testing.T) {
	tmpDir := t.TempDir()
	writePlanCSV(t, tmpDir, "visit_date,client_name,specialty,area,rep,notes\n")

	manifest := validManifest()
	manifest.Source.SHA256 = "deadbeef"

	err := manifest.Verify(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "checksum does not match")
}

func TestPlanManifest_Verify_SizeMismatch(t *testing.T) {
	tmpDir := t.TempDir()
	writePlanCSV(t, tmpDir, "visit_date,client_name,specialty,area,rep,notes\n")

	manifest := validManifest()
	manifest.Source.SizeBytes = 99999

	err := manifest.Verify(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "size mismatch")
}

func TestPlanManifest_Verify_MissingPlanFile(t *testing.T) {
	tmpDir := t.TempDir()

	manifest := validManifest()

	err := manifest.Verify(tmpDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan.csv not found")
}
