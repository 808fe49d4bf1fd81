package planloader

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"fieldtrack/internal/util"

	"github.com/pkg/errors"
)

// PlanManifest is the audit record shipped next to plan.csv. It tracks the
// provenance of the export so an import can refuse stale or tampered files.
type PlanManifest struct {
	Version string     `json:"version"`
	Source  SourceInfo `json:"source"`
	Plan    PlanInfo   `json:"plan"`
}

// SourceInfo contains information about the exporting planning tool
type SourceInfo struct {
	Team       string    `json:"team"`
	Filename   string    `json:"filename"`
	SizeBytes  int64     `json:"size_bytes"`
	SHA256     string    `json:"sha256,omitempty"`
	ExportedAt time.Time `json:"exported_at"`
}

// PlanInfo contains information about the plan content itself
type PlanInfo struct {
	WeekStart string `json:"week_start"` // Monday of the planned week, YYYY-MM-DD
	RowCount  int64  `json:"row_count"`
}

// LoadManifest loads and parses the manifest.json file from the given directory
func LoadManifest(dataDir string) (*PlanManifest, error) {
	manifestPath := filepath.Join(dataDir, "manifest.json")

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, "manifest.json not found in plan export directory")
		}

		return nil, errors.Wrap(err, "failed to read manifest.json")
	}

	var manifest PlanManifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, errors.Wrap(err, "failed to parse manifest.json")
	}

	return &manifest, nil
}

// Validate checks if the manifest is valid and complete
func (m *PlanManifest) Validate() error {
	if m.Version == "" {
		return errors.New("manifest version is required")
	}

	if m.Source.Team == "" {
		return errors.New("source team is required")
	}

	if m.Source.ExportedAt.IsZero() {
		return errors.New("source exported_at timestamp is required")
	}

	if _, err := time.ParseInLocation(time.DateOnly, m.Plan.WeekStart, time.UTC); err != nil {
		return errors.Errorf("plan week_start %q is not a valid date", m.Plan.WeekStart)
	}

	if m.Plan.RowCount <= 0 {
		return errors.New("plan row_count must be positive")
	}

	return nil
}

// Verify checks plan.csv against the manifest's size and checksum.
func (m *PlanManifest) Verify(dataDir string) error {
	path := filepath.Join(dataDir, PlanFilename)

	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrap(err, "plan.csv not found in plan export directory")
	}

	if m.Source.SizeBytes > 0 && info.Size() != m.Source.SizeBytes {
		return errors.Errorf("plan.csv size mismatch: manifest says %s, file is %s",
			util.FormatBytes(m.Source.SizeBytes), util.FormatBytes(info.Size()))
	}

	if m.Source.SHA256 != "" {
		checksum, err := util.CalculateFileChecksum(path)
		if err != nil {
			return errors.Wrap(err, "failed to checksum plan.csv")
		}
		if checksum != m.Source.SHA256 {
			return errors.New("plan.csv checksum does not match manifest")
		}
	}

	return nil
}

// GetAge returns the age of the plan since it was exported
func (m *PlanManifest) GetAge() time.Duration {
	return time.Since(m.Source.ExportedAt)
}

// Summary returns a brief summary of the manifest for logging
func (m *PlanManifest) Summary() map[string]any {
	return map[string]any{
		"team":        m.Source.Team,
		"exported_at": m.Source.ExportedAt,
		"week_start":  m.Plan.WeekStart,
		"row_count":   m.Plan.RowCount,
		"size":        util.FormatBytes(m.Source.SizeBytes),
		"age":         util.FormatDuration(m.GetAge()),
	}
}
