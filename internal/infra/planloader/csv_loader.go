// Package planloader reads exported weekly visit plans (plan.csv plus a
// manifest.json audit record) so they can be imported into the visit calendar.
package planloader

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// PlanFilename is the CSV file a plan export directory must contain.
const PlanFilename = "plan.csv"

// PlanRow is one planned visit parsed from the export.
type PlanRow struct {
	VisitDate  time.Time
	ClientName string
	Specialty  string
	Area       string
	Rep        string
	Notes      string
}

// CSVLoader handles loading of a visit plan export directory.
type CSVLoader struct {
	dataDir string
}

// NewCSVLoader creates a new CSV loader for the given export directory
func NewCSVLoader(dataDir string) *CSVLoader {
	return &CSVLoader{dataDir: dataDir}
}

// Load reads all planned visits from plan.csv.
// Expected CSV format: visit_date,client_name,specialty,area,rep,notes
func (l *CSVLoader) Load() ([]PlanRow, error) {
	path := filepath.Join(l.dataDir, PlanFilename)
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header row
	if _, err := reader.Read(); err != nil {
		return nil, errors.WithStack(err)
	}

	var rows []PlanRow
	lineNum := 1 // Start at 1 because we skipped header

	for {
		record, readErr := reader.Read()
		if errors.Is(readErr, io.EOF) {
			break
		}
		if readErr != nil {
			return nil, errors.WithStack(readErr)
		}
		lineNum++

		if len(record) < 6 {
			return nil, errors.Errorf("invalid plan.csv format at line %d: expected 6 columns, got %d", lineNum, len(record))
		}

		row, parseErr := parsePlanRow(record, lineNum)
		if parseErr != nil {
			return nil, parseErr
		}

		rows = append(rows, row)
	}

	return rows, nil
}

func parsePlanRow(record []string, lineNum int) (PlanRow, error) {
	visitDate, err := time.ParseInLocation(time.DateOnly, strings.TrimSpace(record[0]), time.UTC)
	if err != nil {
		return PlanRow{}, errors.Errorf("invalid visit_date at line %d: %q", lineNum, record[0])
	}

	clientName := strings.TrimSpace(record[1])
	if clientName == "" {
		return PlanRow{}, errors.Errorf("missing client_name at line %d", lineNum)
	}

	return PlanRow{
		VisitDate:  visitDate,
		ClientName: clientName,
		Specialty:  strings.TrimSpace(record[2]),
		Area:       strings.TrimSpace(record[3]),
		Rep:        strings.TrimSpace(record[4]),
		Notes:      strings.TrimSpace(record[5]),
	}, nil
}
