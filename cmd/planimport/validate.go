package main

import (
	"fmt"
	"os"
	"time"

	"fieldtrack/internal/infra/planloader"
	"fieldtrack/internal/util"

	"github.com/pkg/errors"
)

func runValidate(dir string) error {
	fmt.Printf("Validating plan export in directory: %s\n", dir)

	rows, manifest, err := validatePlanExport(dir)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("Plan for team %q, week of %s:\n", manifest.Source.Team, manifest.Plan.WeekStart)
	fmt.Printf("  %d planned visits, exported %s ago\n", len(rows), util.FormatDuration(manifest.GetAge()))
	fmt.Println("Validation passed")

	return nil
}

func validatePlanExport(dir string) ([]planloader.PlanRow, *planloader.PlanManifest, error) {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil, errors.Errorf("directory does not exist: %s", dir)
	}

	manifest, err := planloader.LoadManifest(dir)
	if err != nil {
		return nil, nil, err
	}
	if err := manifest.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "invalid manifest")
	}
	if err := manifest.Verify(dir); err != nil {
		return nil, nil, err
	}

	rows, err := planloader.NewCSVLoader(dir).Load()
	if err != nil {
		return nil, nil, err
	}
	if int64(len(rows)) != manifest.Plan.RowCount {
		return nil, nil, errors.Errorf("row count mismatch: manifest says %d, plan.csv has %d",
			manifest.Plan.RowCount, len(rows))
	}

	// Every row must fall inside the manifest's week.
	weekStart, _ := time.ParseInLocation(time.DateOnly, manifest.Plan.WeekStart, time.UTC)
	weekEnd := weekStart.AddDate(0, 0, 6)
	for i, row := range rows {
		if row.VisitDate.Before(weekStart) || row.VisitDate.After(weekEnd) {
			return nil, nil, errors.Errorf("row %d: visit date %s is outside the plan week %s..%s",
				i+1, row.VisitDate.Format(time.DateOnly),
				weekStart.Format(time.DateOnly), weekEnd.Format(time.DateOnly))
		}
	}

	return rows, manifest, nil
}
