package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"fieldtrack/internal/infra/planloader"
	"fieldtrack/internal/util"

	"github.com/pkg/errors"
)

const importRequestTimeout = 10 * time.Second

// addVisitPayload mirrors the API's add-visit request body.
type addVisitPayload struct {
	VisitDate  string `json:"visit_date"`
	ClientName string `json:"client_name"`
	Specialty  string `json:"specialty,omitempty"`
	Area       string `json:"area,omitempty"`
	Notes      string `json:"notes,omitempty"`
	Rep        string `json:"rep,omitempty"`
}

func runImport(ctx context.Context, dir, apiBase string) error {
	rows, manifest, err := validatePlanExport(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Importing %d visits for team %q, week of %s\n",
		len(rows), manifest.Source.Team, manifest.Plan.WeekStart)

	client := &http.Client{Timeout: importRequestTimeout}
	started := time.Now()
	imported := 0

	for i, row := range rows {
		if err := postVisit(ctx, client, apiBase, row); err != nil {
			return errors.Wrapf(err, "row %d (%s) failed after %d imported", i+1, row.ClientName, imported)
		}
		imported++
	}

	fmt.Printf("Imported %d visits in %s\n", imported, util.FormatDuration(time.Since(started)))

	return nil
}

func postVisit(ctx context.Context, client *http.Client, apiBase string, row planloader.PlanRow) error {
	payload := addVisitPayload{
		VisitDate:  row.VisitDate.Format(time.DateOnly),
		ClientName: row.ClientName,
		Specialty:  row.Specialty,
		Area:       row.Area,
		Notes:      row.Notes,
		Rep:        row.Rep,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode visit payload")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, apiBase+"/api/v1/visits", bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "failed to call visits API")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))

		return errors.Errorf("visits API returned %d: %s", resp.StatusCode, string(detail))
	}

	return nil
}
