package usecase

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// IngestSampleInput represents one device-pushed location fix
type IngestSampleInput struct {
	VisitID    *uuid.UUID `json:"visit_id,omitempty"`
	Rep        string     `json:"rep"`
	RecordedAt time.Time  `json:"recorded_at"`
	Latitude   float64    `json:"latitude"`
	Longitude  float64    `json:"longitude"`
	Accuracy   float64    `json:"accuracy"`
	Speed      float64    `json:"speed"`
	Heading    float64    `json:"heading"`
	Source     string     `json:"source"`
}

// LocationUsecase defines the interface for reading and ingesting raw fixes
type LocationUsecase interface {
	// IngestSamples appends a batch of device-pushed fixes to the location store.
	IngestSamples(ctx context.Context, inputs []*IngestSampleInput) error

	// SamplesForVisit retrieves the fixes bound to one visit, oldest first.
	SamplesForVisit(ctx context.Context, visitID uuid.UUID) ([]*entity.LocationSample, error)
}
