package repository

import (
	"context"

	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationRepository defines the interface for the append-only location store.
type LocationRepository interface {
	// InsertSamples appends a batch of location samples. Samples are never
	// mutated after insertion.
	InsertSamples(ctx context.Context, samples []*entity.LocationSample) error

	// FindSamplesByVisit retrieves all samples bound to a visit, ordered by
	// recorded_at ascending. Unbound samples are excluded.
	FindSamplesByVisit(ctx context.Context, visitID uuid.UUID) ([]*entity.LocationSample, error)
}
