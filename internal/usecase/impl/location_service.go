package impl

import (
	"context"
	"strings"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type locationService struct {
	locationRepo repository.LocationRepository
}

// NewLocationService creates a new location ingestion service instance
func NewLocationService(locationRepo repository.LocationRepository) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
	}
}

// IngestSamples appends a batch of device-pushed fixes to the location store.
// External records cross the strict parse boundary here: malformed rows
// reject the batch instead of being trusted downstream.
func (s *locationService) IngestSamples(ctx context.Context, inputs []*usecase.IngestSampleInput) error {
	if len(inputs) == 0 {
		return nil
	}

	samples := make([]*entity.LocationSample, 0, len(inputs))
	for _, input := range inputs {
		if strings.TrimSpace(input.Rep) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("rep is required on every sample")
		}

		source, err := entity.ParseSourceTag(input.Source)
		if err != nil {
			return domainerrors.ErrValidationFailed.WithDetails(err.Error())
		}

		recordedAt := input.RecordedAt
		if recordedAt.IsZero() {
			recordedAt = time.Now()
		}

		samples = append(samples, &entity.LocationSample{
			ID:         uuid.New(),
			VisitID:    input.VisitID,
			Rep:        strings.TrimSpace(input.Rep),
			RecordedAt: recordedAt,
			Latitude:   input.Latitude,
			Longitude:  input.Longitude,
			Accuracy:   input.Accuracy,
			Speed:      input.Speed,
			Heading:    input.Heading,
			Source:     source,
		})
	}

	if err := s.locationRepo.InsertSamples(ctx, samples); err != nil {
		return errors.Wrap(err, "failed to insert location samples")
	}

	return nil
}

// SamplesForVisit retrieves the fixes bound to one visit, oldest first.
func (s *locationService) SamplesForVisit(ctx context.Context, visitID uuid.UUID) ([]*entity.LocationSample, error) {
	samples, err := s.locationRepo.FindSamplesByVisit(ctx, visitID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find samples by visit")
	}

	return samples, nil
}
