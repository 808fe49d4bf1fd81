package impl

import (
	"context"
	"testing"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	mockRepo "fieldtrack/internal/mocks/repository"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// locationServiceFixtures holds all test dependencies for location tests.
type locationServiceFixtures struct {
	service      usecase.LocationUsecase
	locationRepo *mockRepo.MockLocationRepository
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewLocationService(locationRepo)

	return locationServiceFixtures{
		service:      service,
		locationRepo: locationRepo,
	}
}

func TestLocationService_IngestSamples_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	visitID := uuid.New()
	recordedAt := time.Date(2026, 1, 6, 9, 15, 0, 0, time.UTC)

	var captured []*entity.LocationSample
	fx.locationRepo.EXPECT().
		InsertSamples(ctx, mock.AnythingOfType("[]*entity.LocationSample")).
		Run(func(_ context.Context, samples []*entity.LocationSample) {
			captured = samples
		}).
		Return(nil)

	err := fx.service.IngestSamples(ctx, []*usecase.IngestSampleInput{
		{
			VisitID:    &visitID,
			Rep:        " rep-1 ",
			RecordedAt: recordedAt,
			Latitude:   30.0444,
			Longitude:  31.2357,
			Accuracy:   8,
			Source:     "gps",
		},
	})
	require.NoError(t, err)
	require.Len(t, captured, 1)
	assert.Equal(t, "rep-1", captured[0].Rep)
	assert.Equal(t, entity.SourceGPS, captured[0].Source)
	assert.Equal(t, recordedAt, captured[0].RecordedAt)
	require.NotNil(t, captured[0].VisitID)
	assert.Equal(t, visitID, *captured[0].VisitID)
}

func TestLocationService_IngestSamples_DefaultsApplied(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()

	var captured []*entity.LocationSample
	fx.locationRepo.EXPECT().
		InsertSamples(ctx, mock.AnythingOfType("[]*entity.LocationSample")).
		Run(func(_ context.Context, samples []*entity.LocationSample) {
			captured = samples
		}).
		Return(nil)

	// No source, no timestamp: defaults to a gps fix stamped now.
	err := fx.service.IngestSamples(ctx, []*usecase.IngestSampleInput{
		{Rep: "rep-1", Latitude: 30.0444, Longitude: 31.2357},
	})
	require.NoError(t, err)
	require.Len(t, captured, 1)
	assert.Equal(t, entity.SourceGPS, captured[0].Source)
	assert.WithinDuration(t, time.Now(), captured[0].RecordedAt, time.Minute)
	assert.Nil(t, captured[0].VisitID)
}

func TestLocationService_IngestSamples_EmptyBatchIsNoop(t *testing.T) {
	fx := createTestLocationService(t)

	require.NoError(t, fx.service.IngestSamples(context.Background(), nil))
}

func TestLocationService_IngestSamples_MissingRep(t *testing.T) {
	fx := createTestLocationService(t)

	err := fx.service.IngestSamples(context.Background(), []*usecase.IngestSampleInput{
		{Rep: "  ", Latitude: 30.0444, Longitude: 31.2357},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLocationService_IngestSamples_UnknownSourceTag(t *testing.T) {
	fx := createTestLocationService(t)

	err := fx.service.IngestSamples(context.Background(), []*usecase.IngestSampleInput{
		{Rep: "rep-1", Source: "satellite"},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestLocationService_SamplesForVisit_Success(t *testing.T) {
	fx := createTestLocationService(t)

	ctx := context.Background()
	visitID := uuid.New()
	samples := []*entity.LocationSample{
		{ID: uuid.New(), VisitID: &visitID, Rep: "rep-1", RecordedAt: time.Now().Add(-time.Minute)},
		{ID: uuid.New(), VisitID: &visitID, Rep: "rep-1", RecordedAt: time.Now()},
	}

	fx.locationRepo.EXPECT().
		FindSamplesByVisit(ctx, visitID).
		Return(samples, nil)

	got, err := fx.service.SamplesForVisit(ctx, visitID)
	require.NoError(t, err)
	assert.Equal(t, samples, got)
}
