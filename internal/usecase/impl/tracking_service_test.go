package impl

import (
	"context"
	"testing"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/service"
	mockRepo "fieldtrack/internal/mocks/repository"
	mockService "fieldtrack/internal/mocks/service"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// trackingServiceFixtures holds all test dependencies for tracking tests.
type trackingServiceFixtures struct {
	service      usecase.TrackingUsecase
	source       *mockService.MockLocationSource
	locationRepo *mockRepo.MockLocationRepository
}

func createTestTrackingService(t *testing.T, interval time.Duration, distanceMeters float64) trackingServiceFixtures {
	source := mockService.NewMockLocationSource(t)
	locationRepo := mockRepo.NewMockLocationRepository(t)

	service := NewTrackingService(source, locationRepo, newTestConfig(interval, distanceMeters), newDiscardLogger())

	return trackingServiceFixtures{
		service:      service,
		source:       source,
		locationRepo: locationRepo,
	}
}

// expectInserts records every persisted sample on the returned channel.
func expectInserts(fx trackingServiceFixtures, result error) <-chan *entity.LocationSample {
	inserted := make(chan *entity.LocationSample, 16)
	fx.locationRepo.EXPECT().
		InsertSamples(mock.Anything, mock.AnythingOfType("[]*entity.LocationSample")).
		Run(func(_ context.Context, samples []*entity.LocationSample) {
			for _, sample := range samples {
				inserted <- sample
			}
		}).
		Return(result)

	return inserted
}

func waitForSample(t *testing.T, inserted <-chan *entity.LocationSample) *entity.LocationSample {
	t.Helper()

	select {
	case sample := <-inserted:
		return sample
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a persisted sample")

		return nil
	}
}

func TestTrackingService_Start_ReturnsSession(t *testing.T) {
	fx := createTestTrackingService(t, 15*time.Second, 20)

	ctx := context.Background()
	fixes := make(chan service.Fix)

	fx.source.EXPECT().
		Start(ctx, "rep-1").
		Return(&service.FixStream{Fixes: fixes, Background: true}, nil)
	fx.source.EXPECT().Stop().Return(nil)

	session, err := fx.service.Start(ctx, "rep-1")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "rep-1", session.Rep)
	assert.True(t, session.Background)
	assert.Nil(t, session.ActiveVisitID)

	require.NoError(t, fx.service.Stop())
	assert.Nil(t, fx.service.Session())
}

func TestTrackingService_Start_PermissionDenied(t *testing.T) {
	fx := createTestTrackingService(t, 15*time.Second, 20)

	ctx := context.Background()

	fx.source.EXPECT().
		Start(ctx, "rep-1").
		Return(nil, service.ErrPermissionDenied)

	session, err := fx.service.Start(ctx, "rep-1")
	require.Error(t, err)
	assert.Nil(t, session)
	assert.True(t, errors.Is(err, domainerrors.ErrPermissionDenied))
}

func TestTrackingService_Stop_IdempotentWhenNotRunning(t *testing.T) {
	fx := createTestTrackingService(t, 15*time.Second, 20)

	require.NoError(t, fx.service.Stop())
	require.NoError(t, fx.service.Stop())
}

func TestTrackingService_Start_WhileRunningRestartsSingleStream(t *testing.T) {
	fx := createTestTrackingService(t, 15*time.Second, 20)

	ctx := context.Background()
	first := make(chan service.Fix)
	second := make(chan service.Fix)

	fx.source.EXPECT().
		Start(ctx, "rep-1").
		Return(&service.FixStream{Fixes: first, Background: true}, nil).
		Once()
	fx.source.EXPECT().
		Start(ctx, "rep-1").
		Return(&service.FixStream{Fixes: second, Background: true}, nil).
		Once()
	fx.source.EXPECT().Stop().Return(nil).Times(2)

	_, err := fx.service.Start(ctx, "rep-1")
	require.NoError(t, err)

	// The second start tears the first stream down before opening its own.
	session, err := fx.service.Start(ctx, "rep-1")
	require.NoError(t, err)
	require.NotNil(t, session)

	require.NoError(t, fx.service.Stop())
}

func TestTrackingService_Run_GatesOnIntervalAndDistance(t *testing.T) {
	fx := createTestTrackingService(t, time.Hour, 1000)

	ctx := context.Background()
	fixes := make(chan service.Fix)
	inserted := expectInserts(fx, nil)

	fx.source.EXPECT().
		Start(ctx, "rep-1").
		Return(&service.FixStream{Fixes: fixes, Background: true}, nil)
	fx.source.EXPECT().Stop().Return(nil)

	_, err := fx.service.Start(ctx, "rep-1")
	require.NoError(t, err)

	base := time.Now()

	// First fix always records.
	fixes <- service.Fix{Latitude: 30.0444, Longitude: 31.2357, RecordedAt: base, Source: entity.SourceGPS}
	waitForSample(t, inserted)

	// Barely moved, interval not elapsed: gated out.
	fixes <- service.Fix{Latitude: 30.0444, Longitude: 31.2357, RecordedAt: base.Add(time.Second), Source: entity.SourceGPS}

	// Moved far beyond the threshold: records despite the interval.
	fixes <- service.Fix{Latitude: 30.0444, Longitude: 31.3357, RecordedAt: base.Add(2 * time.Second), Source: entity.SourceGPS}
	sample := waitForSample(t, inserted)
	assert.InDelta(t, 31.3357, sample.Longitude, 1e-9)

	require.NoError(t, fx.service.Stop())

	// The gated fix must not have been written.
	assert.Empty(t, inserted)
}

func TestTrackingService_Run_IntervalElapsedRecordsWithoutMovement(t *testing.T) {
	fx := createTestTrackingService(t, 15*time.Second, 1000)

	ctx := context.Background()
	fixes := make(chan service.Fix)
	inserted := expectInserts(fx, nil)

	fx.source.EXPECT().
		Start(ctx, "rep-1").
		Return(&service.FixStream{Fixes: fixes, Background: true}, nil)
	fx.source.EXPECT().Stop().Return(nil)

	_, err := fx.service.Start(ctx, "rep-1")
	require.NoError(t, err)

	base := time.Now()

	fixes <- service.Fix{Latitude: 30.0444, Longitude: 31.2357, RecordedAt: base, Source: entity.SourceGPS}
	waitForSample(t, inserted)

	// Same position, but the cadence elapsed.
	fixes <- service.Fix{Latitude: 30.0444, Longitude: 31.2357, RecordedAt: base.Add(16 * time.Second), Source: entity.SourceGPS}
	waitForSample(t, inserted)

	require.NoError(t, fx.service.Stop())
}

func TestTrackingService_Run_FailedWriteDropsSampleAndContinues(t *testing.T) {
	fx := createTestTrackingService(t, time.Second, 20)

	ctx := context.Background()
	fixes := make(chan service.Fix)

	inserted := make(chan *entity.LocationSample, 16)
	fx.locationRepo.EXPECT().
		InsertSamples(mock.Anything, mock.AnythingOfType("[]*entity.LocationSample")).
		Run(func(_ context.Context, samples []*entity.LocationSample) {
			inserted <- samples[0]
		}).
		Return(errors.New("connection reset")).
		Once()
	fx.locationRepo.EXPECT().
		InsertSamples(mock.Anything, mock.AnythingOfType("[]*entity.LocationSample")).
		Run(func(_ context.Context, samples []*entity.LocationSample) {
			inserted <- samples[0]
		}).
		Return(nil).
		Once()

	fx.source.EXPECT().
		Start(ctx, "rep-1").
		Return(&service.FixStream{Fixes: fixes, Background: true}, nil)
	fx.source.EXPECT().Stop().Return(nil)

	_, err := fx.service.Start(ctx, "rep-1")
	require.NoError(t, err)

	base := time.Now()

	fixes <- service.Fix{Latitude: 30.0444, Longitude: 31.2357, RecordedAt: base, Source: entity.SourceGPS}
	waitForSample(t, inserted)

	// The failed write advanced the gate; the stream keeps flowing.
	fixes <- service.Fix{Latitude: 30.0444, Longitude: 31.2357, RecordedAt: base.Add(2 * time.Second), Source: entity.SourceGPS}
	waitForSample(t, inserted)

	require.NoError(t, fx.service.Stop())
}

func TestTrackingService_BindVisit_TagsSubsequentSamples(t *testing.T) {
	fx := createTestTrackingService(t, time.Second, 20)

	ctx := context.Background()
	fixes := make(chan service.Fix)
	inserted := expectInserts(fx, nil)

	fx.source.EXPECT().
		Start(ctx, "rep-1").
		Return(&service.FixStream{Fixes: fixes, Background: true}, nil)
	fx.source.EXPECT().Stop().Return(nil)

	_, err := fx.service.Start(ctx, "rep-1")
	require.NoError(t, err)

	visitID := uuid.New()
	fx.service.BindVisit(&visitID)

	base := time.Now()
	fixes <- service.Fix{Latitude: 30.0444, Longitude: 31.2357, RecordedAt: base, Source: entity.SourceGPS}

	sample := waitForSample(t, inserted)
	require.NotNil(t, sample.VisitID)
	assert.Equal(t, visitID, *sample.VisitID)
	assert.Equal(t, "rep-1", sample.Rep)

	// Clearing the binding untags the next recorded sample.
	fx.service.BindVisit(nil)
	fixes <- service.Fix{Latitude: 30.0444, Longitude: 31.2357, RecordedAt: base.Add(2 * time.Second), Source: entity.SourceGPS}

	sample = waitForSample(t, inserted)
	assert.Nil(t, sample.VisitID)

	require.NoError(t, fx.service.Stop())
}

func TestTrackingService_BindVisit_NoopWithoutSession(t *testing.T) {
	fx := createTestTrackingService(t, time.Second, 20)

	visitID := uuid.New()
	fx.service.BindVisit(&visitID)

	assert.Nil(t, fx.service.Session())
}

func TestTrackingService_Session_ReturnsIndependentCopy(t *testing.T) {
	fx := createTestTrackingService(t, time.Second, 20)

	ctx := context.Background()
	fixes := make(chan service.Fix)

	fx.source.EXPECT().
		Start(ctx, "rep-1").
		Return(&service.FixStream{Fixes: fixes, Background: true}, nil)
	fx.source.EXPECT().Stop().Return(nil)

	_, err := fx.service.Start(ctx, "rep-1")
	require.NoError(t, err)

	visitID := uuid.New()
	fx.service.BindVisit(&visitID)

	first := fx.service.Session()
	require.NotNil(t, first)
	require.NotNil(t, first.ActiveVisitID)

	// Mutating the copy must not leak into the live session.
	other := uuid.New()
	*first.ActiveVisitID = other

	second := fx.service.Session()
	require.NotNil(t, second)
	require.NotNil(t, second.ActiveVisitID)
	assert.Equal(t, visitID, *second.ActiveVisitID)

	require.NoError(t, fx.service.Stop())
}
