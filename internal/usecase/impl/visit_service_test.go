package impl

import (
	"context"
	"testing"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	mockRepo "fieldtrack/internal/mocks/repository"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// visitServiceFixtures holds all test dependencies for visit service tests.
type visitServiceFixtures struct {
	service   usecase.VisitUsecase
	visitRepo *mockRepo.MockVisitRepository
}

func createTestVisitService(t *testing.T) visitServiceFixtures {
	visitRepo := mockRepo.NewMockVisitRepository(t)
	service := NewVisitService(visitRepo)

	return visitServiceFixtures{
		service:   service,
		visitRepo: visitRepo,
	}
}

func TestVisitService_AddVisit_Success(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	input := &usecase.AddVisitInput{
		VisitDate:  time.Date(2026, 1, 6, 18, 30, 0, 0, time.UTC),
		ClientName: "  Dr. Hassan Clinic  ",
		Specialty:  "Pediatrics",
		Area:       "Nasr City",
		Rep:        "rep-1",
	}

	fx.visitRepo.EXPECT().
		CreateVisit(ctx, mock.AnythingOfType("*entity.Visit")).
		Return(nil)

	visit, err := fx.service.AddVisit(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, visit)
	assert.Equal(t, entity.VisitStatusPlanned, visit.Status)
	assert.Equal(t, "Dr. Hassan Clinic", visit.ClientName)
	assert.Equal(t, "rep-1", visit.Rep)
	// Calendar-day granularity: the time of day is dropped.
	assert.Equal(t, time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC), visit.VisitDate)
	assert.NotNil(t, visit.SampleTypes)
	assert.NotNil(t, visit.SampleQuantities)
}

func TestVisitService_AddVisit_MissingClientName(t *testing.T) {
	fx := createTestVisitService(t)

	visit, err := fx.service.AddVisit(context.Background(), &usecase.AddVisitInput{
		VisitDate: time.Now(),
	})
	require.Error(t, err)
	assert.Nil(t, visit)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVisitService_AddVisit_MissingDate(t *testing.T) {
	fx := createTestVisitService(t)

	visit, err := fx.service.AddVisit(context.Background(), &usecase.AddVisitInput{
		ClientName: "Dr. Hassan Clinic",
	})
	require.Error(t, err)
	assert.Nil(t, visit)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVisitService_AddVisit_NilInput(t *testing.T) {
	fx := createTestVisitService(t)

	visit, err := fx.service.AddVisit(context.Background(), nil)
	require.Error(t, err)
	assert.Nil(t, visit)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVisitService_ListVisits_Success(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	from := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)
	visits := []*entity.Visit{plannedVisit("rep-1"), plannedVisit("rep-1")}

	fx.visitRepo.EXPECT().
		FindVisitsByDateRange(ctx, from, to, "rep-1").
		Return(visits, nil)

	got, err := fx.service.ListVisits(ctx, from, to, "rep-1")
	require.NoError(t, err)
	assert.Equal(t, visits, got)
}

func TestVisitService_ListVisits_InvertedRange(t *testing.T) {
	fx := createTestVisitService(t)

	from := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	got, err := fx.service.ListVisits(context.Background(), from, to, "rep-1")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestVisitService_GetVisit_Success(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	visit := plannedVisit("rep-1")

	fx.visitRepo.EXPECT().
		FindVisitByID(ctx, visit.ID).
		Return(visit, nil)

	got, err := fx.service.GetVisit(ctx, visit.ID)
	require.NoError(t, err)
	assert.Equal(t, visit, got)
}

func TestVisitService_GetVisit_NotFound(t *testing.T) {
	fx := createTestVisitService(t)

	ctx := context.Background()
	id := uuid.New()

	fx.visitRepo.EXPECT().
		FindVisitByID(ctx, id).
		Return(nil, repository.ErrVisitNotFound)

	got, err := fx.service.GetVisit(ctx, id)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, domainerrors.ErrVisitNotFound))
}
