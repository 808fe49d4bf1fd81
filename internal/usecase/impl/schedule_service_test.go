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

// scheduleServiceFixtures holds all test dependencies for schedule tests.
type scheduleServiceFixtures struct {
	service      usecase.ScheduleUsecase
	visitRepo    *mockRepo.MockVisitRepository
	snapshotRepo *mockRepo.MockSnapshotRepository
}

func createTestScheduleService(t *testing.T) scheduleServiceFixtures {
	visitRepo := mockRepo.NewMockVisitRepository(t)
	snapshotRepo := mockRepo.NewMockSnapshotRepository(t)

	service := NewScheduleService(visitRepo, snapshotRepo, newDiscardLogger())

	return scheduleServiceFixtures{
		service:      service,
		visitRepo:    visitRepo,
		snapshotRepo: snapshotRepo,
	}
}

func TestWeekWindow(t *testing.T) {
	tests := []struct {
		name      string
		input     time.Time
		wantStart time.Time
	}{
		{
			name:      "wednesday maps to preceding monday",
			input:     time.Date(2026, 1, 7, 14, 30, 0, 0, time.UTC),
			wantStart: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday is its own week start",
			input:     time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sunday belongs to the week that began six days earlier",
			input:     time.Date(2026, 1, 11, 23, 59, 0, 0, time.UTC),
			wantStart: time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "year boundary",
			input:     time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := weekWindow(tt.input)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantStart.AddDate(0, 0, 6), end)
		})
	}
}

func TestScheduleService_PublishWeek_Success(t *testing.T) {
	fx := createTestScheduleService(t)

	ctx := context.Background()
	rep := "rep-1"
	weekOf := time.Date(2026, 1, 7, 10, 0, 0, 0, time.UTC)
	weekStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	weekEnd := time.Date(2026, 1, 11, 0, 0, 0, 0, time.UTC)

	visit := plannedVisit(rep)
	visit.VisitDate = time.Date(2026, 1, 6, 0, 0, 0, 0, time.UTC)

	fx.visitRepo.EXPECT().
		FindVisitsByDateRange(ctx, weekStart, weekEnd, rep).
		Return([]*entity.Visit{visit}, nil)

	var captured *entity.WeeklySnapshot
	fx.snapshotRepo.EXPECT().
		UpsertSnapshot(ctx, mock.AnythingOfType("*entity.WeeklySnapshot")).
		Run(func(_ context.Context, snapshot *entity.WeeklySnapshot) {
			captured = snapshot
		}).
		Return(nil)

	snapshot, err := fx.service.PublishWeek(ctx, rep, weekOf)
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Equal(t, rep, snapshot.Rep)
	assert.Equal(t, weekStart, snapshot.WeekStart)
	assert.Equal(t, weekEnd, snapshot.WeekEnd)
	require.Len(t, snapshot.Visits, 1)
	assert.Equal(t, visit.ID, snapshot.Visits[0].VisitID)
	assert.Equal(t, visit.ClientName, snapshot.Visits[0].ClientName)
	assert.Equal(t, snapshot, captured)
}

func TestScheduleService_PublishWeek_EmptyWeek(t *testing.T) {
	fx := createTestScheduleService(t)

	ctx := context.Background()
	rep := "rep-1"
	weekOf := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)

	fx.visitRepo.EXPECT().
		FindVisitsByDateRange(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), rep).
		Return([]*entity.Visit{}, nil)

	fx.snapshotRepo.EXPECT().
		UpsertSnapshot(ctx, mock.AnythingOfType("*entity.WeeklySnapshot")).
		Return(nil)

	snapshot, err := fx.service.PublishWeek(ctx, rep, weekOf)
	require.NoError(t, err)
	assert.Empty(t, snapshot.Visits)
}

func TestScheduleService_PublishWeek_EmptyRep(t *testing.T) {
	fx := createTestScheduleService(t)

	snapshot, err := fx.service.PublishWeek(context.Background(), "", time.Now())
	require.Error(t, err)
	assert.Nil(t, snapshot)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestScheduleService_PublishWeek_ReplacesPriorSnapshot(t *testing.T) {
	fx := createTestScheduleService(t)

	ctx := context.Background()
	rep := "rep-1"
	weekOf := time.Date(2026, 1, 7, 0, 0, 0, 0, time.UTC)

	first := plannedVisit(rep)
	second := plannedVisit(rep)

	fx.visitRepo.EXPECT().
		FindVisitsByDateRange(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), rep).
		Return([]*entity.Visit{first}, nil).
		Once()
	fx.visitRepo.EXPECT().
		FindVisitsByDateRange(ctx, mock.AnythingOfType("time.Time"), mock.AnythingOfType("time.Time"), rep).
		Return([]*entity.Visit{first, second}, nil).
		Once()

	var snapshots []*entity.WeeklySnapshot
	fx.snapshotRepo.EXPECT().
		UpsertSnapshot(ctx, mock.AnythingOfType("*entity.WeeklySnapshot")).
		Run(func(_ context.Context, snapshot *entity.WeeklySnapshot) {
			snapshots = append(snapshots, snapshot)
		}).
		Return(nil).
		Times(2)

	_, err := fx.service.PublishWeek(ctx, rep, weekOf)
	require.NoError(t, err)
	_, err = fx.service.PublishWeek(ctx, rep, weekOf)
	require.NoError(t, err)

	require.Len(t, snapshots, 2)
	assert.Len(t, snapshots[0].Visits, 1)
	assert.Len(t, snapshots[1].Visits, 2)
	assert.Equal(t, snapshots[0].WeekStart, snapshots[1].WeekStart)
}

func TestScheduleService_GetWeek_Success(t *testing.T) {
	fx := createTestScheduleService(t)

	ctx := context.Background()
	rep := "rep-1"
	weekOf := time.Date(2026, 1, 9, 12, 0, 0, 0, time.UTC)
	weekStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	stored := &entity.WeeklySnapshot{
		ID:        uuid.New(),
		Rep:       rep,
		WeekStart: weekStart,
		WeekEnd:   weekStart.AddDate(0, 0, 6),
	}

	fx.snapshotRepo.EXPECT().
		FindSnapshot(ctx, rep, weekStart).
		Return(stored, nil)

	snapshot, err := fx.service.GetWeek(ctx, rep, weekOf)
	require.NoError(t, err)
	assert.Equal(t, stored, snapshot)
}

func TestScheduleService_GetWeek_NotFound(t *testing.T) {
	fx := createTestScheduleService(t)

	ctx := context.Background()
	weekStart := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)

	fx.snapshotRepo.EXPECT().
		FindSnapshot(ctx, "rep-1", weekStart).
		Return(nil, repository.ErrSnapshotNotFound)

	snapshot, err := fx.service.GetWeek(ctx, "rep-1", weekStart)
	require.Error(t, err)
	assert.Nil(t, snapshot)
	assert.True(t, errors.Is(err, domainerrors.ErrSnapshotNotFound))
}
