package impl

import (
	"context"
	"log/slog"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// scheduleService is the weekly schedule publisher.
type scheduleService struct {
	visitRepo    repository.VisitRepository
	snapshotRepo repository.SnapshotRepository
	logger       *slog.Logger
}

// NewScheduleService creates a new weekly schedule publisher instance
func NewScheduleService(
	visitRepo repository.VisitRepository,
	snapshotRepo repository.SnapshotRepository,
	logger *slog.Logger,
) usecase.ScheduleUsecase {
	return &scheduleService{
		visitRepo:    visitRepo,
		snapshotRepo: snapshotRepo,
		logger:       logger,
	}
}

// PublishWeek snapshots the rep's visits for the week containing weekOf and
// upserts it to the reporting store. Overwrite semantics: re-sending the same
// week replaces the prior snapshot entirely.
func (s *scheduleService) PublishWeek(ctx context.Context, rep string, weekOf time.Time) (*entity.WeeklySnapshot, error) {
	if rep == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("rep is required")
	}

	weekStart, weekEnd := weekWindow(weekOf)

	visits, err := s.visitRepo.FindVisitsByDateRange(ctx, weekStart, weekEnd, rep)
	if err != nil {
		return nil, errors.Wrap(err, "failed to collect week's visits")
	}

	snapshot := &entity.WeeklySnapshot{
		ID:          uuid.New(),
		Rep:         rep,
		WeekStart:   weekStart,
		WeekEnd:     weekEnd,
		Visits:      make([]entity.SnapshotVisit, 0, len(visits)),
		PublishedAt: time.Now(),
	}
	for _, visit := range visits {
		snapshot.Visits = append(snapshot.Visits, entity.SnapshotVisit{
			VisitID:    visit.ID,
			VisitDate:  visit.VisitDate,
			Status:     visit.Status,
			ClientName: visit.ClientName,
			Specialty:  visit.Specialty,
			Area:       visit.Area,
		})
	}

	if err := s.snapshotRepo.UpsertSnapshot(ctx, snapshot); err != nil {
		return nil, errors.Wrap(err, "failed to upsert weekly snapshot")
	}

	s.logger.Info("weekly snapshot published",
		slog.String("rep", rep),
		slog.Time("week_start", weekStart),
		slog.Int("visits", len(snapshot.Visits)),
	)

	return snapshot, nil
}

// GetWeek reads back the published snapshot for the week containing weekOf.
func (s *scheduleService) GetWeek(ctx context.Context, rep string, weekOf time.Time) (*entity.WeeklySnapshot, error) {
	weekStart, _ := weekWindow(weekOf)

	snapshot, err := s.snapshotRepo.FindSnapshot(ctx, rep, weekStart)
	if err != nil {
		if errors.Is(err, repository.ErrSnapshotNotFound) {
			return nil, domainerrors.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to find weekly snapshot")
	}

	return snapshot, nil
}

// weekWindow returns the Monday and Sunday (midnight UTC) of the week
// containing t.
func weekWindow(t time.Time) (time.Time, time.Time) {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)

	// time.Weekday counts from Sunday; shift so Monday is day zero.
	offset := (int(day.Weekday()) + 6) % 7
	weekStart := day.AddDate(0, 0, -offset)
	weekEnd := weekStart.AddDate(0, 0, 6)

	return weekStart, weekEnd
}
