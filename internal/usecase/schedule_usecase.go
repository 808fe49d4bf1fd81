package usecase

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"
)

// ScheduleUsecase is the weekly schedule publisher.
type ScheduleUsecase interface {
	// PublishWeek snapshots the rep's visits for the Monday-to-Sunday week
	// containing weekOf and upserts it to the reporting store, fully
	// replacing any prior snapshot for that (rep, week_start).
	PublishWeek(ctx context.Context, rep string, weekOf time.Time) (*entity.WeeklySnapshot, error)

	// GetWeek reads back the published snapshot for the week containing weekOf.
	GetWeek(ctx context.Context, rep string, weekOf time.Time) (*entity.WeeklySnapshot, error)
}
