package postgres

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// snapshotRepository implements the repository.SnapshotRepository interface.
type snapshotRepository struct {
	db *gorm.DB
}

// NewSnapshotRepository is the constructor for snapshotRepository.
func NewSnapshotRepository(db *gorm.DB) repository.SnapshotRepository {
	return &snapshotRepository{
		db: db,
	}
}

// UpsertSnapshot inserts or fully replaces the snapshot keyed by (rep, week_start).
func (repo *snapshotRepository) UpsertSnapshot(ctx context.Context, snapshot *entity.WeeklySnapshot) error {
	snapshotM := fromSnapshotDomain(snapshot)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rep"}, {Name: "week_start"}},
			DoUpdates: clause.AssignmentColumns([]string{"week_end", "visits", "published_at", "updated_at"}),
		}).
		Create(snapshotM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert weekly snapshot")
	}

	snapshot.ID = snapshotM.ID

	return nil
}

// FindSnapshot retrieves the snapshot for the rep and week start day.
func (repo *snapshotRepository) FindSnapshot(ctx context.Context, rep string, weekStart time.Time) (*entity.WeeklySnapshot, error) {
	var snapshotM model.WeeklySnapshotModel

	if err := repo.db.WithContext(ctx).
		Where("rep = ? AND week_start = ?", rep, weekStart).
		First(&snapshotM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrap(err, "failed to find weekly snapshot")
	}

	return toSnapshotDomain(&snapshotM), nil
}

// --- Mapper Functions ---

// toSnapshotDomain converts a GORM WeeklySnapshotModel to a domain WeeklySnapshot entity.
func toSnapshotDomain(data *model.WeeklySnapshotModel) *entity.WeeklySnapshot {
	if data == nil {
		return nil
	}

	visits := make([]entity.SnapshotVisit, 0, len(data.Visits))
	for _, row := range data.Visits {
		visits = append(visits, entity.SnapshotVisit{
			VisitID:    row.VisitID,
			VisitDate:  row.VisitDate,
			Status:     entity.VisitStatus(row.Status),
			ClientName: row.ClientName,
			Specialty:  row.Specialty,
			Area:       row.Area,
		})
	}

	return &entity.WeeklySnapshot{
		ID:          data.ID,
		Rep:         data.Rep,
		WeekStart:   data.WeekStart,
		WeekEnd:     data.WeekEnd,
		Visits:      visits,
		PublishedAt: data.PublishedAt,
	}
}

// fromSnapshotDomain converts a domain WeeklySnapshot entity to a GORM WeeklySnapshotModel.
func fromSnapshotDomain(data *entity.WeeklySnapshot) *model.WeeklySnapshotModel {
	if data == nil {
		return nil
	}

	rows := make([]model.SnapshotVisitRow, 0, len(data.Visits))
	for _, visit := range data.Visits {
		rows = append(rows, model.SnapshotVisitRow{
			VisitID:    visit.VisitID,
			VisitDate:  visit.VisitDate,
			Status:     string(visit.Status),
			ClientName: visit.ClientName,
			Specialty:  visit.Specialty,
			Area:       visit.Area,
		})
	}

	return &model.WeeklySnapshotModel{
		ID:          data.ID,
		Rep:         data.Rep,
		WeekStart:   data.WeekStart,
		WeekEnd:     data.WeekEnd,
		Visits:      rows,
		PublishedAt: data.PublishedAt,
	}
}
