package postgres

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// visitRepository implements the repository.VisitRepository interface.
type visitRepository struct {
	db *gorm.DB
}

// NewVisitRepository is the constructor for visitRepository.
func NewVisitRepository(db *gorm.DB) repository.VisitRepository {
	return &visitRepository{
		db: db,
	}
}

// CreateVisit persists a new planned visit.
func (repo *visitRepository) CreateVisit(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	if err := repo.db.WithContext(ctx).Create(visitM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required visit information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create visit")
	}

	// Update the entity with generated values
	visit.ID = visitM.ID
	visit.CreatedAt = visitM.CreatedAt
	visit.UpdatedAt = visitM.UpdatedAt

	return nil
}

// FindVisitByID retrieves a visit by its unique ID.
func (repo *visitRepository) FindVisitByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	var visitM model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit by ID")
	}

	return toVisitDomain(&visitM), nil
}

// FindVisitsByDateRange retrieves visits whose visit_date falls in [from, to].
// An empty rep returns visits for all reps.
func (repo *visitRepository) FindVisitsByDateRange(ctx context.Context, from, to time.Time, rep string) ([]*entity.Visit, error) {
	var visitModels []*model.VisitModel

	query := repo.db.WithContext(ctx).
		Where("visit_date BETWEEN ? AND ?", from, to)
	if rep != "" {
		query = query.Where("rep = ?", rep)
	}

	if err := query.
		Order("visit_date ASC, created_at ASC").
		Find(&visitModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find visits by date range")
	}

	visits := make([]*entity.Visit, 0, len(visitModels))
	for _, visitM := range visitModels {
		visits = append(visits, toVisitDomain(visitM))
	}

	return visits, nil
}

// FindEnRouteVisitByRep retrieves the rep's current en_route visit, if any.
func (repo *visitRepository) FindEnRouteVisitByRep(ctx context.Context, rep string) (*entity.Visit, error) {
	var visitM model.VisitModel

	if err := repo.db.WithContext(ctx).
		Where("rep = ? AND status = ?", rep, string(entity.VisitStatusEnRoute)).
		First(&visitM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find en_route visit")
	}

	return toVisitDomain(&visitM), nil
}

// CountVisitsOnDay counts visits scheduled for the rep on the given calendar day.
// Unclaimed visits (empty rep) also count: the rep may claim them during the journey.
func (repo *visitRepository) CountVisitsOnDay(ctx context.Context, rep string, day time.Time) (int64, error) {
	var count int64

	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	if err := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("visit_date >= ? AND visit_date < ?", dayStart, dayEnd).
		Where("rep = ? OR rep = ''", rep).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count visits on day")
	}

	return count, nil
}

// UpdateVisitStatus moves a visit to the given status, guarded by the expected
// current status. The WHERE guard makes concurrent double-transitions lose:
// whichever update commits second matches zero rows.
func (repo *visitRepository) UpdateVisitStatus(ctx context.Context, id uuid.UUID, from, to entity.VisitStatus, rep string) error {
	updates := map[string]any{
		"status": string(to),
	}
	if rep != "" {
		updates["rep"] = rep
	}

	result := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("id = ? AND status = ?", id, string(from)).
		Updates(updates)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update visit status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVisitConflict
	}

	return nil
}

// FinalizeVisit writes the terminal state of a finished visit: status, rep
// claim, note type, notes and the parallel sample arrays.
func (repo *visitRepository) FinalizeVisit(ctx context.Context, visit *entity.Visit) error {
	visitM := fromVisitDomain(visit)

	result := repo.db.WithContext(ctx).
		Model(&model.VisitModel{}).
		Where("id = ?", visit.ID).
		Updates(map[string]any{
			"status":            visitM.Status,
			"rep":               visitM.Rep,
			"note_type":         visitM.NoteType,
			"notes":             visitM.Notes,
			"sample_types":      visitM.SampleTypes,
			"sample_quantities": visitM.SampleQuantities,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to finalize visit")
	}

	if result.RowsAffected == 0 {
		return repository.ErrVisitNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toVisitDomain converts a GORM VisitModel to a domain Visit entity.
func toVisitDomain(data *model.VisitModel) *entity.Visit {
	if data == nil {
		return nil
	}

	var noteType *entity.NoteType
	if data.NoteType != nil {
		nt := entity.NoteType(*data.NoteType)
		noteType = &nt
	}

	return &entity.Visit{
		ID:               data.ID,
		VisitDate:        data.VisitDate,
		Status:           entity.VisitStatus(data.Status),
		ClientName:       data.ClientName,
		Specialty:        data.Specialty,
		Area:             data.Area,
		Notes:            data.Notes,
		Rep:              data.Rep,
		NoteType:         noteType,
		SampleTypes:      data.SampleTypes,
		SampleQuantities: data.SampleQuantities,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

// fromVisitDomain converts a domain Visit entity to a GORM VisitModel.
func fromVisitDomain(data *entity.Visit) *model.VisitModel {
	if data == nil {
		return nil
	}

	var noteType *string
	if data.NoteType != nil {
		nt := string(*data.NoteType)
		noteType = &nt
	}

	return &model.VisitModel{
		ID:               data.ID,
		VisitDate:        data.VisitDate,
		Status:           string(data.Status),
		ClientName:       data.ClientName,
		Specialty:        data.Specialty,
		Area:             data.Area,
		Notes:            data.Notes,
		Rep:              data.Rep,
		NoteType:         noteType,
		SampleTypes:      data.SampleTypes,
		SampleQuantities: data.SampleQuantities,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
