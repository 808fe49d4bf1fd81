package postgres

import (
	"context"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// stockRepository implements the repository.StockRepository interface.
// Sample type matching is case-insensitive at every query.
type stockRepository struct {
	db *gorm.DB
}

// NewStockRepository is the constructor for stockRepository.
func NewStockRepository(db *gorm.DB) repository.StockRepository {
	return &stockRepository{
		db: db,
	}
}

// FindStockLinesByRep retrieves the rep's full stock ledger.
func (repo *stockRepository) FindStockLinesByRep(ctx context.Context, rep string) ([]*entity.SampleStockLine, error) {
	var lineModels []*model.SampleStockModel

	if err := repo.db.WithContext(ctx).
		Where("rep = ?", rep).
		Order("sample_type ASC").
		Find(&lineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find stock lines by rep")
	}

	lines := make([]*entity.SampleStockLine, 0, len(lineModels))
	for _, lineM := range lineModels {
		lines = append(lines, toStockLineDomain(lineM))
	}

	return lines, nil
}

// FindStockLineByRepAndType retrieves one ledger row by case-insensitive type.
func (repo *stockRepository) FindStockLineByRepAndType(ctx context.Context, rep, sampleType string) (*entity.SampleStockLine, error) {
	var lineM model.SampleStockModel

	if err := repo.db.WithContext(ctx).
		Where("rep = ? AND lower(sample_type) = lower(?)", rep, sampleType).
		First(&lineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStockLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find stock line")
	}

	return toStockLineDomain(&lineM), nil
}

// UpsertStockLine creates or replaces the quantity of one ledger row.
func (repo *stockRepository) UpsertStockLine(ctx context.Context, line *entity.SampleStockLine) error {
	lineM := fromStockLineDomain(line)

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "rep"}, {Name: "sample_type"}},
			DoUpdates: clause.AssignmentColumns([]string{"quantity", "updated_at"}),
		}).
		Create(lineM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert stock line")
	}

	line.ID = lineM.ID
	line.CreatedAt = lineM.CreatedAt
	line.UpdatedAt = lineM.UpdatedAt

	return nil
}

// EnsureStockLine creates a zero-quantity row for rep+type when absent.
// Existing rows, including ones differing only in case, are left untouched.
func (repo *stockRepository) EnsureStockLine(ctx context.Context, rep, sampleType string) error {
	var count int64
	if err := repo.db.WithContext(ctx).
		Model(&model.SampleStockModel{}).
		Where("rep = ? AND lower(sample_type) = lower(?)", rep, sampleType).
		Count(&count).Error; err != nil {
		return errors.Wrap(err, "failed to check stock line existence")
	}
	if count > 0 {
		return nil
	}

	lineM := &model.SampleStockModel{
		Rep:        rep,
		SampleType: sampleType,
		Quantity:   0,
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(lineM).Error; err != nil {
		return errors.Wrap(err, "failed to ensure stock line")
	}

	return nil
}

// DecrementStock atomically subtracts qty from the row. The quantity guard is
// part of the UPDATE itself, so the stock can never go negative even under
// concurrent finalizations.
func (repo *stockRepository) DecrementStock(ctx context.Context, rep, sampleType string, qty int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SampleStockModel{}).
		Where("rep = ? AND lower(sample_type) = lower(?) AND quantity >= ?", rep, sampleType, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to decrement stock")
	}

	if result.RowsAffected == 0 {
		return repository.ErrInsufficientStock
	}

	return nil
}

// --- Mapper Functions ---

// toStockLineDomain converts a GORM SampleStockModel to a domain SampleStockLine entity.
func toStockLineDomain(data *model.SampleStockModel) *entity.SampleStockLine {
	if data == nil {
		return nil
	}

	return &entity.SampleStockLine{
		ID:         data.ID,
		Rep:        data.Rep,
		SampleType: data.SampleType,
		Quantity:   data.Quantity,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// fromStockLineDomain converts a domain SampleStockLine entity to a GORM SampleStockModel.
func fromStockLineDomain(data *entity.SampleStockLine) *model.SampleStockModel {
	if data == nil {
		return nil
	}

	return &model.SampleStockModel{
		ID:         data.ID,
		Rep:        data.Rep,
		SampleType: data.SampleType,
		Quantity:   data.Quantity,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
