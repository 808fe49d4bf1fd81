package postgres

import (
	"context"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

// InsertSamples appends a batch of location samples.
func (repo *locationRepository) InsertSamples(ctx context.Context, samples []*entity.LocationSample) error {
	if len(samples) == 0 {
		return nil
	}

	sampleModels := make([]*model.LocationSampleModel, 0, len(samples))
	for _, sample := range samples {
		sampleModels = append(sampleModels, fromLocationSampleDomain(sample))
	}

	if err := repo.db.WithContext(ctx).Create(&sampleModels).Error; err != nil {
		return errors.Wrap(err, "failed to insert location samples")
	}

	for i, sampleM := range sampleModels {
		samples[i].ID = sampleM.ID
	}

	return nil
}

// FindSamplesByVisit retrieves all samples bound to a visit, ordered by
// recorded_at ascending.
func (repo *locationRepository) FindSamplesByVisit(ctx context.Context, visitID uuid.UUID) ([]*entity.LocationSample, error) {
	var sampleModels []*model.LocationSampleModel

	if err := repo.db.WithContext(ctx).
		Where("visit_id = ?", visitID).
		Order("recorded_at ASC").
		Find(&sampleModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find location samples by visit")
	}

	samples := make([]*entity.LocationSample, 0, len(sampleModels))
	for _, sampleM := range sampleModels {
		samples = append(samples, toLocationSampleDomain(sampleM))
	}

	return samples, nil
}

// --- Mapper Functions ---

// toLocationSampleDomain converts a GORM LocationSampleModel to a domain LocationSample entity.
func toLocationSampleDomain(data *model.LocationSampleModel) *entity.LocationSample {
	if data == nil {
		return nil
	}

	return &entity.LocationSample{
		ID:         data.ID,
		VisitID:    data.VisitID,
		Rep:        data.Rep,
		RecordedAt: data.RecordedAt,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Accuracy:   data.Accuracy,
		Speed:      data.Speed,
		Heading:    data.Heading,
		Source:     entity.LocationSourceTag(data.Source),
	}
}

// fromLocationSampleDomain converts a domain LocationSample entity to a GORM LocationSampleModel.
func fromLocationSampleDomain(data *entity.LocationSample) *model.LocationSampleModel {
	if data == nil {
		return nil
	}

	return &model.LocationSampleModel{
		ID:         data.ID,
		VisitID:    data.VisitID,
		Rep:        data.Rep,
		RecordedAt: data.RecordedAt,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		Accuracy:   data.Accuracy,
		Speed:      data.Speed,
		Heading:    data.Heading,
		Source:     string(data.Source),
	}
}
