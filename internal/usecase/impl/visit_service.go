package impl

import (
	"context"
	"strings"
	"time"

	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type visitService struct {
	visitRepo repository.VisitRepository
}

// NewVisitService creates a new visit service instance
func NewVisitService(visitRepo repository.VisitRepository) usecase.VisitUsecase {
	return &visitService{
		visitRepo: visitRepo,
	}
}

// ListVisits retrieves visits in [from, to]; rep may be empty for all reps.
func (s *visitService) ListVisits(ctx context.Context, from, to time.Time, rep string) ([]*entity.Visit, error) {
	if to.Before(from) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("date range end precedes start")
	}

	visits, err := s.visitRepo.FindVisitsByDateRange(ctx, from, to, rep)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find visits by date range")
	}

	return visits, nil
}

// GetVisit retrieves a single visit by ID.
func (s *visitService) GetVisit(ctx context.Context, id uuid.UUID) (*entity.Visit, error) {
	visit, err := s.visitRepo.FindVisitByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrVisitNotFound) {
			return nil, domainerrors.ErrVisitNotFound
		}

		return nil, errors.Wrap(err, "failed to find visit by ID")
	}

	return visit, nil
}

// AddVisit creates a new planned visit from rep input.
func (s *visitService) AddVisit(ctx context.Context, input *usecase.AddVisitInput) (*entity.Visit, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("visit input is required")
	}
	if strings.TrimSpace(input.ClientName) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("client name is required")
	}
	if input.VisitDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("visit date is required")
	}

	now := time.Now()
	visit := &entity.Visit{
		ID:               uuid.New(),
		VisitDate:        input.VisitDate.UTC().Truncate(24 * time.Hour),
		Status:           entity.VisitStatusPlanned,
		ClientName:       strings.TrimSpace(input.ClientName),
		Specialty:        strings.TrimSpace(input.Specialty),
		Area:             strings.TrimSpace(input.Area),
		Notes:            input.Notes,
		Rep:              strings.TrimSpace(input.Rep),
		SampleTypes:      []string{},
		SampleQuantities: []int{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.visitRepo.CreateVisit(ctx, visit); err != nil {
		return nil, errors.Wrap(err, "failed to create visit")
	}

	return visit, nil
}
