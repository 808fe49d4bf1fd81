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

type stockService struct {
	stockRepo repository.StockRepository
}

// NewStockService creates a new stock ledger service instance
func NewStockService(stockRepo repository.StockRepository) usecase.StockUsecase {
	return &stockService{
		stockRepo: stockRepo,
	}
}

// GetStockLines retrieves the rep's full ledger.
func (s *stockService) GetStockLines(ctx context.Context, rep string) ([]*entity.SampleStockLine, error) {
	lines, err := s.stockRepo.FindStockLinesByRep(ctx, rep)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find stock lines by rep")
	}

	return lines, nil
}

// UpsertStockLine creates or replaces one ledger row for the rep.
func (s *stockService) UpsertStockLine(ctx context.Context, rep string, input *usecase.UpsertStockLineInput) (*entity.SampleStockLine, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("stock line input is required")
	}
	if strings.TrimSpace(input.SampleType) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("sample type is required")
	}
	if input.Quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantity must not be negative")
	}

	now := time.Now()
	line := &entity.SampleStockLine{
		ID:         uuid.New(),
		Rep:        rep,
		SampleType: strings.TrimSpace(input.SampleType),
		Quantity:   input.Quantity,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.stockRepo.UpsertStockLine(ctx, line); err != nil {
		return nil, errors.Wrap(err, "failed to upsert stock line")
	}

	return line, nil
}
