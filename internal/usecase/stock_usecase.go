package usecase

import (
	"context"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/domain/repository"
)

// UpsertStockLineInput represents the input for setting one ledger row
type UpsertStockLineInput struct {
	SampleType string `json:"sample_type"`
	Quantity   int    `json:"quantity"`
}

// StockUsecase defines the interface for reading and seeding the stock ledger
type StockUsecase interface {
	// GetStockLines retrieves the rep's full ledger.
	GetStockLines(ctx context.Context, rep string) ([]*entity.SampleStockLine, error)

	// UpsertStockLine creates or replaces one ledger row for the rep.
	UpsertStockLine(ctx context.Context, rep string, input *UpsertStockLineInput) (*entity.SampleStockLine, error)
}

// StockReconciler is the sample reconciliation engine: it validates a batch of
// requested sample lines against the rep's ledger and applies the decrements.
// It runs against a transaction-bound StockRepository so that the whole batch
// commits or rolls back with the enclosing visit finalization.
type StockReconciler interface {
	// Reconcile validates every line first (case-insensitive type match,
	// available >= requested) and rejects the entire batch on the first
	// shortfall with a descriptive error; only then does it create missing
	// zero rows and decrement each line atomically. All-or-nothing.
	Reconcile(ctx context.Context, stockRepo repository.StockRepository, rep string, lines []SampleLine) error
}
