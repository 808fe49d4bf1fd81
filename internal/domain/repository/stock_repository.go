package repository

import (
	"context"

	"fieldtrack/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for stock persistence.
var (
	// ErrStockLineNotFound is returned when a stock line is not found.
	ErrStockLineNotFound = errors.New("stock line not found")
	// ErrInsufficientStock is returned when a conditional decrement matched no
	// row, meaning the remaining quantity was below the requested amount.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// StockRepository defines the interface for the per-rep sample stock ledger.
// Sample types match case-insensitively at this boundary.
type StockRepository interface {
	// FindStockLinesByRep retrieves the rep's full stock ledger.
	FindStockLinesByRep(ctx context.Context, rep string) ([]*entity.SampleStockLine, error)

	// FindStockLineByRepAndType retrieves one ledger row by case-insensitive type.
	// Returns ErrStockLineNotFound when no row exists.
	FindStockLineByRepAndType(ctx context.Context, rep, sampleType string) (*entity.SampleStockLine, error)

	// UpsertStockLine creates or replaces the quantity of one ledger row.
	UpsertStockLine(ctx context.Context, line *entity.SampleStockLine) error

	// EnsureStockLine creates a zero-quantity row for rep+type when absent.
	EnsureStockLine(ctx context.Context, rep, sampleType string) error

	// DecrementStock atomically subtracts qty from the row, guarded so the
	// quantity never goes negative: the update only matches when the remaining
	// quantity is at least qty. Returns ErrInsufficientStock when it matched
	// no row.
	DecrementStock(ctx context.Context, rep, sampleType string, qty int) error
}
