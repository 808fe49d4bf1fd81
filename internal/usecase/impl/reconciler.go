package impl

import (
	"context"
	"fmt"
	"strings"

	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/usecase"

	"github.com/pkg/errors"
)

// stockReconciler implements the sample reconciliation engine. It is
// stateless; the caller supplies a transaction-bound StockRepository so the
// batch commits or rolls back with the enclosing visit finalization.
type stockReconciler struct{}

// NewStockReconciler creates a new sample reconciliation engine
func NewStockReconciler() usecase.StockReconciler {
	return &stockReconciler{}
}

// Reconcile validates the whole batch before touching a single row, then
// applies each decrement through the repository's conditional update. A
// shortfall anywhere rejects the entire batch; no partial commits.
func (r *stockReconciler) Reconcile(ctx context.Context, stockRepo repository.StockRepository, rep string, lines []usecase.SampleLine) error {
	if len(lines) == 0 {
		return nil
	}

	for _, line := range lines {
		if strings.TrimSpace(line.SampleType) == "" {
			return domainerrors.ErrValidationFailed.WithDetails("sample type must not be empty")
		}
		if line.Quantity < 0 {
			return domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("sample %q: quantity must not be negative", line.SampleType))
		}
	}

	ledger, err := stockRepo.FindStockLinesByRep(ctx, rep)
	if err != nil {
		return errors.Wrap(err, "failed to load stock ledger")
	}

	available := make(map[string]int, len(ledger))
	for _, row := range ledger {
		available[strings.ToLower(row.SampleType)] = row.Quantity
	}

	// Requested quantities accumulate per type so duplicate lines of the same
	// sample cannot slip past a single-line check.
	requested := make(map[string]int, len(lines))
	for _, line := range lines {
		key := strings.ToLower(strings.TrimSpace(line.SampleType))
		requested[key] += line.Quantity

		if requested[key] > available[key] {
			return domainerrors.ErrStockShortfall.WithDetails(fmt.Sprintf(
				"%s: available %d, requested %d", line.SampleType, available[key], requested[key]))
		}
	}

	for _, line := range lines {
		if line.Quantity == 0 {
			continue
		}

		sampleType := strings.TrimSpace(line.SampleType)
		if err := stockRepo.EnsureStockLine(ctx, rep, sampleType); err != nil {
			return errors.Wrap(err, "failed to ensure stock line")
		}

		if err := stockRepo.DecrementStock(ctx, rep, sampleType, line.Quantity); err != nil {
			if errors.Is(err, repository.ErrInsufficientStock) {
				// A concurrent finalization drained the row between the
				// validation read and the guarded decrement.
				return domainerrors.ErrStockShortfall.WithDetails(fmt.Sprintf(
					"%s: stock changed concurrently, requested %d no longer available",
					line.SampleType, line.Quantity))
			}

			return errors.Wrap(err, "failed to decrement stock")
		}
	}

	return nil
}
