// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Domain-specific errors for visit persistence.
var (
	// ErrVisitNotFound is returned when a visit is not found.
	ErrVisitNotFound = errors.New("visit not found")
	// ErrVisitConflict is returned when a conditional status update matched no row,
	// meaning another writer changed the visit first.
	ErrVisitConflict = errors.New("visit was modified concurrently")
)

// VisitRepository defines the interface for visit-related database operations.
type VisitRepository interface {
	// CreateVisit persists a new planned visit.
	CreateVisit(ctx context.Context, visit *entity.Visit) error

	// FindVisitByID retrieves a visit by its unique ID.
	FindVisitByID(ctx context.Context, id uuid.UUID) (*entity.Visit, error)

	// FindVisitsByDateRange retrieves visits whose visit_date falls in [from, to].
	// An empty rep returns visits for all reps.
	FindVisitsByDateRange(ctx context.Context, from, to time.Time, rep string) ([]*entity.Visit, error)

	// FindEnRouteVisitByRep retrieves the rep's current en_route visit, if any.
	// Returns ErrVisitNotFound when the rep has no active visit.
	FindEnRouteVisitByRep(ctx context.Context, rep string) (*entity.Visit, error)

	// CountVisitsOnDay counts visits scheduled for the rep on the given calendar day.
	CountVisitsOnDay(ctx context.Context, rep string, day time.Time) (int64, error)

	// UpdateVisitStatus moves a visit to the given status, guarded by the
	// expected current status. Returns ErrVisitConflict when the guard fails.
	UpdateVisitStatus(ctx context.Context, id uuid.UUID, from, to entity.VisitStatus, rep string) error

	// FinalizeVisit writes the terminal state of a finished visit: status,
	// rep claim, note type, notes and the parallel sample arrays.
	FinalizeVisit(ctx context.Context, visit *entity.Visit) error
}
