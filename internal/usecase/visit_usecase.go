// Package usecase defines the application's use case interfaces and their
// input DTOs. Implementations live in the impl subpackage.
package usecase

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// AddVisitInput represents the input for manually adding a planned visit
type AddVisitInput struct {
	VisitDate  time.Time `json:"visit_date"`
	ClientName string    `json:"client_name"`
	Specialty  string    `json:"specialty"`
	Area       string    `json:"area"`
	Notes      string    `json:"notes"`
	Rep        string    `json:"rep"`
}

// VisitUsecase defines the interface for visit calendar management
type VisitUsecase interface {
	// ListVisits retrieves visits in [from, to]; rep may be empty for all reps.
	ListVisits(ctx context.Context, from, to time.Time, rep string) ([]*entity.Visit, error)

	// GetVisit retrieves a single visit by ID.
	GetVisit(ctx context.Context, id uuid.UUID) (*entity.Visit, error)

	// AddVisit creates a new planned visit from rep input.
	AddVisit(ctx context.Context, input *AddVisitInput) (*entity.Visit, error)
}
