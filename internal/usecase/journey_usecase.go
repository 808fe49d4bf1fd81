package usecase

import (
	"context"

	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// SampleLine is one (type, quantity) pair requested as distributed during a visit.
type SampleLine struct {
	SampleType string `json:"sample_type"`
	Quantity   int    `json:"quantity"`
}

// FinalizeVisitInput represents the input for ending a journey at a visit
type FinalizeVisitInput struct {
	NoteType string       `json:"note_type"`
	Summary  string       `json:"summary"`
	Lines    []SampleLine `json:"lines"`
}

// JourneyUsecase governs the visit state machine and the journey session.
// Policy: selecting a visit closes any other en_route visit of the same rep
// first (close-before-open), keeping at most one visit en_route per rep.
type JourneyUsecase interface {
	// StartJourney begins tracking for the rep. Rejected when the rep has no
	// visits scheduled today. Restart-safe: a running journey is stopped first.
	StartJourney(ctx context.Context, rep string) (*entity.JourneySession, error)

	// StopJourney halts tracking and clears the session. Idempotent.
	StopJourney(ctx context.Context) error

	// SelectVisit moves a planned visit to en_route and binds it to the session.
	SelectVisit(ctx context.Context, rep string, visitID uuid.UUID) (*entity.Visit, error)

	// DeselectVisit reverts the rep's en_route visit to planned and unbinds it.
	DeselectVisit(ctx context.Context, rep string, visitID uuid.UUID) (*entity.Visit, error)

	// FinalizeVisit ends the journey at a visit: claims the rep when unset,
	// requires a note classification, reconciles sample lines against stock
	// all-or-nothing, writes notes and sample arrays, marks the visit done,
	// clears the session and stops tracking.
	FinalizeVisit(ctx context.Context, rep string, visitID uuid.UUID, input *FinalizeVisitInput) (*entity.Visit, error)

	// SkipVisit terminally skips a visit with no stock side effects.
	SkipVisit(ctx context.Context, rep string, visitID uuid.UUID) (*entity.Visit, error)

	// CurrentSession returns a copy of the active journey session, or nil.
	CurrentSession() *entity.JourneySession
}
