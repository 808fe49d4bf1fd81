package usecase

import (
	"context"

	"fieldtrack/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackingUsecase is the location reporter: it owns the single active fix
// stream per process, applies interval/distance gating, tags samples with the
// bound visit and appends them to the location store best-effort.
type TrackingUsecase interface {
	// Start begins tracking the rep. Any prior stream is stopped first, so
	// starting while running never creates duplicate streams.
	Start(ctx context.Context, rep string) (*entity.JourneySession, error)

	// Stop halts emission and clears session affinity. Idempotent.
	Stop() error

	// BindVisit updates which visit subsequent samples are tagged with.
	// A nil visitID clears the binding. Does not restart the stream.
	BindVisit(visitID *uuid.UUID)

	// Session returns a copy of the active journey session, or nil when
	// tracking is not running.
	Session() *entity.JourneySession
}
