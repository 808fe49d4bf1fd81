package entity

import (
	"time"

	"github.com/google/uuid"
)

// JourneySession is the in-memory state of an active tracking run: the rep
// being tracked and the single visit currently bound, if any. It exists only
// while tracking is running and is never persisted as its own record.
type JourneySession struct {
	Rep           string     `json:"rep"`
	ActiveVisitID *uuid.UUID `json:"active_visit_id,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	// Background is false when only foreground-grade tracking was granted.
	Background bool `json:"background"`
}
