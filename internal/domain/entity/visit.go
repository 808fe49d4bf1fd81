// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// VisitStatus represents the lifecycle state of a planned client visit.
type VisitStatus string

const (
	// VisitStatusPlanned is the initial state of every visit.
	VisitStatusPlanned VisitStatus = "planned"
	// VisitStatusEnRoute means the rep is currently traveling to or working this visit.
	VisitStatusEnRoute VisitStatus = "en_route"
	// VisitStatusDone is the terminal state of a finalized visit.
	VisitStatusDone VisitStatus = "done"
	// VisitStatusSkipped is the terminal state of a visit the rep did not perform.
	VisitStatusSkipped VisitStatus = "skipped"
)

// IsTerminal reports whether no further transitions are allowed from this status.
func (s VisitStatus) IsTerminal() bool {
	return s == VisitStatusDone || s == VisitStatusSkipped
}

// CanTransitionTo reports whether the state machine allows moving to next.
// Terminal states accept nothing; done/skipped are reachable only from
// planned or en_route; en_route and planned toggle between each other.
func (s VisitStatus) CanTransitionTo(next VisitStatus) bool {
	if s.IsTerminal() {
		return false
	}

	switch next {
	case VisitStatusEnRoute:
		return s == VisitStatusPlanned
	case VisitStatusPlanned:
		return s == VisitStatusEnRoute
	case VisitStatusDone, VisitStatusSkipped:
		return s == VisitStatusPlanned || s == VisitStatusEnRoute
	default:
		return false
	}
}

// Visit represents one planned client encounter on a rep's calendar.
type Visit struct {
	ID         uuid.UUID   `json:"id"`          // The unique identifier of the visit.
	VisitDate  time.Time   `json:"visit_date"`  // Scheduled day, calendar-day granularity.
	Status     VisitStatus `json:"status"`      // Current state machine position.
	ClientName string      `json:"client_name"` // The client being visited.
	Specialty  string      `json:"specialty"`   // The client's medical specialty.
	Area       string      `json:"area"`        // Sales area / territory label.
	Notes      string      `json:"notes"`       // Free-text notes, written on finalize.
	Rep        string      `json:"rep"`         // Assigned rep; empty until claimed.
	NoteType   *NoteType   `json:"note_type,omitempty"`

	// SampleTypes and SampleQuantities are parallel arrays: same length,
	// same order. Populated when the visit is finalized.
	SampleTypes      []string `json:"sample_types"`
	SampleQuantities []int    `json:"sample_quantities"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
