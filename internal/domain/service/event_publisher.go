package service

import (
	"context"
)

// Visit event kinds published on terminal transitions.
const (
	VisitEventFinalized = "visit.finalized"
	VisitEventSkipped   = "visit.skipped"
)

// VisitEvent represents a terminal visit transition to be fanned out to the
// reporting worker.
type VisitEvent struct {
	RequestID   string   `json:"request_id,omitempty"` // For distributed tracing
	Kind        string   `json:"kind"`
	VisitID     string   `json:"visit_id"`
	Rep         string   `json:"rep"`
	ClientName  string   `json:"client_name"`
	VisitDate   string   `json:"visit_date"` // RFC 3339 date of the visit day
	NoteType    string   `json:"note_type,omitempty"`
	SampleTypes []string `json:"sample_types,omitempty"`
	SampleQtys  []int    `json:"sample_quantities,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishVisitEvent publishes a visit lifecycle event for async processing
	PublishVisitEvent(ctx context.Context, event *VisitEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
