package entity

import "github.com/pkg/errors"

// NoteType classifies the outcome note a rep records when finalizing a visit.
type NoteType string

const (
	// NoteTypeSalesOrder marks a visit that produced a sales order.
	NoteTypeSalesOrder NoteType = "SALES ORDER"
	// NoteTypeRFR marks a request-for-return visit.
	NoteTypeRFR NoteType = "RFR"
	// NoteTypeCollection marks a payment-collection visit.
	NoteTypeCollection NoteType = "COLLECTION"
)

// ErrInvalidNoteType is returned when a string does not name a known note type.
var ErrInvalidNoteType = errors.New("invalid note type")

// ParseNoteType converts an external string into a NoteType.
func ParseNoteType(s string) (NoteType, error) {
	switch NoteType(s) {
	case NoteTypeSalesOrder, NoteTypeRFR, NoteTypeCollection:
		return NoteType(s), nil
	default:
		return "", errors.Wrapf(ErrInvalidNoteType, "%q", s)
	}
}
