package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// LocationSourceTag identifies which positioning backend produced a fix.
type LocationSourceTag string

const (
	// SourceGPS marks fixes pushed from a device's native positioning stack.
	SourceGPS LocationSourceTag = "gps"
	// SourceWeb marks fixes obtained by polling a browser geolocation bridge.
	SourceWeb LocationSourceTag = "web"
	// SourceMock marks synthetic fixes from the development walker.
	SourceMock LocationSourceTag = "mock"
)

// ErrInvalidSourceTag is returned when a string does not name a known source.
var ErrInvalidSourceTag = errors.New("invalid location source tag")

// ParseSourceTag converts an external string into a LocationSourceTag.
// An empty string defaults to gps, matching device-pushed fixes.
func ParseSourceTag(s string) (LocationSourceTag, error) {
	switch LocationSourceTag(s) {
	case "":
		return SourceGPS, nil
	case SourceGPS, SourceWeb, SourceMock:
		return LocationSourceTag(s), nil
	default:
		return "", errors.Wrapf(ErrInvalidSourceTag, "%q", s)
	}
}

// LocationSample is one recorded GPS fix. Samples are append-only; unbound
// samples (nil VisitID) are kept but excluded from per-visit queries.
type LocationSample struct {
	ID         uuid.UUID         `json:"id"`
	VisitID    *uuid.UUID        `json:"visit_id,omitempty"` // Visit bound at emission time, if any.
	Rep        string            `json:"rep"`
	RecordedAt time.Time         `json:"recorded_at"`
	Latitude   float64           `json:"latitude"`
	Longitude  float64           `json:"longitude"`
	Accuracy   float64           `json:"accuracy"` // Meters, 0 when unknown.
	Speed      float64           `json:"speed"`    // Meters per second, 0 when unknown.
	Heading    float64           `json:"heading"`  // Degrees from north, 0 when unknown.
	Source     LocationSourceTag `json:"source"`
}
