// Package service defines domain-level interfaces implemented by the infra layer.
package service

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"

	"github.com/pkg/errors"
)

// Positioning errors surfaced by LocationSource implementations.
var (
	// ErrPermissionDenied means the source refused foreground positioning.
	// Fatal to tracking start.
	ErrPermissionDenied = errors.New("location permission denied")
	// ErrSourceClosed is returned by Stop when the source was not running.
	ErrSourceClosed = errors.New("location source is not running")
)

// Fix is one raw reading from a positioning backend, before the reporter
// applies cadence and distance gating.
type Fix struct {
	Latitude   float64
	Longitude  float64
	Accuracy   float64
	Speed      float64
	Heading    float64
	RecordedAt time.Time
	Source     entity.LocationSourceTag
}

// FixStream is the result of starting a LocationSource.
type FixStream struct {
	// Fixes delivers raw readings until the source is stopped. The channel is
	// closed by the source on Stop or context cancellation.
	Fixes <-chan Fix

	// Background reports whether background-grade positioning was granted.
	// When false the source degrades to foreground-only tracking; this is a
	// recoverable condition, not a start failure.
	Background bool
}

// LocationSource abstracts a platform positioning backend (native background
// feed, browser polling bridge, or the development walker). The journey core
// must not depend on which adapter is active.
type LocationSource interface {
	// Start begins emitting fixes for the given rep. Returns
	// ErrPermissionDenied when foreground positioning is refused.
	Start(ctx context.Context, rep string) (*FixStream, error)

	// Stop halts emission and closes the fix channel. Idempotent.
	Stop() error
}
