package location

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/domain/service"

	"github.com/pkg/errors"
)

const deviceFixBuffer = 32

// DeviceSource bridges fixes pushed by the rep's device into a FixStream.
// The device uploads raw readings over HTTP; Offer forwards them to the
// running stream. Device positioning runs in the background.
type DeviceSource struct {
	logger *slog.Logger

	mu      sync.Mutex
	running bool
	fixes   chan service.Fix
}

// NewDeviceSource is the constructor for DeviceSource.
func NewDeviceSource(logger *slog.Logger) *DeviceSource {
	return &DeviceSource{
		logger: logger,
	}
}

// Start opens a fresh fix channel for the rep's journey.
func (s *DeviceSource) Start(_ context.Context, rep string) (*service.FixStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil, errors.New("device source already started")
	}

	s.fixes = make(chan service.Fix, deviceFixBuffer)
	s.running = true

	s.logger.Info("device source started", slog.String("rep", rep))

	return &service.FixStream{
		Fixes:      s.fixes,
		Background: true,
	}, nil
}

// Offer forwards one pushed fix to the running stream. Dropped when the
// source is stopped or the buffer is full.
func (s *DeviceSource) Offer(fix service.Fix) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return false
	}

	if fix.Source == "" {
		fix.Source = entity.SourceGPS
	}
	if fix.RecordedAt.IsZero() {
		fix.RecordedAt = time.Now()
	}

	select {
	case s.fixes <- fix:
		return true
	default:
		s.logger.Warn("device fix buffer full, dropping fix")

		return false
	}
}

// Stop closes the fix channel.
func (s *DeviceSource) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.running {
		return service.ErrSourceClosed
	}

	close(s.fixes)
	s.fixes = nil
	s.running = false

	s.logger.Info("device source stopped")

	return nil
}
