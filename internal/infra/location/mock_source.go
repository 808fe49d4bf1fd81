package location

import (
	"context"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

const (
	mockFixBuffer = 16
	mockTick      = 3 * time.Second

	// Walk parameters: a brisk pedestrian drifting through the city.
	mockMinStepMeters = 4.0
	mockMaxStepMeters = 14.0
	mockBearingDrift  = 25.0
)

// Default walk origin, downtown Cairo.
var mockOrigin = orb.Point{31.2357, 30.0444}

// mockSource emits a synthetic walk for development and demos. Each tick it
// steps a few meters from the previous point with a slowly drifting bearing.
type mockSource struct {
	logger *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewMockSource is the constructor for mockSource.
func NewMockSource(logger *slog.Logger) service.LocationSource {
	return &mockSource{
		logger: logger,
	}
}

// Start begins the synthetic walk.
func (s *mockSource) Start(_ context.Context, rep string) (*service.FixStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil, errors.New("mock source already started")
	}

	runCtx, cancel := context.WithCancel(context.Background())
	fixes := make(chan service.Fix, mockFixBuffer)
	done := make(chan struct{})

	s.cancel = cancel
	s.done = done
	s.running = true

	s.logger.Info("mock walker started", slog.String("rep", rep))

	go s.walk(runCtx, fixes, done)

	return &service.FixStream{
		Fixes:      fixes,
		Background: true,
	}, nil
}

// Stop halts the walk and closes the fix channel.
func (s *mockSource) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()

		return service.ErrSourceClosed
	}

	cancel := s.cancel
	done := s.done
	s.cancel = nil
	s.done = nil
	s.running = false
	s.mu.Unlock()

	cancel()
	<-done

	return nil
}

func (s *mockSource) walk(ctx context.Context, fixes chan<- service.Fix, done chan<- struct{}) {
	defer close(done)
	defer close(fixes)

	ticker := time.NewTicker(mockTick)
	defer ticker.Stop()

	point := mockOrigin
	bearing := rand.Float64()*360 - 180

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			step := mockMinStepMeters + rand.Float64()*(mockMaxStepMeters-mockMinStepMeters)
			bearing += (rand.Float64()*2 - 1) * mockBearingDrift
			point = geo.PointAtBearingAndDistance(point, bearing, step)

			fix := service.Fix{
				Latitude:   point.Lat(),
				Longitude:  point.Lon(),
				Accuracy:   5 + rand.Float64()*10,
				Speed:      step / mockTick.Seconds(),
				Heading:    bearing,
				RecordedAt: time.Now(),
				Source:     entity.SourceMock,
			}

			select {
			case fixes <- fix:
			case <-ctx.Done():
				return
			}
		}
	}
}
