package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"fieldtrack/config"
	"fieldtrack/internal/domain/entity"
	domainerrors "fieldtrack/internal/domain/errors"
	"fieldtrack/internal/domain/repository"
	"fieldtrack/internal/domain/service"
	"fieldtrack/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// trackingService is the location reporter. Exactly one fix stream is active
// per process; Start stops any prior stream before opening a new one.
type trackingService struct {
	source       service.LocationSource
	locationRepo repository.LocationRepository
	interval     time.Duration
	distance     float64
	logger       *slog.Logger

	mu      sync.Mutex
	session *entity.JourneySession
	cancel  context.CancelFunc
	done    chan struct{}
}

// NewTrackingService creates a new location reporter instance
func NewTrackingService(
	source service.LocationSource,
	locationRepo repository.LocationRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.TrackingUsecase {
	tracking := cfg.Tracking
	if tracking == nil {
		tracking = &config.TrackingConfig{Interval: 15 * time.Second, DistanceMeters: 20}
	}

	return &trackingService{
		source:       source,
		locationRepo: locationRepo,
		interval:     tracking.Interval,
		distance:     tracking.DistanceMeters,
		logger:       logger,
	}
}

// Start begins tracking the rep. A refused foreground permission is fatal;
// a missing background grant degrades to foreground-only tracking.
func (s *trackingService) Start(ctx context.Context, rep string) (*entity.JourneySession, error) {
	// Restart-safe: never run two streams at once.
	if err := s.Stop(); err != nil {
		return nil, err
	}

	stream, err := s.source.Start(ctx, rep)
	if err != nil {
		if errors.Is(err, service.ErrPermissionDenied) {
			return nil, domainerrors.ErrPermissionDenied
		}

		return nil, errors.Wrap(err, "failed to start location source")
	}

	if !stream.Background {
		s.logger.Warn("background positioning unavailable, tracking foreground only",
			slog.String("rep", rep),
		)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	s.mu.Lock()
	s.session = &entity.JourneySession{
		Rep:        rep,
		StartedAt:  time.Now(),
		Background: stream.Background,
	}
	s.cancel = cancel
	s.done = done
	session := s.sessionCopyLocked()
	s.mu.Unlock()

	go s.run(runCtx, stream, rep, done)

	return session, nil
}

// Stop halts emission and clears session affinity. Safe to call when not running.
func (s *trackingService) Stop() error {
	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()

		return nil
	}
	cancel := s.cancel
	done := s.done
	s.session = nil
	s.cancel = nil
	s.done = nil
	// Release before waiting: the run goroutine takes s.mu to read the
	// bound visit and must not deadlock against the teardown.
	s.mu.Unlock()

	cancel()
	if err := s.source.Stop(); err != nil && !errors.Is(err, service.ErrSourceClosed) {
		s.logger.Warn("location source stop failed", slog.Any("error", err))
	}
	<-done

	return nil
}

// BindVisit updates which visit subsequent samples are tagged with.
func (s *trackingService) BindVisit(visitID *uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return
	}

	if visitID == nil {
		s.session.ActiveVisitID = nil

		return
	}

	bound := *visitID
	s.session.ActiveVisitID = &bound
}

// Session returns a copy of the active journey session, or nil.
func (s *trackingService) Session() *entity.JourneySession {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sessionCopyLocked()
}

func (s *trackingService) sessionCopyLocked() *entity.JourneySession {
	if s.session == nil {
		return nil
	}

	copied := *s.session
	if s.session.ActiveVisitID != nil {
		id := *s.session.ActiveVisitID
		copied.ActiveVisitID = &id
	}

	return &copied
}

// run consumes raw fixes until the stream closes, gating on the configured
// interval and distance threshold: a fix is recorded when either the interval
// elapsed or the rep moved at least the threshold distance since the last
// recorded sample, whichever comes first.
func (s *trackingService) run(ctx context.Context, stream *service.FixStream, rep string, done chan struct{}) {
	defer close(done)

	var lastPoint orb.Point
	var lastAt time.Time
	recorded := false

	for {
		select {
		case <-ctx.Done():
			return
		case fix, ok := <-stream.Fixes:
			if !ok {
				return
			}

			point := orb.Point{fix.Longitude, fix.Latitude}
			if recorded {
				elapsed := fix.RecordedAt.Sub(lastAt)
				moved := geo.Distance(point, lastPoint)
				if elapsed < s.interval && moved < s.distance {
					continue
				}
			}

			// The gate advances even when the write fails: the sample was
			// emitted, persistence is best-effort.
			lastPoint = point
			lastAt = fix.RecordedAt
			recorded = true

			sample := s.buildSample(rep, fix)
			if err := s.locationRepo.InsertSamples(ctx, []*entity.LocationSample{sample}); err != nil {
				s.logger.Warn("dropping location sample after failed write",
					slog.String("rep", rep),
					slog.Any("error", err),
				)
			}
		}
	}
}

func (s *trackingService) buildSample(rep string, fix service.Fix) *entity.LocationSample {
	s.mu.Lock()
	var visitID *uuid.UUID
	if s.session != nil && s.session.ActiveVisitID != nil {
		id := *s.session.ActiveVisitID
		visitID = &id
	}
	s.mu.Unlock()

	return &entity.LocationSample{
		ID:         uuid.New(),
		VisitID:    visitID,
		Rep:        rep,
		RecordedAt: fix.RecordedAt,
		Latitude:   fix.Latitude,
		Longitude:  fix.Longitude,
		Accuracy:   fix.Accuracy,
		Speed:      fix.Speed,
		Heading:    fix.Heading,
		Source:     fix.Source,
	}
}
