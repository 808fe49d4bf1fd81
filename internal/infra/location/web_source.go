package location

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"fieldtrack/internal/domain/entity"
	"fieldtrack/internal/domain/service"

	"github.com/pkg/errors"
)

const webFixBuffer = 16

// webFixPayload is the JSON shape served by the browser geolocation bridge.
type webFixPayload struct {
	Latitude   float64   `json:"latitude"`
	Longitude  float64   `json:"longitude"`
	Accuracy   float64   `json:"accuracy"`
	Speed      float64   `json:"speed"`
	Heading    float64   `json:"heading"`
	RecordedAt time.Time `json:"recorded_at"`
}

// webSource polls a browser geolocation bridge over HTTP. Browsers cannot
// position in the background, so the stream is always foreground-only.
type webSource struct {
	endpoint   string
	poll       time.Duration
	httpClient *http.Client
	logger     *slog.Logger

	mu      sync.Mutex
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewWebSource is the constructor for webSource. The poll cadence runs at a
// third of the reporter interval so the reporter always has a fresh fix to
// gate on.
func NewWebSource(endpoint string, interval time.Duration, logger *slog.Logger) service.LocationSource {
	poll := interval / 3
	if poll < time.Second {
		poll = time.Second
	}

	return &webSource{
		endpoint: endpoint,
		poll:     poll,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// Start probes the bridge once, then polls it until stopped. A 403 from the
// bridge means the browser user refused the geolocation prompt.
func (s *webSource) Start(ctx context.Context, rep string) (*service.FixStream, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return nil, errors.New("web source already started")
	}

	if _, err := s.fetchFix(ctx); err != nil {
		if errors.Is(err, service.ErrPermissionDenied) {
			return nil, service.ErrPermissionDenied
		}

		return nil, errors.Wrap(err, "failed to probe web geolocation bridge")
	}

	runCtx, cancel := context.WithCancel(context.Background())
	fixes := make(chan service.Fix, webFixBuffer)
	done := make(chan struct{})

	s.cancel = cancel
	s.done = done
	s.running = true

	go s.run(runCtx, rep, fixes, done)

	return &service.FixStream{
		Fixes:      fixes,
		Background: false,
	}, nil
}

// Stop halts polling and closes the fix channel.
func (s *webSource) Stop() error {
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

func (s *webSource) run(ctx context.Context, rep string, fixes chan<- service.Fix, done chan<- struct{}) {
	defer close(done)
	defer close(fixes)

	ticker := time.NewTicker(s.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			fix, err := s.fetchFix(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				s.logger.Warn("web geolocation poll failed",
					slog.String("rep", rep),
					slog.Any("error", err),
				)

				continue
			}

			select {
			case fixes <- fix:
			default:
				// Reporter is behind; the next poll supersedes this fix.
			}
		}
	}
}

func (s *webSource) fetchFix(ctx context.Context) (service.Fix, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return service.Fix{}, errors.WithStack(err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return service.Fix{}, errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden {
		return service.Fix{}, service.ErrPermissionDenied
	}
	if resp.StatusCode != http.StatusOK {
		return service.Fix{}, errors.Errorf("bridge returned status %d", resp.StatusCode)
	}

	var payload webFixPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return service.Fix{}, errors.Wrap(err, "failed to decode bridge fix")
	}

	recordedAt := payload.RecordedAt
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}

	return service.Fix{
		Latitude:   payload.Latitude,
		Longitude:  payload.Longitude,
		Accuracy:   payload.Accuracy,
		Speed:      payload.Speed,
		Heading:    payload.Heading,
		RecordedAt: recordedAt,
		Source:     entity.SourceWeb,
	}, nil
}
