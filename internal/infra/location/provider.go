// Package location contains positioning backends for the journey reporter.
package location

import (
	"log/slog"

	"fieldtrack/config"
	"fieldtrack/internal/domain/constants"
	"fieldtrack/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// FixFeed accepts raw fixes pushed in from outside the process. Only the
// device provider consumes them; the other providers discard.
type FixFeed interface {
	// Offer hands a fix to the running source. Returns false when the source
	// is not running or its buffer is full; the fix is dropped either way.
	Offer(fix service.Fix) bool
}

// noopFeed discards pushed fixes for providers that generate their own.
type noopFeed struct{}

func (noopFeed) Offer(_ service.Fix) bool {
	return false
}

// SourceParams holds dependencies for LocationSource, injected by Fx
type SourceParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewLocationSource creates a LocationSource based on configuration.
func NewLocationSource(params SourceParams) (service.LocationSource, FixFeed, error) {
	cfg := params.Config.Tracking
	logger := params.Logger

	provider := constants.LocationProviderDevice
	if cfg != nil && cfg.Provider != "" {
		provider = cfg.Provider
	}

	switch provider {
	case constants.LocationProviderDevice:
		logger.Info("Using device push source for positioning")

		source := NewDeviceSource(logger)

		return source, source, nil

	case constants.LocationProviderWeb:
		if cfg.WebEndpoint == "" {
			return nil, nil, errors.New("web endpoint is required for web provider")
		}
		logger.Info("Using web polling source for positioning",
			slog.String("endpoint", cfg.WebEndpoint),
		)

		return NewWebSource(cfg.WebEndpoint, cfg.Interval, logger), noopFeed{}, nil

	case constants.LocationProviderMock:
		logger.Info("Using mock walker source for positioning")

		return NewMockSource(logger), noopFeed{}, nil

	default:
		return nil, nil, errors.Errorf("unknown location provider: %s", provider)
	}
}

// Module provides the location source FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewLocationSource),
)
