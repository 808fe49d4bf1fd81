package impl

import (
	"io"
	"log/slog"
	"time"

	"fieldtrack/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(interval time.Duration, distanceMeters float64) *config.Config {
	return &config.Config{
		Tracking: &config.TrackingConfig{
			Interval:       interval,
			DistanceMeters: distanceMeters,
		},
	}
}
