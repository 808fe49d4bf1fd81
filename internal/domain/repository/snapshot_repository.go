package repository

import (
	"context"
	"time"

	"fieldtrack/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSnapshotNotFound is returned when no snapshot exists for (rep, week_start).
var ErrSnapshotNotFound = errors.New("weekly snapshot not found")

// SnapshotRepository defines the interface for the weekly reporting store.
type SnapshotRepository interface {
	// UpsertSnapshot inserts or fully replaces the snapshot keyed by
	// (rep, week_start). Overwrite semantics: no partial merge.
	UpsertSnapshot(ctx context.Context, snapshot *entity.WeeklySnapshot) error

	// FindSnapshot retrieves the snapshot for the rep and week start day.
	FindSnapshot(ctx context.Context, rep string, weekStart time.Time) (*entity.WeeklySnapshot, error)
}
