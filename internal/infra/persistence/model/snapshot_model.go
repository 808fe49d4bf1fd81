package model

import (
	"time"

	"github.com/google/uuid"
)

// SnapshotVisitRow is one visit entry inside a weekly snapshot's jsonb payload.
type SnapshotVisitRow struct {
	VisitID    uuid.UUID `json:"visit_id"`
	VisitDate  time.Time `json:"visit_date"`
	Status     string    `json:"status"`
	ClientName string    `json:"client_name"`
	Specialty  string    `json:"specialty,omitempty"`
	Area       string    `json:"area,omitempty"`
}

// WeeklySnapshotModel is the GORM-specific struct for the 'weekly_snapshots' table.
// Keyed by (rep, week_start); republishing a week replaces the whole row.
type WeeklySnapshotModel struct {
	ID          uuid.UUID          `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Rep         string             `gorm:"type:varchar(100);not null;uniqueIndex:idx_weekly_snapshots_rep_week"`
	WeekStart   time.Time          `gorm:"type:date;not null;uniqueIndex:idx_weekly_snapshots_rep_week"`
	WeekEnd     time.Time          `gorm:"type:date;not null"`
	Visits      []SnapshotVisitRow `gorm:"type:jsonb;serializer:json"`
	PublishedAt time.Time          `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (WeeklySnapshotModel) TableName() string {
	return "weekly_snapshots"
}
