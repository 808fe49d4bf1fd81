package entity

import (
	"time"

	"github.com/google/uuid"
)

// SnapshotVisit is the denormalized form of a visit inside a weekly snapshot.
type SnapshotVisit struct {
	VisitID    uuid.UUID   `json:"visit_id"`
	VisitDate  time.Time   `json:"visit_date"`
	Status     VisitStatus `json:"status"`
	ClientName string      `json:"client_name"`
	Specialty  string      `json:"specialty"`
	Area       string      `json:"area"`
}

// WeeklySnapshot is a reporting copy of a rep's visits for one Monday-to-Sunday
// week, keyed by (rep, week_start). Re-publishing a week replaces the prior
// snapshot entirely; there is no partial merge.
type WeeklySnapshot struct {
	ID          uuid.UUID       `json:"id"`
	Rep         string          `json:"rep"`
	WeekStart   time.Time       `json:"week_start"` // Monday, midnight UTC.
	WeekEnd     time.Time       `json:"week_end"`   // Sunday, midnight UTC.
	Visits      []SnapshotVisit `json:"visits"`
	PublishedAt time.Time       `json:"published_at"`
}
