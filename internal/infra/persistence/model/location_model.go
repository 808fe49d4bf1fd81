package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationSampleModel is the GORM-specific struct for the 'location_samples' table.
type LocationSampleModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VisitID    *uuid.UUID `gorm:"type:uuid;index"`
	Rep        string     `gorm:"type:varchar(100);not null;index"`
	RecordedAt time.Time  `gorm:"not null;index"`
	Latitude   float64    `gorm:"type:decimal(10,8);not null"`
	Longitude  float64    `gorm:"type:decimal(11,8);not null"`
	Accuracy   float64    `gorm:"type:decimal(10,2)"`
	Speed      float64    `gorm:"type:decimal(10,2)"`
	Heading    float64    `gorm:"type:decimal(10,2)"`
	Source     string     `gorm:"type:varchar(20);not null;default:'gps'"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationSampleModel) TableName() string {
	return "location_samples"
}
