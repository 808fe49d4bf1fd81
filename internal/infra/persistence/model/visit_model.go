package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VisitModel is the GORM-specific struct for the 'visits' table.
// Sample types and quantities are parallel arrays persisted as jsonb.
type VisitModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	VisitDate        time.Time `gorm:"type:date;not null;index"`
	Status           string    `gorm:"type:varchar(20);not null;default:'planned';index"`
	ClientName       string    `gorm:"type:varchar(255);not null"`
	Specialty        string    `gorm:"type:varchar(100)"`
	Area             string    `gorm:"type:varchar(100)"`
	Notes            string    `gorm:"type:text"`
	Rep              string    `gorm:"type:varchar(100);index"`
	NoteType         *string   `gorm:"type:varchar(50)"`
	SampleTypes      []string  `gorm:"type:jsonb;serializer:json"`
	SampleQuantities []int     `gorm:"type:jsonb;serializer:json"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (VisitModel) TableName() string {
	return "visits"
}
