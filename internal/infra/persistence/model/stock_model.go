package model

import (
	"time"

	"github.com/google/uuid"
)

// SampleStockModel is the GORM-specific struct for the 'sample_stock' table.
// One row per (rep, sample type); lookups are case-insensitive on the type.
type SampleStockModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Rep        string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_sample_stock_rep_type"`
	SampleType string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_sample_stock_rep_type"`
	Quantity   int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (SampleStockModel) TableName() string {
	return "sample_stock"
}
