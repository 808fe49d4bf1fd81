package entity

import (
	"time"

	"github.com/google/uuid"
)

// SampleStockLine is one row of a rep's stock ledger: the remaining quantity
// of a distributable sample type. Sample types match case-insensitively.
type SampleStockLine struct {
	ID         uuid.UUID `json:"id"`
	Rep        string    `json:"rep"`         // Owning rep identifier.
	SampleType string    `json:"sample_type"` // Case-insensitive match key.
	Quantity   int       `json:"quantity"`    // Remaining quantity, never negative.
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
