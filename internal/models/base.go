package models

import (
	"time"

	"expensetracker/internal/ids"

	"gorm.io/gorm"
)

// Base contains the id and bookkeeping columns shared by id-keyed tables.
// Rows are hard-deleted; there is no deleted_at column.
type Base struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = ids.New()
	}
	return nil
}
