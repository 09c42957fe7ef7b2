package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses.
const (
	InvoiceStatusPaid    = "paid"
	InvoiceStatusPending = "pending"
)

type Invoice struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"index"` // reference only, not validated before insert
	Amount     int64     `gorm:"index"` // cents
	Status     string    `gorm:"index"`
	Date       time.Time
}
