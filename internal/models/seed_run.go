package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// SeedRun statuses.
const (
	SeedRunStatusSucceeded = "succeeded"
	SeedRunStatusFailed    = "failed"
)

// SeedRun is an audit record of a single seeding invocation.
type SeedRun struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Status     string    `gorm:"index"`
	Detail     datatypes.JSON // per-table inserted row counts
	Error      string
	DurationMS int64
	CreatedAt  time.Time
}
