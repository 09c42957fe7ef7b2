package repository

import (
	"gorm.io/gorm"

	"dashboard-seed-backend/internal/models"
)

type SeedRunRepository struct {
	db *gorm.DB
}

func NewSeedRunRepository(db *gorm.DB) *SeedRunRepository {
	return &SeedRunRepository{db: db}
}

// Recent returns the latest seed audit rows, newest first.
func (r *SeedRunRepository) Recent(limit int) ([]models.SeedRun, error) {
	var runs []models.SeedRun
	err := r.db.Order("created_at DESC").Limit(limit).Find(&runs).Error
	return runs, err
}
