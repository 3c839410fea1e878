package repositories

import (
	"issavie_backend/internal/models"

	"gorm.io/gorm"
)

type AnalyticsRepository interface {
	CreateEvent(event *models.AnalyticsEvent) error
}

type AnalyticsRepositoryImpl struct {
	db *gorm.DB
}

func NewAnalyticsRepository(db *gorm.DB) AnalyticsRepository {
	return &AnalyticsRepositoryImpl{db: db}
}

func (r *AnalyticsRepositoryImpl) CreateEvent(event *models.AnalyticsEvent) error {
	return r.db.Create(event).Error
}
