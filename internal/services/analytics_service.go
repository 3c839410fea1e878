package services

import (
	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/internal/services/dto"
	"issavie_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AnalyticsService interface {
	RecordEvent(db *gorm.DB, userID string, req *dto.AnalyticsEventRequest) error
}

type AnalyticsServiceImpl struct{}

func NewAnalyticsService() AnalyticsService {
	return &AnalyticsServiceImpl{}
}

func (s *AnalyticsServiceImpl) RecordEvent(db *gorm.DB, userID string, req *dto.AnalyticsEventRequest) error {
	event := &models.AnalyticsEvent{
		Event:   req.Event,
		Payload: marshalPayload(req.Payload),
		UserID:  userID,
	}
	if err := repositories.NewAnalyticsRepository(db).CreateEvent(event); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
