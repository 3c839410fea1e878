package services

import (
	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/internal/services/dto"
	"issavie_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AnnouncementService interface {
	List(db *gorm.DB, tripID string) ([]*dto.AnnouncementResponse, error)
	Create(db *gorm.DB, tripID, userID string, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error)
	SetPinned(db *gorm.DB, tripID, announcementID string, req *dto.PinAnnouncementRequest) (*dto.AnnouncementResponse, error)
}

type AnnouncementServiceImpl struct {
	notifications NotificationService
}

func NewAnnouncementService(notifications NotificationService) AnnouncementService {
	return &AnnouncementServiceImpl{notifications: notifications}
}

func (s *AnnouncementServiceImpl) List(db *gorm.DB, tripID string) ([]*dto.AnnouncementResponse, error) {
	announcements, err := repositories.NewAnnouncementRepository(db).List(tripID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.AnnouncementResponse, 0, len(announcements))
	for i := range announcements {
		responses = append(responses, dto.NewAnnouncementResponse(&announcements[i]))
	}
	return responses, nil
}

func (s *AnnouncementServiceImpl) Create(db *gorm.DB, tripID, userID string, req *dto.CreateAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	ann := &models.Announcement{
		TripID:    tripID,
		Title:     req.Title,
		Body:      req.Body,
		CreatedBy: userID,
	}
	if err := repositories.NewAnnouncementRepository(db).Create(ann); err != nil {
		return nil, apperrors.InternalError(err)
	}

	payload := map[string]interface{}{"announcementId": ann.ID}
	if req.Title != nil {
		payload["title"] = *req.Title
	}
	if err := s.notifications.NotifyTripMembers(db, tripID, userID, repositories.NotificationAnnouncementPosted, payload); err != nil {
		return nil, err
	}
	return dto.NewAnnouncementResponse(ann), nil
}

func (s *AnnouncementServiceImpl) SetPinned(db *gorm.DB, tripID, announcementID string, req *dto.PinAnnouncementRequest) (*dto.AnnouncementResponse, error) {
	annRepo := repositories.NewAnnouncementRepository(db)

	if _, err := annRepo.FindByID(announcementID, tripID); err != nil {
		if apperrors.Is(err, repositories.ErrAnnouncementNotFound) {
			return nil, apperrors.ErrAnnouncementNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if err := annRepo.SetPinned(announcementID, req.Pinned); err != nil {
		return nil, apperrors.InternalError(err)
	}

	ann, err := annRepo.FindByID(announcementID, tripID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewAnnouncementResponse(ann), nil
}
