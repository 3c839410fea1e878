package services

import (
	"encoding/json"
	"time"

	"issavie_backend/internal/logger"
	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/internal/services/dto"
	"issavie_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const notificationListLimit = 100

// NotificationService owns the fan-out used by the other services:
// one row per active trip member, minus the actor who caused the event.
type NotificationService interface {
	NotifyTripMembers(db *gorm.DB, tripID, excludeUserID, eventType string, payload map[string]interface{}) error
	NotifyUser(db *gorm.DB, userID, tripID, eventType string, payload map[string]interface{}) error
	ListForUser(db *gorm.DB, userID string) ([]dto.NotificationResponse, error)
	MarkRead(db *gorm.DB, userID, notificationID string) error
	UnreadCount(db *gorm.DB, userID string) (*dto.UnreadCountResponse, error)
}

type NotificationServiceImpl struct{}

func NewNotificationService() NotificationService {
	return &NotificationServiceImpl{}
}

func marshalPayload(payload map[string]interface{}) datatypes.JSON {
	if payload == nil {
		payload = map[string]interface{}{}
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		logger.WithError(err).Warn("failed to marshal notification payload")
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}

func (s *NotificationServiceImpl) NotifyTripMembers(db *gorm.DB, tripID, excludeUserID, eventType string, payload map[string]interface{}) error {
	memberRepo := repositories.NewMemberRepository(db)
	notifRepo := repositories.NewNotificationRepository(db)

	members, err := memberRepo.ListActive(tripID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	raw := marshalPayload(payload)
	notifications := make([]*models.Notification, 0, len(members))
	for _, m := range members {
		if m.UserID == excludeUserID {
			continue
		}
		notifications = append(notifications, &models.Notification{
			UserID:  m.UserID,
			TripID:  tripID,
			Type:    eventType,
			Payload: raw,
		})
	}
	if len(notifications) == 0 {
		return nil
	}
	if err := notifRepo.CreateBulk(notifications); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) NotifyUser(db *gorm.DB, userID, tripID, eventType string, payload map[string]interface{}) error {
	notifRepo := repositories.NewNotificationRepository(db)
	n := &models.Notification{
		UserID:  userID,
		TripID:  tripID,
		Type:    eventType,
		Payload: marshalPayload(payload),
	}
	if err := notifRepo.Create(n); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) ListForUser(db *gorm.DB, userID string) ([]dto.NotificationResponse, error) {
	notifRepo := repositories.NewNotificationRepository(db)

	notifications, err := notifRepo.ListForUser(userID, notificationListLimit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.NotificationResponse, 0, len(notifications))
	for i := range notifications {
		responses = append(responses, dto.NewNotificationResponse(&notifications[i]))
	}
	return responses, nil
}

func (s *NotificationServiceImpl) MarkRead(db *gorm.DB, userID, notificationID string) error {
	notifRepo := repositories.NewNotificationRepository(db)

	if _, err := notifRepo.FindForUser(notificationID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotificationNotFound()
		}
		return apperrors.InternalError(err)
	}
	if err := notifRepo.MarkRead(notificationID, time.Now()); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) UnreadCount(db *gorm.DB, userID string) (*dto.UnreadCountResponse, error) {
	count, err := repositories.NewNotificationRepository(db).UnreadCount(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.UnreadCountResponse{Count: count}, nil
}
