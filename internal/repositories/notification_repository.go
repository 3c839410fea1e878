package repositories

import (
	"errors"
	"time"

	"issavie_backend/internal/models"

	"gorm.io/gorm"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification types, matching the payload consumers in the frontend.
const (
	NotificationChangeRequestSubmitted = "change_request_submitted"
	NotificationChangeRequestApproved  = "change_request_approved"
	NotificationChangeRequestDenied    = "change_request_denied"
	NotificationItineraryUpdated       = "itinerary_updated"
	NotificationItineraryItemCreated   = "itinerary_item_created"
	NotificationItineraryItemUpdated   = "itinerary_item_updated"
	NotificationAnnouncementPosted     = "announcement_posted"
	NotificationEssentialsUpdated      = "essentials_updated"
)

type NotificationRepository interface {
	Create(notification *models.Notification) error
	CreateBulk(notifications []*models.Notification) error
	FindForUser(id, userID string) (*models.Notification, error)
	ListForUser(userID string, limit int) ([]models.Notification, error)
	MarkRead(id string, readAt time.Time) error
	UnreadCount(userID string) (int64, error)
}

type NotificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &NotificationRepositoryImpl{db: db}
}

func (r *NotificationRepositoryImpl) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

func (r *NotificationRepositoryImpl) CreateBulk(notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}
	return r.db.CreateInBatches(notifications, 100).Error
}

func (r *NotificationRepositoryImpl) FindForUser(id, userID string) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ? AND user_id = ?", id, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

func (r *NotificationRepositoryImpl) ListForUser(userID string, limit int) ([]models.Notification, error) {
	var list []models.Notification
	err := r.db.
		Preload("Trip").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

func (r *NotificationRepositoryImpl) MarkRead(id string, readAt time.Time) error {
	result := r.db.Model(&models.Notification{}).Where("id = ?", id).Update("read_at", readAt)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepositoryImpl) UnreadCount(userID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&count).Error
	return count, err
}
