package repositories

import (
	"errors"

	"issavie_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAnnouncementNotFound = errors.New("announcement not found")

type AnnouncementRepository interface {
	Create(ann *models.Announcement) error
	FindByID(id, tripID string) (*models.Announcement, error)
	List(tripID string) ([]models.Announcement, error)
	SetPinned(id string, pinned bool) error
}

type AnnouncementRepositoryImpl struct {
	db *gorm.DB
}

func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &AnnouncementRepositoryImpl{db: db}
}

func (r *AnnouncementRepositoryImpl) Create(ann *models.Announcement) error {
	return r.db.Create(ann).Error
}

func (r *AnnouncementRepositoryImpl) FindByID(id, tripID string) (*models.Announcement, error) {
	var ann models.Announcement
	err := r.db.Preload("Creator").First(&ann, "id = ? AND trip_id = ?", id, tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAnnouncementNotFound
		}
		return nil, err
	}
	return &ann, nil
}

func (r *AnnouncementRepositoryImpl) List(tripID string) ([]models.Announcement, error) {
	var list []models.Announcement
	err := r.db.
		Preload("Creator").
		Where("trip_id = ?", tripID).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

func (r *AnnouncementRepositoryImpl) SetPinned(id string, pinned bool) error {
	result := r.db.Model(&models.Announcement{}).Where("id = ?", id).Update("pinned", pinned)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAnnouncementNotFound
	}
	return nil
}
