package repositories

import (
	"errors"
	"time"

	"issavie_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrDayNotFound  = errors.New("itinerary day not found")
	ErrItemNotFound = errors.New("itinerary item not found")
)

type ItineraryRepository interface {
	// Day operations
	ListDaysWithItems(tripID string) ([]models.ItineraryDay, error)
	FindDay(id, tripID string) (*models.ItineraryDay, error)
	FindDayByDate(tripID string, date time.Time) (*models.ItineraryDay, error)
	CountDays(tripID string) (int64, error)
	CreateDay(day *models.ItineraryDay) error

	// Item operations
	CreateItem(item *models.ItineraryItem) error
	FindItem(id, tripID string) (*models.ItineraryItem, error)
	UpdateItem(id string, fields map[string]interface{}) error
	DeleteItem(id string) error
}

type ItineraryRepositoryImpl struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &ItineraryRepositoryImpl{db: db}
}

func (r *ItineraryRepositoryImpl) ListDaysWithItems(tripID string) ([]models.ItineraryDay, error) {
	var days []models.ItineraryDay
	err := r.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("start_time ASC, title ASC")
		}).
		Where("trip_id = ?", tripID).
		Order("date ASC, position ASC").
		Find(&days).Error
	return days, err
}

func (r *ItineraryRepositoryImpl) FindDay(id, tripID string) (*models.ItineraryDay, error) {
	var day models.ItineraryDay
	err := r.db.First(&day, "id = ? AND trip_id = ?", id, tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	return &day, nil
}

func (r *ItineraryRepositoryImpl) FindDayByDate(tripID string, date time.Time) (*models.ItineraryDay, error) {
	var day models.ItineraryDay
	err := r.db.First(&day, "trip_id = ? AND date = ?", tripID, date).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrDayNotFound
		}
		return nil, err
	}
	return &day, nil
}

func (r *ItineraryRepositoryImpl) CountDays(tripID string) (int64, error) {
	var count int64
	err := r.db.Model(&models.ItineraryDay{}).Where("trip_id = ?", tripID).Count(&count).Error
	return count, err
}

func (r *ItineraryRepositoryImpl) CreateDay(day *models.ItineraryDay) error {
	return r.db.Create(day).Error
}

func (r *ItineraryRepositoryImpl) CreateItem(item *models.ItineraryItem) error {
	return r.db.Create(item).Error
}

func (r *ItineraryRepositoryImpl) FindItem(id, tripID string) (*models.ItineraryItem, error) {
	var item models.ItineraryItem
	err := r.db.First(&item, "id = ? AND trip_id = ?", id, tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *ItineraryRepositoryImpl) UpdateItem(id string, fields map[string]interface{}) error {
	result := r.db.Model(&models.ItineraryItem{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *ItineraryRepositoryImpl) DeleteItem(id string) error {
	result := r.db.Delete(&models.ItineraryItem{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrItemNotFound
	}
	return nil
}
