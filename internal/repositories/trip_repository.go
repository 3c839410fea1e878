package repositories

import (
	"errors"

	"issavie_backend/internal/models"

	"gorm.io/gorm"
)

var ErrTripNotFound = errors.New("trip not found")

type TripRepository interface {
	Create(trip *models.Trip) error
	FindByID(id string) (*models.Trip, error)
	Delete(id string) error

	// CreateDays bulk-inserts the pre-created itinerary days of a new trip.
	CreateDays(days []models.ItineraryDay) error
}

type TripRepositoryImpl struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &TripRepositoryImpl{db: db}
}

func (r *TripRepositoryImpl) Create(trip *models.Trip) error {
	return r.db.Create(trip).Error
}

func (r *TripRepositoryImpl) FindByID(id string) (*models.Trip, error) {
	var trip models.Trip
	err := r.db.First(&trip, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTripNotFound
		}
		return nil, err
	}
	return &trip, nil
}

func (r *TripRepositoryImpl) Delete(id string) error {
	result := r.db.Delete(&models.Trip{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTripNotFound
	}
	return nil
}

func (r *TripRepositoryImpl) CreateDays(days []models.ItineraryDay) error {
	if len(days) == 0 {
		return nil
	}
	return r.db.CreateInBatches(days, 100).Error
}
