package repositories

import (
	"errors"

	"issavie_backend/internal/models"

	"gorm.io/gorm"
)

var ErrEssentialsNotFound = errors.New("trip essentials not found")

type EssentialsRepository interface {
	FindByTrip(tripID string) (*models.TripEssentials, error)
	Create(essentials *models.TripEssentials) error
	Update(tripID string, fields map[string]interface{}) (*models.TripEssentials, error)
}

type EssentialsRepositoryImpl struct {
	db *gorm.DB
}

func NewEssentialsRepository(db *gorm.DB) EssentialsRepository {
	return &EssentialsRepositoryImpl{db: db}
}

func (r *EssentialsRepositoryImpl) FindByTrip(tripID string) (*models.TripEssentials, error) {
	var essentials models.TripEssentials
	err := r.db.First(&essentials, "trip_id = ?", tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEssentialsNotFound
		}
		return nil, err
	}
	return &essentials, nil
}

func (r *EssentialsRepositoryImpl) Create(essentials *models.TripEssentials) error {
	return r.db.Create(essentials).Error
}

func (r *EssentialsRepositoryImpl) Update(tripID string, fields map[string]interface{}) (*models.TripEssentials, error) {
	if len(fields) > 0 {
		result := r.db.Model(&models.TripEssentials{}).Where("trip_id = ?", tripID).Updates(fields)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected == 0 {
			return nil, ErrEssentialsNotFound
		}
	}
	return r.FindByTrip(tripID)
}
