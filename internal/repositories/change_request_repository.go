package repositories

import (
	"errors"
	"time"

	"issavie_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrChangeRequestNotFound = errors.New("change request not found")
	ErrAlreadyDecided        = errors.New("change request already decided")
)

type ChangeRequestRepository interface {
	Create(cr *models.ChangeRequest) error
	FindByID(id, tripID string) (*models.ChangeRequest, error)
	FindByIDWithItem(id, tripID string) (*models.ChangeRequest, error)
	List(tripID string, status models.ChangeRequestStatus) ([]models.ChangeRequest, error)

	// Decide performs the one-way pending -> approved|denied transition
	// as a single conditional UPDATE. A request that is no longer
	// pending yields ErrAlreadyDecided; a missing id yields
	// ErrChangeRequestNotFound. This is the whole concurrency story:
	// two racing decisions cannot both see an affected row.
	Decide(id, tripID string, status models.ChangeRequestStatus, decidedBy string, decidedAt time.Time) error
}

type ChangeRequestRepositoryImpl struct {
	db *gorm.DB
}

func NewChangeRequestRepository(db *gorm.DB) ChangeRequestRepository {
	return &ChangeRequestRepositoryImpl{db: db}
}

func (r *ChangeRequestRepositoryImpl) Create(cr *models.ChangeRequest) error {
	return r.db.Create(cr).Error
}

func (r *ChangeRequestRepositoryImpl) FindByID(id, tripID string) (*models.ChangeRequest, error) {
	var cr models.ChangeRequest
	err := r.db.First(&cr, "id = ? AND trip_id = ?", id, tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChangeRequestNotFound
		}
		return nil, err
	}
	return &cr, nil
}

func (r *ChangeRequestRepositoryImpl) FindByIDWithItem(id, tripID string) (*models.ChangeRequest, error) {
	var cr models.ChangeRequest
	err := r.db.Preload("Item").First(&cr, "id = ? AND trip_id = ?", id, tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrChangeRequestNotFound
		}
		return nil, err
	}
	return &cr, nil
}

func (r *ChangeRequestRepositoryImpl) List(tripID string, status models.ChangeRequestStatus) ([]models.ChangeRequest, error) {
	var list []models.ChangeRequest
	query := r.db.
		Preload("Item").
		Preload("Requester").
		Where("trip_id = ?", tripID)
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Order("created_at DESC").Find(&list).Error
	return list, err
}

func (r *ChangeRequestRepositoryImpl) Decide(id, tripID string, status models.ChangeRequestStatus, decidedBy string, decidedAt time.Time) error {
	result := r.db.Model(&models.ChangeRequest{}).
		Where("id = ? AND trip_id = ? AND status = ?", id, tripID, models.ChangeRequestPending).
		Updates(map[string]interface{}{
			"status":     status,
			"decided_by": decidedBy,
			"decided_at": decidedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		// Distinguish "gone" from "lost the race".
		var count int64
		if err := r.db.Model(&models.ChangeRequest{}).
			Where("id = ? AND trip_id = ?", id, tripID).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrChangeRequestNotFound
		}
		return ErrAlreadyDecided
	}
	return nil
}
