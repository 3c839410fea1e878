package repositories

import (
	"errors"
	"time"

	"issavie_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInviteNotFound = errors.New("invite not found")

type InviteRepository interface {
	Create(invite *models.Invite) error

	// FindValidByHash returns an unexpired, unrevoked invite matching
	// the token hash, with the trip preloaded.
	FindValidByHash(tokenHash string, now time.Time) (*models.Invite, error)
}

type InviteRepositoryImpl struct {
	db *gorm.DB
}

func NewInviteRepository(db *gorm.DB) InviteRepository {
	return &InviteRepositoryImpl{db: db}
}

func (r *InviteRepositoryImpl) Create(invite *models.Invite) error {
	return r.db.Create(invite).Error
}

func (r *InviteRepositoryImpl) FindValidByHash(tokenHash string, now time.Time) (*models.Invite, error) {
	var invite models.Invite
	err := r.db.
		Preload("Trip").
		Where("token_hash = ? AND expires_at > ? AND revoked_at IS NULL", tokenHash, now).
		First(&invite).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}
	return &invite, nil
}
