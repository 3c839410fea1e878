package repositories

import (
	"errors"

	"issavie_backend/internal/models"

	"gorm.io/gorm"
)

var ErrMemberNotFound = errors.New("member not found")

type MemberRepository interface {
	Create(member *models.TripMember) error

	// Find returns the membership row regardless of status.
	Find(tripID, userID string) (*models.TripMember, error)
	// FindActive returns only an active membership.
	FindActive(tripID, userID string) (*models.TripMember, error)

	ListActive(tripID string) ([]models.TripMember, error)
	ListActiveByRoles(tripID string, roles ...models.MemberRole) ([]models.TripMember, error)
	ListActiveForUser(userID string) ([]models.TripMember, error)

	UpdateRole(tripID, userID string, role models.MemberRole) error
	UpdateStatus(tripID, userID string, status models.MemberStatus) error
	// Reactivate flips a removed membership back to an active plain member.
	Reactivate(tripID, userID string) error
}

type MemberRepositoryImpl struct {
	db *gorm.DB
}

func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &MemberRepositoryImpl{db: db}
}

func (r *MemberRepositoryImpl) Create(member *models.TripMember) error {
	return r.db.Create(member).Error
}

func (r *MemberRepositoryImpl) Find(tripID, userID string) (*models.TripMember, error) {
	var member models.TripMember
	err := r.db.First(&member, "trip_id = ? AND user_id = ?", tripID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) FindActive(tripID, userID string) (*models.TripMember, error) {
	var member models.TripMember
	err := r.db.
		Where("trip_id = ? AND user_id = ? AND status = ?", tripID, userID, models.MemberStatusActive).
		First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMemberNotFound
		}
		return nil, err
	}
	return &member, nil
}

func (r *MemberRepositoryImpl) ListActive(tripID string) ([]models.TripMember, error) {
	var members []models.TripMember
	err := r.db.
		Preload("User").
		Where("trip_id = ? AND status = ?", tripID, models.MemberStatusActive).
		Order("created_at ASC").
		Find(&members).Error
	return members, err
}

func (r *MemberRepositoryImpl) ListActiveByRoles(tripID string, roles ...models.MemberRole) ([]models.TripMember, error) {
	var members []models.TripMember
	err := r.db.
		Where("trip_id = ? AND status = ? AND role IN ?", tripID, models.MemberStatusActive, roles).
		Find(&members).Error
	return members, err
}

func (r *MemberRepositoryImpl) ListActiveForUser(userID string) ([]models.TripMember, error) {
	var members []models.TripMember
	err := r.db.
		Preload("Trip").
		Where("user_id = ? AND status = ?", userID, models.MemberStatusActive).
		Order("created_at DESC").
		Find(&members).Error
	return members, err
}

func (r *MemberRepositoryImpl) UpdateRole(tripID, userID string, role models.MemberRole) error {
	result := r.db.Model(&models.TripMember{}).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Update("role", role)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepositoryImpl) UpdateStatus(tripID, userID string, status models.MemberStatus) error {
	result := r.db.Model(&models.TripMember{}).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}

func (r *MemberRepositoryImpl) Reactivate(tripID, userID string) error {
	result := r.db.Model(&models.TripMember{}).
		Where("trip_id = ? AND user_id = ?", tripID, userID).
		Updates(map[string]interface{}{
			"status": models.MemberStatusActive,
			"role":   models.RoleMember,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMemberNotFound
	}
	return nil
}
