package repositories

import (
	"errors"
	"time"

	"issavie_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrMagicLinkNotFound = errors.New("magic link not found")
)

type UserRepository interface {
	// User operations
	FindByID(id string) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	Create(user *models.User) error

	// Magic link operations
	CreateMagicLink(link *models.MagicLink) error
	FindMagicLinkByToken(token string) (*models.MagicLink, error)
	MarkMagicLinkUsed(id string, usedAt time.Time) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	return r.db.Create(user).Error
}

func (r *UserRepositoryImpl) CreateMagicLink(link *models.MagicLink) error {
	return r.db.Create(link).Error
}

func (r *UserRepositoryImpl) FindMagicLinkByToken(token string) (*models.MagicLink, error) {
	var link models.MagicLink
	err := r.db.First(&link, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMagicLinkNotFound
		}
		return nil, err
	}
	return &link, nil
}

func (r *UserRepositoryImpl) MarkMagicLinkUsed(id string, usedAt time.Time) error {
	return r.db.Model(&models.MagicLink{}).Where("id = ?", id).Update("used_at", usedAt).Error
}
