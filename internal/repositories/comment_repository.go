package repositories

import (
	"errors"

	"issavie_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCommentNotFound = errors.New("comment not found")

// CommentFilter narrows a comment listing to one entity.
type CommentFilter struct {
	EntityType string `form:"entity_type"`
	EntityID   string `form:"entity_id"`
}

type CommentRepository interface {
	Create(comment *models.Comment) error
	FindByID(id, tripID string) (*models.Comment, error)
	List(tripID string, filter CommentFilter) ([]models.Comment, error)
	// SoftDelete hides the comment from all listings but keeps the row.
	SoftDelete(id string) error
}

type CommentRepositoryImpl struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &CommentRepositoryImpl{db: db}
}

func (r *CommentRepositoryImpl) Create(comment *models.Comment) error {
	return r.db.Create(comment).Error
}

func (r *CommentRepositoryImpl) FindByID(id, tripID string) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.First(&comment, "id = ? AND trip_id = ?", id, tripID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCommentNotFound
		}
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepositoryImpl) List(tripID string, filter CommentFilter) ([]models.Comment, error) {
	query := r.db.
		Preload("User").
		Where("trip_id = ?", tripID)
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.EntityID != "" {
		query = query.Where("entity_id = ?", filter.EntityID)
	}

	var list []models.Comment
	err := query.Order("created_at ASC").Find(&list).Error
	return list, err
}

func (r *CommentRepositoryImpl) SoftDelete(id string) error {
	result := r.db.Delete(&models.Comment{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCommentNotFound
	}
	return nil
}
