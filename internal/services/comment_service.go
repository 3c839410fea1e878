package services

import (
	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/internal/services/dto"
	"issavie_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type CommentService interface {
	List(db *gorm.DB, tripID string, filter repositories.CommentFilter) ([]*dto.CommentResponse, error)
	Create(db *gorm.DB, tripID, userID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Delete(db *gorm.DB, actor *models.TripMember, commentID string) error
}

type CommentServiceImpl struct{}

func NewCommentService() CommentService {
	return &CommentServiceImpl{}
}

func (s *CommentServiceImpl) List(db *gorm.DB, tripID string, filter repositories.CommentFilter) ([]*dto.CommentResponse, error) {
	comments, err := repositories.NewCommentRepository(db).List(tripID, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.CommentResponse, 0, len(comments))
	for i := range comments {
		responses = append(responses, dto.NewCommentResponse(&comments[i]))
	}
	return responses, nil
}

func (s *CommentServiceImpl) Create(db *gorm.DB, tripID, userID string, req *dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	comment := &models.Comment{
		TripID:     tripID,
		EntityType: models.CommentEntityType(req.EntityType),
		EntityID:   req.EntityID,
		UserID:     userID,
		Body:       req.Body,
	}
	if err := repositories.NewCommentRepository(db).Create(comment); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCommentResponse(comment), nil
}

// Delete allows owners to remove their own comments and organizers or
// co-organizers to remove anyone's.
func (s *CommentServiceImpl) Delete(db *gorm.DB, actor *models.TripMember, commentID string) error {
	commentRepo := repositories.NewCommentRepository(db)

	comment, err := commentRepo.FindByID(commentID, actor.TripID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrCommentNotFound) {
			return apperrors.ErrCommentNotFound()
		}
		return apperrors.InternalError(err)
	}

	if comment.UserID != actor.UserID && actor.Role == models.RoleMember {
		return apperrors.ErrNotCommentOwner()
	}

	if err := commentRepo.SoftDelete(commentID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
