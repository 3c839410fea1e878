package services

import (
	"fmt"
	"time"

	"issavie_backend/internal/auth"
	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/internal/services/dto"
	"issavie_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const inviteTTL = 30 * 24 * time.Hour

type InviteService interface {
	CreateInvite(db *gorm.DB, tripID, userID string) (*dto.InviteLinkResponse, error)
	Preview(db *gorm.DB, token string) (*dto.InvitePreviewResponse, error)
	Join(db *gorm.DB, token, userID string) (*dto.JoinResponse, error)
}

type InviteServiceImpl struct {
	frontendURL string
}

func NewInviteService(frontendURL string) InviteService {
	return &InviteServiceImpl{frontendURL: frontendURL}
}

func (s *InviteServiceImpl) CreateInvite(db *gorm.DB, tripID, userID string) (*dto.InviteLinkResponse, error) {
	token := auth.GenerateRandomToken()

	invite := &models.Invite{
		TripID:    tripID,
		TokenHash: auth.HashToken(token),
		ExpiresAt: time.Now().Add(inviteTTL),
		CreatedBy: userID,
	}
	if err := repositories.NewInviteRepository(db).Create(invite); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.InviteLinkResponse{
		URL:       fmt.Sprintf("%s/invites/%s", s.frontendURL, token),
		Token:     token,
		ExpiresIn: "30d",
	}, nil
}

func (s *InviteServiceImpl) findValid(db *gorm.DB, token string) (*models.Invite, error) {
	invite, err := repositories.NewInviteRepository(db).FindValidByHash(auth.HashToken(token), time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrInviteNotFound) {
			return nil, apperrors.ErrInvalidInvite()
		}
		return nil, apperrors.InternalError(err)
	}
	if invite.Trip == nil {
		return nil, apperrors.ErrInvalidInvite()
	}
	return invite, nil
}

func (s *InviteServiceImpl) Preview(db *gorm.DB, token string) (*dto.InvitePreviewResponse, error) {
	invite, err := s.findValid(db, token)
	if err != nil {
		return nil, err
	}

	return &dto.InvitePreviewResponse{
		Trip: dto.TripPreview{
			ID:          invite.Trip.ID,
			Name:        invite.Trip.Name,
			Destination: invite.Trip.Destination,
			StartDate:   invite.Trip.StartDate,
			EndDate:     invite.Trip.EndDate,
		},
		Valid: true,
	}, nil
}

// Join is idempotent for active members and reactivates removed ones
// as plain members.
func (s *InviteServiceImpl) Join(db *gorm.DB, token, userID string) (*dto.JoinResponse, error) {
	invite, err := s.findValid(db, token)
	if err != nil {
		return nil, err
	}

	memberRepo := repositories.NewMemberRepository(db)

	member, err := memberRepo.Find(invite.TripID, userID)
	switch {
	case err == nil && member.Status == models.MemberStatusActive:
		return &dto.JoinResponse{Trip: invite.Trip, Membership: member, AlreadyMember: true}, nil

	case err == nil:
		if err := memberRepo.Reactivate(invite.TripID, userID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		member.Status = models.MemberStatusActive
		member.Role = models.RoleMember
		return &dto.JoinResponse{Trip: invite.Trip, Membership: member}, nil

	case apperrors.Is(err, repositories.ErrMemberNotFound):
		member = &models.TripMember{
			TripID: invite.TripID,
			UserID: userID,
			Role:   models.RoleMember,
			Status: models.MemberStatusActive,
		}
		if err := memberRepo.Create(member); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return &dto.JoinResponse{Trip: invite.Trip, Membership: member}, nil

	default:
		return nil, apperrors.InternalError(err)
	}
}
