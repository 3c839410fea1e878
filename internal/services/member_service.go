package services

import (
	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/internal/services/dto"
	"issavie_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type MemberService interface {
	ListMembers(db *gorm.DB, tripID string) ([]dto.MemberResponse, error)
	UpdateRole(db *gorm.DB, actor *models.TripMember, targetUserID string, req *dto.UpdateMemberRoleRequest) (*dto.MemberResponse, error)
	RemoveMember(db *gorm.DB, actor *models.TripMember, targetUserID string) error
}

type MemberServiceImpl struct{}

func NewMemberService() MemberService {
	return &MemberServiceImpl{}
}

func memberResponse(m *models.TripMember) dto.MemberResponse {
	resp := dto.MemberResponse{
		ID:        m.ID,
		TripID:    m.TripID,
		UserID:    m.UserID,
		Role:      m.Role,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
	if m.User != nil {
		summary := m.User.Summary()
		resp.User = &summary
	}
	return resp
}

func (s *MemberServiceImpl) ListMembers(db *gorm.DB, tripID string) ([]dto.MemberResponse, error) {
	members, err := repositories.NewMemberRepository(db).ListActive(tripID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.MemberResponse, 0, len(members))
	for i := range members {
		responses = append(responses, memberResponse(&members[i]))
	}
	return responses, nil
}

// UpdateRole applies the promotion rules. Promoting to organizer hands
// over the role: the acting organizer is demoted to co_organizer in the
// same transaction, so a trip keeps exactly one organizer.
func (s *MemberServiceImpl) UpdateRole(db *gorm.DB, actor *models.TripMember, targetUserID string, req *dto.UpdateMemberRoleRequest) (*dto.MemberResponse, error) {
	newRole := models.MemberRole(req.Role)

	target, err := repositories.NewMemberRepository(db).FindActive(actor.TripID, targetUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMemberNotFound) {
			return nil, apperrors.ErrMemberNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	if newRole == models.RoleOrganizer && actor.Role != models.RoleOrganizer {
		return nil, apperrors.ErrOnlyOrganizerCanPromote()
	}
	if target.Role == models.RoleOrganizer && actor.Role != models.RoleOrganizer {
		return nil, apperrors.ErrOnlyOrganizerCanDemote()
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		memberRepo := repositories.NewMemberRepository(tx)
		if newRole == models.RoleOrganizer && actor.UserID != targetUserID {
			if err := memberRepo.UpdateRole(actor.TripID, actor.UserID, models.RoleCoOrganizer); err != nil {
				return err
			}
		}
		return memberRepo.UpdateRole(actor.TripID, targetUserID, newRole)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	target.Role = newRole
	resp := memberResponse(target)
	return &resp, nil
}

func (s *MemberServiceImpl) RemoveMember(db *gorm.DB, actor *models.TripMember, targetUserID string) error {
	memberRepo := repositories.NewMemberRepository(db)

	target, err := memberRepo.FindActive(actor.TripID, targetUserID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMemberNotFound) {
			return apperrors.ErrMemberNotFound()
		}
		return apperrors.InternalError(err)
	}

	if actor.UserID != targetUserID {
		if actor.Role == models.RoleMember {
			return apperrors.ErrMembersCannotRemoveOthers()
		}
		if target.Role == models.RoleOrganizer && actor.Role != models.RoleOrganizer {
			return apperrors.ErrOnlyOrganizerCanRemove()
		}
	}

	if err := memberRepo.UpdateStatus(actor.TripID, targetUserID, models.MemberStatusRemoved); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
