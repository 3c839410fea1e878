package services

import (
	"encoding/json"
	"time"

	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/internal/services/dto"
	"issavie_backend/internal/validator"
	"issavie_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ChangeRequestService interface {
	Submit(db *gorm.DB, tripID, itemID, userID string, req *dto.CreateChangeRequestRequest) (*dto.ChangeRequestResponse, error)
	List(db *gorm.DB, tripID string, criteria *dto.ChangeRequestCriteria) ([]*dto.ChangeRequestResponse, error)
	Approve(db *gorm.DB, tripID, requestID, userID string) (*dto.ChangeRequestResponse, error)
	Deny(db *gorm.DB, tripID, requestID, userID string) (*dto.ChangeRequestResponse, error)
}

type ChangeRequestServiceImpl struct {
	notifications NotificationService
}

func NewChangeRequestService(notifications NotificationService) ChangeRequestService {
	return &ChangeRequestServiceImpl{notifications: notifications}
}

func (s *ChangeRequestServiceImpl) Submit(db *gorm.DB, tripID, itemID, userID string, req *dto.CreateChangeRequestRequest) (*dto.ChangeRequestResponse, error) {
	if invalid := validator.InvalidPatchKeys(req.ProposedPatch); len(invalid) > 0 {
		return nil, apperrors.ErrInvalidPatchKeys(invalid)
	}

	itineraryRepo := repositories.NewItineraryRepository(db)
	crRepo := repositories.NewChangeRequestRepository(db)

	item, err := itineraryRepo.FindItem(itemID, tripID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrItemNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	rawPatch, err := json.Marshal(req.ProposedPatch)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid proposed_patch")
	}

	cr := &models.ChangeRequest{
		TripID:          tripID,
		ItineraryItemID: item.ID,
		RequestedBy:     userID,
		ProposedPatch:   datatypes.JSON(rawPatch),
		Status:          models.ChangeRequestPending,
	}
	if err := crRepo.Create(cr); err != nil {
		return nil, apperrors.InternalError(err)
	}

	// Only the decision makers hear about new requests.
	organizers, err := repositories.NewMemberRepository(db).ListActiveByRoles(tripID, models.RoleOrganizer, models.RoleCoOrganizer)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for _, m := range organizers {
		if m.UserID == userID {
			continue
		}
		if err := s.notifications.NotifyUser(db, m.UserID, tripID, repositories.NotificationChangeRequestSubmitted, map[string]interface{}{
			"changeRequestId": cr.ID,
			"itemId":          item.ID,
			"itemTitle":       item.Title,
		}); err != nil {
			return nil, err
		}
	}

	cr.Item = item
	return dto.NewChangeRequestResponse(cr), nil
}

func (s *ChangeRequestServiceImpl) List(db *gorm.DB, tripID string, criteria *dto.ChangeRequestCriteria) ([]*dto.ChangeRequestResponse, error) {
	requests, err := repositories.NewChangeRequestRepository(db).List(tripID, models.ChangeRequestStatus(criteria.Status))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]*dto.ChangeRequestResponse, 0, len(requests))
	for i := range requests {
		responses = append(responses, dto.NewChangeRequestResponse(&requests[i]))
	}
	return responses, nil
}

// patchFields translates the allow-listed wire keys of an approved
// patch into item columns. Keys outside the allow-list are skipped, so
// historical rows written under a wider list apply cleanly.
func patchFields(patch map[string]interface{}) map[string]interface{} {
	columns := map[string]string{
		"title":        "title",
		"startTime":    "start_time",
		"endTime":      "end_time",
		"locationText": "location_text",
		"coverImage":   "cover_image",
		"notes":        "notes",
	}

	fields := map[string]interface{}{}
	for key, column := range columns {
		value, ok := patch[key]
		if !ok {
			continue
		}
		if str, isStr := value.(string); isStr {
			if column == "start_time" || column == "end_time" {
				fields[column] = clearableTime(&str)
				continue
			}
			fields[column] = nullableString(str)
			continue
		}
		fields[column] = value
	}
	if links, ok := patch["externalLinks"]; ok {
		if raw, err := json.Marshal(links); err == nil {
			fields["external_links"] = datatypes.JSON(raw)
		}
	}
	return fields
}

func (s *ChangeRequestServiceImpl) decide(db *gorm.DB, tripID, requestID, userID string, status models.ChangeRequestStatus) (*models.ChangeRequest, error) {
	var decided *models.ChangeRequest

	err := db.Transaction(func(tx *gorm.DB) error {
		crRepo := repositories.NewChangeRequestRepository(tx)

		cr, err := crRepo.FindByIDWithItem(requestID, tripID)
		if err != nil {
			return err
		}

		now := time.Now()
		if err := crRepo.Decide(requestID, tripID, status, userID, now); err != nil {
			return err
		}

		if status == models.ChangeRequestApproved {
			var patch map[string]interface{}
			if err := json.Unmarshal(cr.ProposedPatch, &patch); err != nil {
				return err
			}
			fields := patchFields(patch)
			if len(fields) > 0 {
				fields["updated_by"] = userID
				if err := repositories.NewItineraryRepository(tx).UpdateItem(cr.ItineraryItemID, fields); err != nil {
					return err
				}
			}
		}

		cr.Status = status
		cr.DecidedBy = &userID
		cr.DecidedAt = &now
		decided = cr
		return nil
	})
	if err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrChangeRequestNotFound):
			return nil, apperrors.ErrChangeRequestNotFound()
		case apperrors.Is(err, repositories.ErrAlreadyDecided):
			return nil, apperrors.ErrRequestAlreadyDecided()
		case apperrors.Is(err, repositories.ErrItemNotFound):
			return nil, apperrors.ErrItemNotFound()
		default:
			return nil, apperrors.InternalError(err)
		}
	}
	return decided, nil
}

func (s *ChangeRequestServiceImpl) Approve(db *gorm.DB, tripID, requestID, userID string) (*dto.ChangeRequestResponse, error) {
	cr, err := s.decide(db, tripID, requestID, userID, models.ChangeRequestApproved)
	if err != nil {
		return nil, err
	}

	payload := map[string]interface{}{"changeRequestId": cr.ID, "itemId": cr.ItineraryItemID}
	if cr.RequestedBy != userID {
		if err := s.notifications.NotifyUser(db, cr.RequestedBy, tripID, repositories.NotificationChangeRequestApproved, payload); err != nil {
			return nil, err
		}
	}
	if err := s.notifications.NotifyTripMembers(db, tripID, userID, repositories.NotificationItineraryUpdated, payload); err != nil {
		return nil, err
	}

	return dto.NewChangeRequestResponse(cr), nil
}

func (s *ChangeRequestServiceImpl) Deny(db *gorm.DB, tripID, requestID, userID string) (*dto.ChangeRequestResponse, error) {
	cr, err := s.decide(db, tripID, requestID, userID, models.ChangeRequestDenied)
	if err != nil {
		return nil, err
	}

	if cr.RequestedBy != userID {
		if err := s.notifications.NotifyUser(db, cr.RequestedBy, tripID, repositories.NotificationChangeRequestDenied, map[string]interface{}{
			"changeRequestId": cr.ID,
			"itemId":          cr.ItineraryItemID,
		}); err != nil {
			return nil, err
		}
	}
	return dto.NewChangeRequestResponse(cr), nil
}
