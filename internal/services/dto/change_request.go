package dto

import (
	"time"

	"issavie_backend/internal/models"

	"gorm.io/datatypes"
)

// CreateChangeRequestRequest proposes a patch to an itinerary item.
// Key validation against the allow-list happens in the service before
// any row is written.
type CreateChangeRequestRequest struct {
	ProposedPatch map[string]interface{} `json:"proposed_patch" validate:"required"`
}

// ChangeRequestCriteria filters a listing.
type ChangeRequestCriteria struct {
	Status string `form:"status" validate:"omitempty,oneof=pending approved denied"`
}

// ChangeRequestResponse is a request with its item and requester
// projections, as the inbox renders them.
type ChangeRequestResponse struct {
	ID              string                     `json:"id"`
	TripID          string                     `json:"tripId"`
	ItineraryItemID string                     `json:"itineraryItemId"`
	RequestedBy     string                     `json:"requestedBy"`
	ProposedPatch   datatypes.JSON             `json:"proposedPatch"`
	Status          models.ChangeRequestStatus `json:"status"`
	DecidedBy       *string                    `json:"decidedBy"`
	DecidedAt       *time.Time                 `json:"decidedAt"`
	CreatedAt       time.Time                  `json:"created_at"`
	Item            *models.ItemSummary        `json:"item,omitempty"`
	Requester       *models.UserSummary        `json:"requester,omitempty"`
}

func NewChangeRequestResponse(cr *models.ChangeRequest) *ChangeRequestResponse {
	resp := &ChangeRequestResponse{
		ID:              cr.ID,
		TripID:          cr.TripID,
		ItineraryItemID: cr.ItineraryItemID,
		RequestedBy:     cr.RequestedBy,
		ProposedPatch:   cr.ProposedPatch,
		Status:          cr.Status,
		DecidedBy:       cr.DecidedBy,
		DecidedAt:       cr.DecidedAt,
		CreatedAt:       cr.CreatedAt,
	}
	if cr.Item != nil {
		summary := cr.Item.Summary()
		resp.Item = &summary
	}
	if cr.Requester != nil {
		summary := cr.Requester.Summary()
		resp.Requester = &summary
	}
	return resp
}
