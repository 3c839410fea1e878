package models

import (
	"time"

	"gorm.io/datatypes"
)

// ChangeRequest is a pending proposal to patch one itinerary item.
// ProposedPatch is a JSON object whose keys are restricted to the
// itinerary-item allow-list; the restriction holds from creation time.
// Status moves pending -> approved|denied exactly once.
type ChangeRequest struct {
	BaseModel
	TripID          string              `gorm:"type:uuid;not null;index" json:"tripId"`
	ItineraryItemID string              `gorm:"type:uuid;not null;index" json:"itineraryItemId"`
	RequestedBy     string              `gorm:"type:uuid;not null" json:"requestedBy"`
	ProposedPatch   datatypes.JSON      `gorm:"type:jsonb;not null" json:"proposedPatch"`
	Status          ChangeRequestStatus `gorm:"type:varchar(20);not null;default:'pending';index" json:"status"`
	DecidedBy       *string             `gorm:"type:uuid" json:"decidedBy"`
	DecidedAt       *time.Time          `json:"decidedAt"`

	Item      *ItineraryItem `gorm:"foreignKey:ItineraryItemID" json:"-"`
	Requester *User          `gorm:"foreignKey:RequestedBy" json:"-"`
}
