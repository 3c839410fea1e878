package models

import "gorm.io/datatypes"

// TripEssentials is the one-per-trip logistics document. The
// structured fields are typed JSONB columns validated at the API
// boundary, not opaque text blobs.
type TripEssentials struct {
	BaseModel
	TripID string `gorm:"type:uuid;not null;uniqueIndex" json:"tripId"`

	MeetingPoints     datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"meetingPoints"`
	EmergencyContacts datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"emergencyContacts"`
	KeyLinks          datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"keyLinks"`
	PackingList       datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"packingList"`

	TravelDetails datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"travelDetails"`
	DocumentsInfo datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"documentsInfo"`
	SafetyHealth  datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"safetyHealth"`
	LocalInfo     datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"localInfo"`
	PlanningInfo  datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"planningInfo"`
	PersonalInfo  datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"personalInfo"`
	GroupFeatures datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"groupFeatures"`

	HouseRules       *string `json:"houseRules"`
	HotelInfo        *string `json:"hotelInfo"`
	FlightInfo       *string `json:"flightInfo"`
	DestinationRules *string `json:"destinationRules"`
	LodgingDetails   *string `json:"lodgingDetails"`

	Trip *Trip `gorm:"foreignKey:TripID" json:"-"`
}
