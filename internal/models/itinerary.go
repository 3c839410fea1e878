package models

import (
	"time"

	"gorm.io/datatypes"
)

type ItineraryDay struct {
	BaseModel
	TripID   string    `gorm:"type:uuid;not null;uniqueIndex:idx_trip_date" json:"tripId"`
	Date     time.Time `gorm:"not null;uniqueIndex:idx_trip_date" json:"date"`
	Position int       `gorm:"not null;default:0" json:"position"`

	Items []ItineraryItem `gorm:"foreignKey:DayID;constraint:OnDelete:CASCADE" json:"items"`
}

// ItineraryItem is one scheduled entry within a day. StartTime and
// EndTime are HH:MM strings; nil means TBD and sorts last within the day.
type ItineraryItem struct {
	BaseModel
	TripID        string         `gorm:"type:uuid;not null;index" json:"tripId"`
	DayID         string         `gorm:"type:uuid;not null;index" json:"dayId"`
	Title         string         `gorm:"not null" json:"title"`
	StartTime     *string        `json:"startTime"`
	EndTime       *string        `json:"endTime"`
	LocationText  *string        `json:"locationText"`
	CoverImage    *string        `json:"coverImage"`
	Notes         *string        `json:"notes"`
	ExternalLinks datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"externalLinks"`
	CreatedBy     string         `gorm:"type:uuid;not null" json:"createdBy"`
	UpdatedBy     string         `gorm:"type:uuid;not null" json:"updatedBy"`

	Day *ItineraryDay `gorm:"foreignKey:DayID" json:"-"`
}

// ItemSummary is the projection embedded in change-request listings.
type ItemSummary struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	DayID     string  `json:"dayId"`
	StartTime *string `json:"startTime"`
}

func (i *ItineraryItem) Summary() ItemSummary {
	return ItemSummary{ID: i.ID, Title: i.Title, DayID: i.DayID, StartTime: i.StartTime}
}
