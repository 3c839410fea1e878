package models

import (
	"time"

	"gorm.io/datatypes"
)

// Notification is a fire-and-forget fan-out record. It is never
// mutated after creation except ReadAt, set once by its owner.
type Notification struct {
	BaseModel
	UserID  string         `gorm:"type:uuid;not null;index" json:"userId"`
	TripID  string         `gorm:"type:uuid;not null;index" json:"tripId"`
	Type    string         `gorm:"not null" json:"type"`
	Payload datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"payload"`
	ReadAt  *time.Time     `json:"readAt"`

	Trip *Trip `gorm:"foreignKey:TripID" json:"-"`
}

// AnalyticsEvent is an append-only client event record.
type AnalyticsEvent struct {
	BaseModel
	Event   string         `gorm:"not null;index" json:"event"`
	Payload datatypes.JSON `gorm:"type:jsonb;default:'{}'" json:"payload"`
	UserID  string         `gorm:"type:uuid;not null" json:"userId"`
}
