package models

import (
	"gorm.io/gorm"
)

type Announcement struct {
	BaseModel
	TripID    string  `gorm:"type:uuid;not null;index" json:"tripId"`
	Title     *string `json:"title"`
	Body      string  `gorm:"not null" json:"body"`
	Pinned    bool    `gorm:"default:false" json:"pinned"`
	CreatedBy string  `gorm:"type:uuid;not null" json:"createdBy"`

	Creator *User `gorm:"foreignKey:CreatedBy" json:"-"`
}

// Comment attaches to an itinerary item or an announcement. Deleted
// comments are soft-deleted and disappear from all listings.
type Comment struct {
	BaseModel
	TripID     string            `gorm:"type:uuid;not null;index" json:"tripId"`
	EntityType CommentEntityType `gorm:"type:varchar(30);not null;index" json:"entityType"`
	EntityID   string            `gorm:"not null;index" json:"entityId"`
	UserID     string            `gorm:"type:uuid;not null" json:"userId"`
	Body       string            `gorm:"not null" json:"body"`
	DeletedAt  gorm.DeletedAt    `gorm:"index" json:"-"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
