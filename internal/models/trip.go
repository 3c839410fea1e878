package models

import "time"

// Trip is the top-level planning unit. Dates are day-normalized UTC;
// one ItineraryDay row exists per day in [StartDate, EndDate].
type Trip struct {
	BaseModel
	Name        string    `gorm:"not null" json:"name"`
	Destination string    `gorm:"not null" json:"destination"`
	StartDate   time.Time `gorm:"not null" json:"startDate"`
	EndDate     time.Time `gorm:"not null" json:"endDate"`
	Timezone    string    `gorm:"default:'UTC'" json:"timezone"`
	CreatedBy   string    `gorm:"type:uuid;not null" json:"createdBy"`

	// Relations
	Members []TripMember   `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE" json:"-"`
	Days    []ItineraryDay `gorm:"foreignKey:TripID;constraint:OnDelete:CASCADE" json:"-"`
}

// TripMember is one user's membership in one trip. Removal flips
// Status to removed; the row is kept so a later invite can reactivate it.
type TripMember struct {
	BaseModel
	TripID string       `gorm:"type:uuid;not null;uniqueIndex:idx_trip_user" json:"tripId"`
	UserID string       `gorm:"type:uuid;not null;uniqueIndex:idx_trip_user" json:"userId"`
	Role   MemberRole   `gorm:"type:varchar(20);not null;default:'member'" json:"role"`
	Status MemberStatus `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	Trip *Trip `gorm:"foreignKey:TripID" json:"-"`
	User *User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// Invite is a shareable join link. Only the SHA-256 hash of the token
// is stored; the plain token appears once in the generated URL.
type Invite struct {
	BaseModel
	TripID    string     `gorm:"type:uuid;not null;index" json:"tripId"`
	TokenHash string     `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expiresAt"`
	RevokedAt *time.Time `json:"revokedAt"`
	CreatedBy string     `gorm:"type:uuid;not null" json:"createdBy"`

	Trip *Trip `gorm:"foreignKey:TripID" json:"-"`
}
