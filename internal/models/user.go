package models

import "time"

// User is created lazily on the first successful magic-link sign-in.
// There is no password: the magic link is the only credential.
type User struct {
	BaseModel
	Email string `gorm:"uniqueIndex;not null" json:"email"`
	Name  string `json:"name"`

	// Relations
	Memberships   []TripMember   `gorm:"foreignKey:UserID" json:"-"`
	Notifications []Notification `gorm:"foreignKey:UserID" json:"-"`
}

// MagicLink is a single-use sign-in token sent by email.
type MagicLink struct {
	BaseModel
	Email     string     `gorm:"not null;index" json:"email"`
	Token     string     `gorm:"not null;uniqueIndex" json:"-"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	UsedAt    *time.Time `json:"used_at"`
}

// UserSummary is the projection embedded in member, comment and
// announcement payloads.
type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Email: u.Email, Name: u.Name}
}
