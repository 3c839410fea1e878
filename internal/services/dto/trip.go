package dto

import (
	"time"

	"issavie_backend/internal/models"
)

// CreateTripRequest. Dates arrive as ISO strings and are normalized to
// start-of-day UTC; the range check (today .. +6 months) happens in
// the service where "today" is defined.
type CreateTripRequest struct {
	Name        string `json:"name" validate:"required,max=500"`
	Destination string `json:"destination" validate:"required,max=1000"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Timezone    string `json:"timezone" validate:"omitempty,max=100"`
}

// TripResponse is a trip together with the caller's role in it.
type TripResponse struct {
	models.Trip
	MyRole models.MemberRole `json:"myRole"`
}

// MemberResponse is one membership row with the user attached.
type MemberResponse struct {
	ID        string              `json:"id"`
	TripID    string              `json:"tripId"`
	UserID    string              `json:"userId"`
	Role      models.MemberRole   `json:"role"`
	Status    models.MemberStatus `json:"status"`
	CreatedAt time.Time           `json:"created_at"`
	User      *models.UserSummary `json:"user,omitempty"`
}

// UpdateMemberRoleRequest changes one member's role.
type UpdateMemberRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=organizer co_organizer member"`
}

// InviteLinkResponse carries the plain token exactly once.
type InviteLinkResponse struct {
	URL       string `json:"url"`
	Token     string `json:"token"`
	ExpiresIn string `json:"expiresIn"`
}

// TripPreview is the public projection shown on the invite page.
type TripPreview struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
}

type InvitePreviewResponse struct {
	Trip  TripPreview `json:"trip"`
	Valid bool        `json:"valid"`
}

type JoinResponse struct {
	Trip          *models.Trip       `json:"trip"`
	Membership    *models.TripMember `json:"membership"`
	AlreadyMember bool               `json:"alreadyMember"`
}
