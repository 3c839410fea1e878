package dto

import (
	"time"

	"issavie_backend/internal/models"

	"gorm.io/datatypes"
)

// TripSummary is the trip projection embedded in notifications.
type TripSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type NotificationResponse struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId"`
	TripID    string         `json:"tripId"`
	Type      string         `json:"type"`
	Payload   datatypes.JSON `json:"payload"`
	ReadAt    *time.Time     `json:"readAt"`
	CreatedAt time.Time      `json:"created_at"`
	Trip      *TripSummary   `json:"trip,omitempty"`
}

func NewNotificationResponse(n *models.Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID,
		UserID:    n.UserID,
		TripID:    n.TripID,
		Type:      n.Type,
		Payload:   n.Payload,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
	if n.Trip != nil {
		resp.Trip = &TripSummary{ID: n.Trip.ID, Name: n.Trip.Name}
	}
	return resp
}

type UnreadCountResponse struct {
	Count int64 `json:"unread_count"`
}

// AnalyticsEventRequest records one client-side event.
type AnalyticsEventRequest struct {
	Event   string                 `json:"event" validate:"required,max=100"`
	Payload map[string]interface{} `json:"payload"`
}
