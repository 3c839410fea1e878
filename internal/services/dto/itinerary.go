package dto

import "issavie_backend/internal/models"

// CreateItemRequest creates an itinerary item on an existing day
// (day_id) or a date whose day is created on demand.
type CreateItemRequest struct {
	Title         string        `json:"title" validate:"required,max=500"`
	DayID         string        `json:"day_id" validate:"omitempty,max=100"`
	Date          string        `json:"date"`
	StartTime     *string       `json:"start_time" validate:"omitempty,max=50"`
	EndTime       *string       `json:"end_time" validate:"omitempty,max=50"`
	LocationText  *string       `json:"location_text" validate:"omitempty,max=500"`
	CoverImage    *string       `json:"cover_image"`
	Notes         *string       `json:"notes" validate:"omitempty,max=5000"`
	ExternalLinks []interface{} `json:"external_links"`
}

// UpdateItemRequest patches an item; nil fields stay untouched.
// Empty string (or "TBD" for start_time) clears the column.
type UpdateItemRequest struct {
	DayID         *string       `json:"day_id"`
	Title         *string       `json:"title" validate:"omitempty,max=500"`
	StartTime     *string       `json:"start_time" validate:"omitempty,max=50"`
	EndTime       *string       `json:"end_time" validate:"omitempty,max=50"`
	LocationText  *string       `json:"location_text" validate:"omitempty,max=500"`
	CoverImage    *string       `json:"cover_image"`
	Notes         *string       `json:"notes" validate:"omitempty,max=5000"`
	ExternalLinks []interface{} `json:"external_links"`
}

type ItineraryResponse struct {
	Days []models.ItineraryDay `json:"days"`
}
