package dto

import (
	"time"

	"issavie_backend/internal/models"
)

type CreateAnnouncementRequest struct {
	Title *string `json:"title" validate:"omitempty,max=500"`
	Body  string  `json:"body" validate:"required,max=10000"`
}

type PinAnnouncementRequest struct {
	Pinned bool `json:"pinned"`
}

type AnnouncementResponse struct {
	ID        string              `json:"id"`
	TripID    string              `json:"tripId"`
	Title     *string             `json:"title"`
	Body      string              `json:"body"`
	Pinned    bool                `json:"pinned"`
	CreatedBy string              `json:"createdBy"`
	CreatedAt time.Time           `json:"created_at"`
	Creator   *models.UserSummary `json:"creator,omitempty"`
}

func NewAnnouncementResponse(ann *models.Announcement) *AnnouncementResponse {
	resp := &AnnouncementResponse{
		ID:        ann.ID,
		TripID:    ann.TripID,
		Title:     ann.Title,
		Body:      ann.Body,
		Pinned:    ann.Pinned,
		CreatedBy: ann.CreatedBy,
		CreatedAt: ann.CreatedAt,
	}
	if ann.Creator != nil {
		summary := ann.Creator.Summary()
		resp.Creator = &summary
	}
	return resp
}

type CreateCommentRequest struct {
	EntityType string `json:"entity_type" validate:"required,oneof=itinerary_item announcement"`
	EntityID   string `json:"entity_id" validate:"required,max=100"`
	Body       string `json:"body" validate:"required,max=10000"`
}

type CommentResponse struct {
	ID         string                   `json:"id"`
	TripID     string                   `json:"tripId"`
	EntityType models.CommentEntityType `json:"entityType"`
	EntityID   string                   `json:"entityId"`
	UserID     string                   `json:"userId"`
	Body       string                   `json:"body"`
	CreatedAt  time.Time                `json:"created_at"`
	User       *models.UserSummary      `json:"user,omitempty"`
}

func NewCommentResponse(comment *models.Comment) *CommentResponse {
	resp := &CommentResponse{
		ID:         comment.ID,
		TripID:     comment.TripID,
		EntityType: comment.EntityType,
		EntityID:   comment.EntityID,
		UserID:     comment.UserID,
		Body:       comment.Body,
		CreatedAt:  comment.CreatedAt,
	}
	if comment.User != nil {
		summary := comment.User.Summary()
		resp.User = &summary
	}
	return resp
}
