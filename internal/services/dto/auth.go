package dto

import "issavie_backend/internal/models"

// MagicLinkRequest starts the passwordless sign-in flow.
type MagicLinkRequest struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

// VerifyRequest exchanges a magic-link token for a session.
type VerifyRequest struct {
	Token string `json:"token" validate:"required,max=500"`
}

type MagicLinkResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

type VerifyResponse struct {
	Token string             `json:"token"`
	User  models.UserSummary `json:"user"`
}

type MeResponse struct {
	User models.UserSummary `json:"user"`
}
