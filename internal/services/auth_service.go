package services

import (
	"fmt"
	"strings"
	"time"

	"issavie_backend/internal/auth"
	"issavie_backend/internal/email"
	"issavie_backend/internal/logger"
	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/internal/services/dto"
	"issavie_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const magicLinkTTL = 15 * time.Minute

// AuthService implements the passwordless magic-link flow. Services
// receive the per-request *gorm.DB so the test harness can route all
// work through one rolled-back transaction.
type AuthService interface {
	RequestMagicLink(db *gorm.DB, req *dto.MagicLinkRequest) (*dto.MagicLinkResponse, error)
	VerifyMagicLink(db *gorm.DB, req *dto.VerifyRequest) (*dto.VerifyResponse, error)
	GetUser(db *gorm.DB, userID string) (*models.User, error)
}

type AuthServiceImpl struct {
	emailProvider email.Provider
	frontendURL   string
}

func NewAuthService(emailProvider email.Provider, frontendURL string) AuthService {
	return &AuthServiceImpl{
		emailProvider: emailProvider,
		frontendURL:   frontendURL,
	}
}

func (s *AuthServiceImpl) RequestMagicLink(db *gorm.DB, req *dto.MagicLinkRequest) (*dto.MagicLinkResponse, error) {
	userRepo := repositories.NewUserRepository(db)

	address := strings.ToLower(strings.TrimSpace(req.Email))
	token := auth.GenerateRandomToken()

	link := &models.MagicLink{
		Email:     address,
		Token:     token,
		ExpiresAt: time.Now().Add(magicLinkTTL),
	}
	if err := userRepo.CreateMagicLink(link); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url := fmt.Sprintf("%s/auth/verify?token=%s", s.frontendURL, token)
	if err := s.emailProvider.SendMagicLink(address, url); err != nil {
		// Delivery failure must not reveal whether the address exists;
		// log and report success like the happy path.
		logger.WithError(err).Warn("failed to send magic link", "email", address)
	}

	return &dto.MagicLinkResponse{OK: true, Message: "Magic link sent"}, nil
}

func (s *AuthServiceImpl) VerifyMagicLink(db *gorm.DB, req *dto.VerifyRequest) (*dto.VerifyResponse, error) {
	userRepo := repositories.NewUserRepository(db)

	link, err := userRepo.FindMagicLinkByToken(req.Token)
	if err != nil {
		if apperrors.Is(err, repositories.ErrMagicLinkNotFound) {
			return nil, apperrors.ErrInvalidMagicLink()
		}
		return nil, apperrors.InternalError(err)
	}
	if link.UsedAt != nil || time.Now().After(link.ExpiresAt) {
		return nil, apperrors.ErrInvalidMagicLink()
	}

	if err := userRepo.MarkMagicLinkUsed(link.ID, time.Now()); err != nil {
		return nil, apperrors.InternalError(err)
	}

	user, err := userRepo.FindByEmail(link.Email)
	if err != nil {
		if !apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.InternalError(err)
		}
		// First sign-in creates the account.
		user = &models.User{Email: link.Email}
		if err := userRepo.Create(user); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	token, err := auth.GenerateToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.VerifyResponse{
		Token: token,
		User:  user.Summary(),
	}, nil
}

func (s *AuthServiceImpl) GetUser(db *gorm.DB, userID string) (*models.User, error) {
	user, err := repositories.NewUserRepository(db).FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.NewUnauthorizedError("User not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}
