package services

import (
	"time"

	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/internal/services/dto"
	"issavie_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Trips may start at most this far in the future.
const maxTripLeadTime = 6 * 31 * 24 * time.Hour

type TripService interface {
	CreateTrip(db *gorm.DB, userID string, req *dto.CreateTripRequest) (*dto.TripResponse, error)
	ListTrips(db *gorm.DB, userID string) ([]dto.TripResponse, error)
	GetTrip(trip *models.Trip, member *models.TripMember) *dto.TripResponse
	DeleteTrip(db *gorm.DB, tripID string) error
}

type TripServiceImpl struct{}

func NewTripService() TripService {
	return &TripServiceImpl{}
}

// normalizeDate parses an ISO date (or datetime) and truncates it to
// start of day UTC.
func normalizeDate(value string) (time.Time, error) {
	var parsed time.Time
	var err error
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		parsed, err = time.Parse(layout, value)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

func (s *TripServiceImpl) CreateTrip(db *gorm.DB, userID string, req *dto.CreateTripRequest) (*dto.TripResponse, error) {
	startDate, err := normalizeDate(req.StartDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid start_date")
	}
	endDate, err := normalizeDate(req.EndDate)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid end_date")
	}

	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if startDate.Before(today) {
		return nil, apperrors.NewBadRequestError("start_date cannot be in the past")
	}
	if startDate.After(today.Add(maxTripLeadTime)) {
		return nil, apperrors.NewBadRequestError("start_date is too far in the future")
	}
	if endDate.Before(startDate) {
		return nil, apperrors.NewBadRequestError("end_date must be on or after start_date")
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = "UTC"
	}

	trip := &models.Trip{
		Name:        req.Name,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		Timezone:    timezone,
		CreatedBy:   userID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		tripRepo := repositories.NewTripRepository(tx)
		memberRepo := repositories.NewMemberRepository(tx)

		if err := tripRepo.Create(trip); err != nil {
			return err
		}

		member := &models.TripMember{
			TripID: trip.ID,
			UserID: userID,
			Role:   models.RoleOrganizer,
			Status: models.MemberStatusActive,
		}
		if err := memberRepo.Create(member); err != nil {
			return err
		}

		// One day row per date in the range, inclusive.
		var days []models.ItineraryDay
		position := 0
		for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
			days = append(days, models.ItineraryDay{
				TripID:   trip.ID,
				Date:     d,
				Position: position,
			})
			position++
		}
		return tripRepo.CreateDays(days)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TripResponse{Trip: *trip, MyRole: models.RoleOrganizer}, nil
}

func (s *TripServiceImpl) ListTrips(db *gorm.DB, userID string) ([]dto.TripResponse, error) {
	memberships, err := repositories.NewMemberRepository(db).ListActiveForUser(userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	trips := make([]dto.TripResponse, 0, len(memberships))
	for _, m := range memberships {
		if m.Trip == nil {
			continue
		}
		trips = append(trips, dto.TripResponse{Trip: *m.Trip, MyRole: m.Role})
	}
	return trips, nil
}

// GetTrip shapes the trip already resolved by the membership middleware.
func (s *TripServiceImpl) GetTrip(trip *models.Trip, member *models.TripMember) *dto.TripResponse {
	return &dto.TripResponse{Trip: *trip, MyRole: member.Role}
}

func (s *TripServiceImpl) DeleteTrip(db *gorm.DB, tripID string) error {
	if err := repositories.NewTripRepository(db).Delete(tripID); err != nil {
		if apperrors.Is(err, repositories.ErrTripNotFound) {
			return apperrors.ErrTripNotVisible()
		}
		return apperrors.InternalError(err)
	}
	return nil
}
