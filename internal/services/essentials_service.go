package services

import (
	"encoding/json"

	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/internal/services/dto"
	"issavie_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EssentialsService interface {
	Get(db *gorm.DB, tripID string) (*models.TripEssentials, error)
	Update(db *gorm.DB, tripID, userID string, req *dto.UpdateEssentialsRequest) (*models.TripEssentials, error)
}

type EssentialsServiceImpl struct {
	notifications NotificationService
}

func NewEssentialsService(notifications NotificationService) EssentialsService {
	return &EssentialsServiceImpl{notifications: notifications}
}

// Get returns the singleton document, creating an empty one on first
// read so the frontend never sees a 404 here.
func (s *EssentialsServiceImpl) Get(db *gorm.DB, tripID string) (*models.TripEssentials, error) {
	essentialsRepo := repositories.NewEssentialsRepository(db)

	essentials, err := essentialsRepo.FindByTrip(tripID)
	if err == nil {
		return essentials, nil
	}
	if !apperrors.Is(err, repositories.ErrEssentialsNotFound) {
		return nil, apperrors.InternalError(err)
	}

	essentials = &models.TripEssentials{TripID: tripID}
	if err := essentialsRepo.Create(essentials); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return essentials, nil
}

func jsonColumn(fields map[string]interface{}, column string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	fields[column] = datatypes.JSON(raw)
	return nil
}

func (s *EssentialsServiceImpl) Update(db *gorm.DB, tripID, userID string, req *dto.UpdateEssentialsRequest) (*models.TripEssentials, error) {
	// Ensure the row exists before patching.
	if _, err := s.Get(db, tripID); err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}

	lists := map[string][]interface{}{
		"meeting_points":     req.MeetingPoints,
		"emergency_contacts": req.EmergencyContacts,
		"key_links":          req.KeyLinks,
		"packing_list":       req.PackingList,
	}
	for column, value := range lists {
		if value == nil {
			continue
		}
		if err := jsonColumn(fields, column, value); err != nil {
			return nil, apperrors.NewBadRequestError("Invalid " + column)
		}
	}

	objects := map[string]map[string]interface{}{
		"travel_details": req.TravelDetails,
		"documents_info": req.DocumentsInfo,
		"safety_health":  req.SafetyHealth,
		"local_info":     req.LocalInfo,
		"planning_info":  req.PlanningInfo,
		"personal_info":  req.PersonalInfo,
		"group_features": req.GroupFeatures,
	}
	for column, value := range objects {
		if value == nil {
			continue
		}
		if err := jsonColumn(fields, column, value); err != nil {
			return nil, apperrors.NewBadRequestError("Invalid " + column)
		}
	}

	texts := map[string]*string{
		"house_rules":       req.HouseRules,
		"hotel_info":        req.HotelInformation,
		"flight_info":       req.FlightInfo,
		"destination_rules": req.DestinationRules,
		"lodging_details":   req.LodgingDetails,
	}
	for column, value := range texts {
		if value == nil {
			continue
		}
		fields[column] = nullableString(*value)
	}

	essentialsRepo := repositories.NewEssentialsRepository(db)

	if len(fields) == 0 {
		essentials, err := essentialsRepo.FindByTrip(tripID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		return essentials, nil
	}

	essentials, err := essentialsRepo.Update(tripID, fields)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.notifications.NotifyTripMembers(db, tripID, userID, repositories.NotificationEssentialsUpdated, map[string]interface{}{
		"tripId": tripID,
	}); err != nil {
		return nil, err
	}
	return essentials, nil
}
