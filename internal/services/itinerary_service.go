package services

import (
	"encoding/json"
	"sort"
	"strings"

	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/internal/services/dto"
	"issavie_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ItineraryService interface {
	GetItinerary(db *gorm.DB, tripID string) (*dto.ItineraryResponse, error)
	CreateItem(db *gorm.DB, tripID, userID string, req *dto.CreateItemRequest) (*models.ItineraryItem, error)
	UpdateItem(db *gorm.DB, tripID, itemID, userID string, req *dto.UpdateItemRequest) (*models.ItineraryItem, error)
	DeleteItem(db *gorm.DB, tripID, itemID string) error
}

type ItineraryServiceImpl struct {
	notifications NotificationService
}

func NewItineraryService(notifications NotificationService) ItineraryService {
	return &ItineraryServiceImpl{notifications: notifications}
}

// timeSortKey orders items within a day. Items without a start time
// (nil, empty or the literal "TBD") always sort after timed ones.
func timeSortKey(startTime *string) (string, bool) {
	if startTime == nil {
		return "", false
	}
	t := strings.TrimSpace(*startTime)
	if t == "" || strings.EqualFold(t, "TBD") {
		return "", false
	}
	return t, true
}

// SortDayItems applies the stable in-day ordering: timed items by
// start time then title, untimed items last by title.
func SortDayItems(items []models.ItineraryItem) {
	sort.SliceStable(items, func(i, j int) bool {
		ti, okI := timeSortKey(items[i].StartTime)
		tj, okJ := timeSortKey(items[j].StartTime)
		if okI != okJ {
			return okI
		}
		if okI && ti != tj {
			return ti < tj
		}
		return items[i].Title < items[j].Title
	})
}

func (s *ItineraryServiceImpl) GetItinerary(db *gorm.DB, tripID string) (*dto.ItineraryResponse, error) {
	days, err := repositories.NewItineraryRepository(db).ListDaysWithItems(tripID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	for i := range days {
		SortDayItems(days[i].Items)
	}
	return &dto.ItineraryResponse{Days: days}, nil
}

func marshalLinks(links []interface{}) (datatypes.JSON, error) {
	if links == nil {
		return datatypes.JSON([]byte("[]")), nil
	}
	raw, err := json.Marshal(links)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// resolveDay finds the target day for an item: by id when day_id is
// given, otherwise by date, creating the day row for a new date.
func resolveDay(repo repositories.ItineraryRepository, tripID, dayID, date string) (*models.ItineraryDay, error) {
	if dayID != "" {
		day, err := repo.FindDay(dayID, tripID)
		if err != nil {
			if apperrors.Is(err, repositories.ErrDayNotFound) {
				return nil, apperrors.ErrDayNotFound()
			}
			return nil, apperrors.InternalError(err)
		}
		return day, nil
	}

	if date == "" {
		return nil, apperrors.ErrDayOrDateRequired()
	}
	normalized, err := normalizeDate(date)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid date")
	}

	day, err := repo.FindDayByDate(tripID, normalized)
	if err == nil {
		return day, nil
	}
	if !apperrors.Is(err, repositories.ErrDayNotFound) {
		return nil, apperrors.InternalError(err)
	}

	count, err := repo.CountDays(tripID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	day = &models.ItineraryDay{
		TripID:   tripID,
		Date:     normalized,
		Position: int(count),
	}
	if err := repo.CreateDay(day); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return day, nil
}

func (s *ItineraryServiceImpl) CreateItem(db *gorm.DB, tripID, userID string, req *dto.CreateItemRequest) (*models.ItineraryItem, error) {
	itineraryRepo := repositories.NewItineraryRepository(db)

	day, err := resolveDay(itineraryRepo, tripID, req.DayID, req.Date)
	if err != nil {
		return nil, err
	}

	links, err := marshalLinks(req.ExternalLinks)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid external_links")
	}

	item := &models.ItineraryItem{
		TripID:        tripID,
		DayID:         day.ID,
		Title:         req.Title,
		StartTime:     req.StartTime,
		EndTime:       req.EndTime,
		LocationText:  req.LocationText,
		CoverImage:    req.CoverImage,
		Notes:         req.Notes,
		ExternalLinks: links,
		CreatedBy:     userID,
		UpdatedBy:     userID,
	}
	if err := itineraryRepo.CreateItem(item); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.notifications.NotifyTripMembers(db, tripID, userID, repositories.NotificationItineraryItemCreated, map[string]interface{}{
		"itemId": item.ID,
		"title":  item.Title,
	}); err != nil {
		return nil, err
	}
	return item, nil
}

// clearableTime maps the wire conventions for start/end time onto the
// column: "" and "TBD" both clear it.
func clearableTime(value *string) interface{} {
	if value == nil {
		return nil
	}
	t := strings.TrimSpace(*value)
	if t == "" || strings.EqualFold(t, "TBD") {
		return nil
	}
	return t
}

func (s *ItineraryServiceImpl) UpdateItem(db *gorm.DB, tripID, itemID, userID string, req *dto.UpdateItemRequest) (*models.ItineraryItem, error) {
	itineraryRepo := repositories.NewItineraryRepository(db)

	if _, err := itineraryRepo.FindItem(itemID, tripID); err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrItemNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	fields := map[string]interface{}{"updated_by": userID}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.DayID != nil {
		day, err := resolveDay(itineraryRepo, tripID, *req.DayID, "")
		if err != nil {
			return nil, err
		}
		fields["day_id"] = day.ID
	}
	if req.StartTime != nil {
		fields["start_time"] = clearableTime(req.StartTime)
	}
	if req.EndTime != nil {
		fields["end_time"] = clearableTime(req.EndTime)
	}
	if req.LocationText != nil {
		fields["location_text"] = nullableString(*req.LocationText)
	}
	if req.CoverImage != nil {
		fields["cover_image"] = nullableString(*req.CoverImage)
	}
	if req.Notes != nil {
		fields["notes"] = nullableString(*req.Notes)
	}
	if req.ExternalLinks != nil {
		links, err := marshalLinks(req.ExternalLinks)
		if err != nil {
			return nil, apperrors.NewBadRequestError("Invalid external_links")
		}
		fields["external_links"] = links
	}

	if err := itineraryRepo.UpdateItem(itemID, fields); err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return nil, apperrors.ErrItemNotFound()
		}
		return nil, apperrors.InternalError(err)
	}

	item, err := itineraryRepo.FindItem(itemID, tripID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.notifications.NotifyTripMembers(db, tripID, userID, repositories.NotificationItineraryItemUpdated, map[string]interface{}{
		"itemId": item.ID,
		"title":  item.Title,
	}); err != nil {
		return nil, err
	}
	return item, nil
}

func nullableString(value string) interface{} {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}

func (s *ItineraryServiceImpl) DeleteItem(db *gorm.DB, tripID, itemID string) error {
	itineraryRepo := repositories.NewItineraryRepository(db)

	if _, err := itineraryRepo.FindItem(itemID, tripID); err != nil {
		if apperrors.Is(err, repositories.ErrItemNotFound) {
			return apperrors.ErrItemNotFound()
		}
		return apperrors.InternalError(err)
	}
	if err := itineraryRepo.DeleteItem(itemID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
