package helpers

import (
	"fmt"
	"testing"
	"time"

	"issavie_backend/internal/auth"
	"issavie_backend/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// CreateUser inserts a user row inside the test transaction.
func CreateUser(t *testing.T, tx *gorm.DB, name, email string) *models.User {
	user := &models.User{Email: email, Name: name}
	require.NoError(t, tx.Create(user).Error, "failed to create test user")
	return user
}

// CreateLoggedInUser creates a user with a unique email and returns a
// valid bearer token for them. The magic-link flow is exercised in the
// auth tests; everywhere else we mint the JWT directly.
func CreateLoggedInUser(t *testing.T, tx *gorm.DB, name string) (string, *models.User) {
	email := fmt.Sprintf("user_%d@test.com", time.Now().UnixNano())
	user := CreateUser(t, tx, name, email)

	token, err := auth.GenerateToken(user.ID)
	require.NoError(t, err, "failed to generate token for test user")
	return token, user
}

// CreateTrip inserts a trip plus its creator's organizer membership
// and one day row per date, mirroring what the create endpoint does.
func CreateTrip(t *testing.T, tx *gorm.DB, creatorID string, name string, startDate, endDate time.Time) *models.Trip {
	trip := &models.Trip{
		Name:        name,
		Destination: "Test Destination",
		StartDate:   startDate,
		EndDate:     endDate,
		Timezone:    "UTC",
		CreatedBy:   creatorID,
	}
	require.NoError(t, tx.Create(trip).Error, "failed to create test trip")

	member := &models.TripMember{
		TripID: trip.ID,
		UserID: creatorID,
		Role:   models.RoleOrganizer,
		Status: models.MemberStatusActive,
	}
	require.NoError(t, tx.Create(member).Error, "failed to create organizer membership")

	position := 0
	for d := startDate; !d.After(endDate); d = d.AddDate(0, 0, 1) {
		day := &models.ItineraryDay{TripID: trip.ID, Date: d, Position: position}
		require.NoError(t, tx.Create(day).Error, "failed to create itinerary day")
		position++
	}
	return trip
}

// AddMember attaches a user to a trip with the given role.
func AddMember(t *testing.T, tx *gorm.DB, tripID, userID string, role models.MemberRole) *models.TripMember {
	member := &models.TripMember{
		TripID: tripID,
		UserID: userID,
		Role:   role,
		Status: models.MemberStatusActive,
	}
	require.NoError(t, tx.Create(member).Error, "failed to add test member")
	return member
}

// FirstDay returns the earliest day of a trip.
func FirstDay(t *testing.T, tx *gorm.DB, tripID string) *models.ItineraryDay {
	var day models.ItineraryDay
	require.NoError(t, tx.Where("trip_id = ?", tripID).Order("date ASC").First(&day).Error)
	return &day
}

// CreateItem inserts an itinerary item on a day.
func CreateItem(t *testing.T, tx *gorm.DB, tripID, dayID, creatorID, title string, startTime *string) *models.ItineraryItem {
	item := &models.ItineraryItem{
		TripID:    tripID,
		DayID:     dayID,
		Title:     title,
		StartTime: startTime,
		CreatedBy: creatorID,
		UpdatedBy: creatorID,
	}
	require.NoError(t, tx.Create(item).Error, "failed to create itinerary item")
	return item
}

// TripDates returns a start/end pair a few days out, safely inside the
// creation window.
func TripDates(days int) (time.Time, time.Time) {
	now := time.Now().UTC()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 7)
	return start, start.AddDate(0, 0, days-1)
}

// Ptr is a shorthand for taking the address of a literal.
func Ptr[T any](v T) *T {
	return &v
}
