package integration_test

import (
	"fmt"
	"net/http"
	"testing"

	"issavie_backend/internal/models"
	"issavie_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEssentials_LazyCreationAndPatch(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	organizerToken, organizer := helpers.CreateLoggedInUser(t, tx, "Organizer")
	memberToken, member := helpers.CreateLoggedInUser(t, tx, "Reader")

	start, end := helpers.TripDates(1)
	trip := helpers.CreateTrip(t, tx, organizer.ID, "Logistics Trip", start, end)
	helpers.AddMember(t, tx, trip.ID, member.ID, models.RoleMember)

	// First read creates the empty document.
	res, body := ts.SendRequest(t, tx, http.MethodGet,
		fmt.Sprintf("/api/v1/trips/%s/essentials", trip.ID), memberToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var count int64
	tx.Model(&models.TripEssentials{}).Where("trip_id = ?", trip.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	// Members cannot patch.
	res, _ = ts.SendRequest(t, tx, http.MethodPatch,
		fmt.Sprintf("/api/v1/trips/%s/essentials", trip.ID), memberToken, map[string]interface{}{
			"house_rules": "No rules",
		})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Organizers patch lists, objects and text fields in one go.
	res, body = ts.SendRequest(t, tx, http.MethodPatch,
		fmt.Sprintf("/api/v1/trips/%s/essentials", trip.ID), organizerToken, map[string]interface{}{
			"meeting_points": []map[string]interface{}{
				{"label": "Airport arrivals", "time": "10:00"},
			},
			"travel_details":    map[string]interface{}{"airline": "TAP", "ref": "XYZ123"},
			"house_rules":       "Quiet hours after 23:00",
			"hotel_information": "Hotel Blue, Rua Augusta 12",
		})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var essentials models.TripEssentials
	require.NoError(t, tx.Where("trip_id = ?", trip.ID).First(&essentials).Error)
	assert.Contains(t, string(essentials.MeetingPoints), "Airport arrivals")
	assert.Contains(t, string(essentials.TravelDetails), "TAP")
	require.NotNil(t, essentials.HouseRules)
	assert.Equal(t, "Quiet hours after 23:00", *essentials.HouseRules)
	require.NotNil(t, essentials.HotelInfo)
	assert.Equal(t, "Hotel Blue, Rua Augusta 12", *essentials.HotelInfo)

	// Untouched fields keep their defaults.
	assert.Equal(t, "[]", string(essentials.PackingList))
	assert.Nil(t, essentials.FlightInfo)

	// The update fans out to the other members.
	var notified int64
	tx.Model(&models.Notification{}).Where("user_id = ? AND type = ?", member.ID, "essentials_updated").Count(&notified)
	assert.EqualValues(t, 1, notified)
}

func TestEssentials_ClearTextField(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	organizerToken, organizer := helpers.CreateLoggedInUser(t, tx, "Organizer")

	start, end := helpers.TripDates(1)
	trip := helpers.CreateTrip(t, tx, organizer.ID, "Tidy Trip", start, end)

	res, _ := ts.SendRequest(t, tx, http.MethodPatch,
		fmt.Sprintf("/api/v1/trips/%s/essentials", trip.ID), organizerToken, map[string]interface{}{
			"house_rules": "Old rules",
		})
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Empty string clears the column.
	res, _ = ts.SendRequest(t, tx, http.MethodPatch,
		fmt.Sprintf("/api/v1/trips/%s/essentials", trip.ID), organizerToken, map[string]interface{}{
			"house_rules": "",
		})
	require.Equal(t, http.StatusOK, res.StatusCode)

	var essentials models.TripEssentials
	require.NoError(t, tx.Where("trip_id = ?", trip.ID).First(&essentials).Error)
	assert.Nil(t, essentials.HouseRules)
}
