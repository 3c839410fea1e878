package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"issavie_backend/internal/models"
	"issavie_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func createTestNotification(t *testing.T, tx *gorm.DB, userID, tripID, eventType string) models.Notification {
	notification := models.Notification{
		UserID:  userID,
		TripID:  tripID,
		Type:    eventType,
		Payload: datatypes.JSON(`{"source":"test"}`),
	}
	require.NoError(t, tx.Create(&notification).Error)
	return notification
}

func TestNotification_UserFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateLoggedInUser(t, tx, "Recipient")
	start, end := helpers.TripDates(1)
	trip := helpers.CreateTrip(t, tx, user.ID, "Notify Trip", start, end)

	// Nothing yet.
	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/notifications/unread-count", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var unread struct {
		Count int `json:"unread_count"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &unread))
	assert.Equal(t, 0, unread.Count)

	first := createTestNotification(t, tx, user.ID, trip.ID, "announcement_posted")
	createTestNotification(t, tx, user.ID, trip.ID, "itinerary_updated")

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/notifications/unread-count", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &unread))
	assert.Equal(t, 2, unread.Count)

	// Listing carries the trip summary for rendering.
	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/notifications", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "announcement_posted")
	assert.Contains(t, body, "Notify Trip")

	// Mark one read.
	res, _ = ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/notifications/%s/read", first.ID), token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/notifications/unread-count", token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	require.NoError(t, json.Unmarshal([]byte(body), &unread))
	assert.Equal(t, 1, unread.Count)
}

func TestNotification_CannotReadOthers(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, owner := helpers.CreateLoggedInUser(t, tx, "Owner")
	intruderToken, _ := helpers.CreateLoggedInUser(t, tx, "Intruder")

	start, end := helpers.TripDates(1)
	trip := helpers.CreateTrip(t, tx, owner.ID, "Private Inbox", start, end)
	notification := createTestNotification(t, tx, owner.ID, trip.ID, "announcement_posted")

	res, _ := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/notifications/%s/read", notification.ID), intruderToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)

	var stored models.Notification
	require.NoError(t, tx.Where("id = ?", notification.ID).First(&stored).Error)
	assert.Nil(t, stored.ReadAt)
}
