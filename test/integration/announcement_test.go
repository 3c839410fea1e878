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
)

func TestAnnouncement_PostAndPin(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, organizer := helpers.CreateLoggedInUser(t, tx, "Organizer")
	coToken, co := helpers.CreateLoggedInUser(t, tx, "Co-Organizer")
	memberToken, member := helpers.CreateLoggedInUser(t, tx, "Reader")

	start, end := helpers.TripDates(1)
	trip := helpers.CreateTrip(t, tx, organizer.ID, "Chatty Trip", start, end)
	helpers.AddMember(t, tx, trip.ID, co.ID, models.RoleCoOrganizer)
	helpers.AddMember(t, tx, trip.ID, member.ID, models.RoleMember)

	// Plain members cannot post.
	res, _ := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/trips/%s/announcements", trip.ID), memberToken, map[string]interface{}{
			"body": "Unauthorized megaphone",
		})
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	// Co-organizers can.
	res, body := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/trips/%s/announcements", trip.ID), coToken, map[string]interface{}{
			"title": "Packing reminder",
			"body":  "Bring sunscreen, the forecast is brutal.",
		})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID     string `json:"id"`
		Pinned bool   `json:"pinned"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.False(t, created.Pinned)

	// Every other member is notified.
	var count int64
	tx.Model(&models.Notification{}).Where("trip_id = ? AND type = ?", trip.ID, "announcement_posted").Count(&count)
	assert.EqualValues(t, 2, count)

	res, body = ts.SendRequest(t, tx, http.MethodPatch,
		fmt.Sprintf("/api/v1/trips/%s/announcements/%s/pin", trip.ID, created.ID), coToken, map[string]interface{}{
			"pinned": true,
		})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, `"pinned":true`)

	// Listing is open to all members, newest first.
	res, body = ts.SendRequest(t, tx, http.MethodGet,
		fmt.Sprintf("/api/v1/trips/%s/announcements", trip.ID), memberToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Packing reminder")
}

func TestComment_CreateListDelete(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	organizerToken, organizer := helpers.CreateLoggedInUser(t, tx, "Organizer")
	memberToken, member := helpers.CreateLoggedInUser(t, tx, "Commenter")
	otherToken, other := helpers.CreateLoggedInUser(t, tx, "Other Member")

	start, end := helpers.TripDates(1)
	trip := helpers.CreateTrip(t, tx, organizer.ID, "Discussion Trip", start, end)
	helpers.AddMember(t, tx, trip.ID, member.ID, models.RoleMember)
	helpers.AddMember(t, tx, trip.ID, other.ID, models.RoleMember)
	day := helpers.FirstDay(t, tx, trip.ID)
	item := helpers.CreateItem(t, tx, trip.ID, day.ID, organizer.ID, "Tapas crawl", helpers.Ptr("20:00"))

	res, body := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/trips/%s/comments", trip.ID), memberToken, map[string]interface{}{
			"entity_type": "itinerary_item",
			"entity_id":   item.ID,
			"body":        "Can we start earlier?",
		})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))

	// Filtered listing.
	res, body = ts.SendRequest(t, tx, http.MethodGet,
		fmt.Sprintf("/api/v1/trips/%s/comments?entity_type=itinerary_item&entity_id=%s", trip.ID, item.ID),
		otherToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Can we start earlier?")

	// A different member cannot delete someone else's comment.
	res, body = ts.SendRequest(t, tx, http.MethodDelete,
		fmt.Sprintf("/api/v1/trips/%s/comments/%s", trip.ID, created.ID), otherToken, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "your own comments")

	// The organizer can moderate anything.
	res, _ = ts.SendRequest(t, tx, http.MethodDelete,
		fmt.Sprintf("/api/v1/trips/%s/comments/%s", trip.ID, created.ID), organizerToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	// Soft delete hides it from listings but keeps the row.
	res, body = ts.SendRequest(t, tx, http.MethodGet,
		fmt.Sprintf("/api/v1/trips/%s/comments", trip.ID), memberToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.NotContains(t, body, "Can we start earlier?")

	var count int64
	tx.Unscoped().Model(&models.Comment{}).Where("id = ?", created.ID).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestComment_RejectsUnknownEntityType(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, organizer := helpers.CreateLoggedInUser(t, tx, "Organizer")

	start, end := helpers.TripDates(1)
	trip := helpers.CreateTrip(t, tx, organizer.ID, "Typed Trip", start, end)

	res, _ := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/trips/%s/comments", trip.ID), token, map[string]interface{}{
			"entity_type": "trip",
			"entity_id":   trip.ID,
			"body":        "Nice trip",
		})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}
