package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"issavie_backend/internal/models"
	"issavie_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrip_CreatePrecreatesDays(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user := helpers.CreateLoggedInUser(t, tx, "Trip Creator")

	start := time.Now().UTC().AddDate(0, 0, 10)
	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/trips", token, map[string]interface{}{
		"name":        "Lisbon Getaway",
		"destination": "Lisbon, Portugal",
		"start_date":  start.Format("2006-01-02"),
		"end_date":    start.AddDate(0, 0, 3).Format("2006-01-02"),
	})
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var created struct {
		ID     string `json:"id"`
		MyRole string `json:"myRole"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &created))
	assert.Equal(t, "organizer", created.MyRole)

	// Four dates inclusive -> four day rows.
	var dayCount int64
	tx.Model(&models.ItineraryDay{}).Where("trip_id = ?", created.ID).Count(&dayCount)
	assert.EqualValues(t, 4, dayCount)

	var member models.TripMember
	require.NoError(t, tx.Where("trip_id = ? AND user_id = ?", created.ID, user.ID).First(&member).Error)
	assert.Equal(t, models.RoleOrganizer, member.Role)
	assert.Equal(t, models.MemberStatusActive, member.Status)
}

func TestTrip_CreateValidatesDates(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateLoggedInUser(t, tx, "Date Checker")

	cases := []struct {
		name  string
		start string
		end   string
	}{
		{"past start", time.Now().UTC().AddDate(0, 0, -2).Format("2006-01-02"), time.Now().UTC().Format("2006-01-02")},
		{"end before start", time.Now().UTC().AddDate(0, 0, 10).Format("2006-01-02"), time.Now().UTC().AddDate(0, 0, 5).Format("2006-01-02")},
		{"too far out", time.Now().UTC().AddDate(1, 0, 0).Format("2006-01-02"), time.Now().UTC().AddDate(1, 0, 2).Format("2006-01-02")},
		{"garbage", "not-a-date", "also-not-a-date"},
	}
	for _, tc := range cases {
		res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/trips", token, map[string]interface{}{
			"name":        "Bad Dates",
			"destination": "Nowhere",
			"start_date":  tc.start,
			"end_date":    tc.end,
		})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "%s: %s", tc.name, body)
	}
}

func TestTrip_ListShowsOnlyMemberships(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	tokenA, userA := helpers.CreateLoggedInUser(t, tx, "Member A")
	_, userB := helpers.CreateLoggedInUser(t, tx, "Member B")

	start, end := helpers.TripDates(3)
	tripA := helpers.CreateTrip(t, tx, userA.ID, "A's Trip", start, end)
	helpers.CreateTrip(t, tx, userB.ID, "B's Trip", start, end)

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/trips", tokenA, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, tripA.ID)
	assert.Contains(t, body, "A's Trip")
	assert.NotContains(t, body, "B's Trip")
}

func TestTrip_NonMemberGets404(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, owner := helpers.CreateLoggedInUser(t, tx, "Owner")
	outsiderToken, _ := helpers.CreateLoggedInUser(t, tx, "Outsider")

	start, end := helpers.TripDates(2)
	trip := helpers.CreateTrip(t, tx, owner.ID, "Private Trip", start, end)

	// Existence must not leak: 404, not 403.
	res, body := ts.SendRequest(t, tx, http.MethodGet, fmt.Sprintf("/api/v1/trips/%s", trip.ID), outsiderToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
	assert.Contains(t, body, "Trip not found or you are not a member")
}

func TestTrip_DeleteOrganizerOnly(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	ownerToken, owner := helpers.CreateLoggedInUser(t, tx, "Owner")
	memberToken, member := helpers.CreateLoggedInUser(t, tx, "Plain Member")

	start, end := helpers.TripDates(2)
	trip := helpers.CreateTrip(t, tx, owner.ID, "Doomed Trip", start, end)
	helpers.AddMember(t, tx, trip.ID, member.ID, models.RoleMember)

	res, _ := ts.SendRequest(t, tx, http.MethodDelete, fmt.Sprintf("/api/v1/trips/%s", trip.ID), memberToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, tx, http.MethodDelete, fmt.Sprintf("/api/v1/trips/%s", trip.ID), ownerToken, nil)
	assert.Equal(t, http.StatusNoContent, res.StatusCode)

	var count int64
	tx.Model(&models.Trip{}).Where("id = ?", trip.ID).Count(&count)
	assert.EqualValues(t, 0, count)
}
