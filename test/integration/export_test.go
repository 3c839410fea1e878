package integration_test

import (
	"fmt"
	"net/http"
	"strings"
	"testing"

	"issavie_backend/internal/models"
	"issavie_backend/test/helpers"

	"github.com/stretchr/testify/assert"
)

func TestExport_ItineraryPDF(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, organizer := helpers.CreateLoggedInUser(t, tx, "Organizer")
	memberToken, member := helpers.CreateLoggedInUser(t, tx, "Traveler")

	start, end := helpers.TripDates(2)
	trip := helpers.CreateTrip(t, tx, organizer.ID, "Printable Trip", start, end)
	helpers.AddMember(t, tx, trip.ID, member.ID, models.RoleMember)
	day := helpers.FirstDay(t, tx, trip.ID)
	helpers.CreateItem(t, tx, trip.ID, day.ID, organizer.ID, "City walk", helpers.Ptr("10:00"))

	// Any member can export.
	res, body := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/trips/%s/export/itinerary.pdf", trip.ID), memberToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "application/pdf", res.Header.Get("Content-Type"))
	assert.Contains(t, res.Header.Get("Content-Disposition"), "attachment")
	assert.True(t, strings.HasPrefix(body, "%PDF"), "response should be a PDF document")
}

func TestExport_NonMemberGets404(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, organizer := helpers.CreateLoggedInUser(t, tx, "Organizer")
	outsiderToken, _ := helpers.CreateLoggedInUser(t, tx, "Outsider")

	start, end := helpers.TripDates(1)
	trip := helpers.CreateTrip(t, tx, organizer.ID, "Hidden Trip", start, end)

	res, _ := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/trips/%s/export/itinerary.pdf", trip.ID), outsiderToken, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
