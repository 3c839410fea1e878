package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"issavie_backend/internal/auth"
	"issavie_backend/internal/models"
	"issavie_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvite_FullJoinFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	organizerToken, organizer := helpers.CreateLoggedInUser(t, tx, "Host")
	joinerToken, joiner := helpers.CreateLoggedInUser(t, tx, "Joiner")

	start, end := helpers.TripDates(3)
	trip := helpers.CreateTrip(t, tx, organizer.ID, "Open Trip", start, end)

	// Create the invite link.
	res, body := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/trips/%s/invites", trip.ID), organizerToken, nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var invite struct {
		URL       string `json:"url"`
		Token     string `json:"token"`
		ExpiresIn string `json:"expiresIn"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &invite))
	assert.NotEmpty(t, invite.Token)
	assert.Contains(t, invite.URL, invite.Token)

	// Only the hash hits the database.
	var stored models.Invite
	require.NoError(t, tx.Where("trip_id = ?", trip.ID).First(&stored).Error)
	assert.NotEqual(t, invite.Token, stored.TokenHash)
	assert.Equal(t, auth.HashToken(invite.Token), stored.TokenHash)

	// Preview is public.
	res, body = ts.SendRequest(t, tx, http.MethodGet,
		fmt.Sprintf("/api/v1/invites/%s/preview", invite.Token), "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Open Trip")

	// Joining creates a plain membership.
	res, body = ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/invites/%s/join", invite.Token), joinerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var joined struct {
		AlreadyMember bool `json:"alreadyMember"`
		Membership    struct {
			Role string `json:"role"`
		} `json:"membership"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &joined))
	assert.False(t, joined.AlreadyMember)
	assert.Equal(t, "member", joined.Membership.Role)

	// Joining again is idempotent.
	res, body = ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/invites/%s/join", invite.Token), joinerToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &joined))
	assert.True(t, joined.AlreadyMember)

	_ = joiner
}

func TestInvite_RejoinAfterRemovalReactivates(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	organizerToken, organizer := helpers.CreateLoggedInUser(t, tx, "Host")
	rejoinToken, rejoiner := helpers.CreateLoggedInUser(t, tx, "Rejoiner")

	start, end := helpers.TripDates(2)
	trip := helpers.CreateTrip(t, tx, organizer.ID, "Second Chance Trip", start, end)

	// Former co-organizer, since removed.
	former := helpers.AddMember(t, tx, trip.ID, rejoiner.ID, models.RoleCoOrganizer)
	require.NoError(t, tx.Model(former).Update("status", models.MemberStatusRemoved).Error)

	res, body := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/trips/%s/invites", trip.ID), organizerToken, nil)
	assert.Equal(t, http.StatusCreated, res.StatusCode, body)

	var invite struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &invite))

	res, body = ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/invites/%s/join", invite.Token), rejoinToken, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	// Reactivation resets the role to plain member.
	var membership models.TripMember
	require.NoError(t, tx.Where("trip_id = ? AND user_id = ?", trip.ID, rejoiner.ID).First(&membership).Error)
	assert.Equal(t, models.MemberStatusActive, membership.Status)
	assert.Equal(t, models.RoleMember, membership.Role)
}

func TestInvite_InvalidTokenRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, _ := helpers.CreateLoggedInUser(t, tx, "Wanderer")

	res, body := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/invites/not-a-real-token/preview", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "Invalid or expired invite link")

	res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/invites/not-a-real-token/join", token, nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestInvite_MemberCannotCreate(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	_, organizer := helpers.CreateLoggedInUser(t, tx, "Host")
	memberToken, member := helpers.CreateLoggedInUser(t, tx, "Plain")

	start, end := helpers.TripDates(2)
	trip := helpers.CreateTrip(t, tx, organizer.ID, "Closed Trip", start, end)
	helpers.AddMember(t, tx, trip.ID, member.ID, models.RoleMember)

	res, _ := ts.SendRequest(t, tx, http.MethodPost,
		fmt.Sprintf("/api/v1/trips/%s/invites", trip.ID), memberToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
