package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"issavie_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuth_MagicLinkFlow(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	// Request a link for a brand new address.
	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/magic-link", "", map[string]interface{}{
		"email": "Fresh.Signup@Test.com",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "Magic link sent")

	// The link row is stored lowercased with an expiry.
	var link models.MagicLink
	require.NoError(t, tx.Where("email = ?", "fresh.signup@test.com").First(&link).Error)
	assert.Nil(t, link.UsedAt)
	assert.True(t, link.ExpiresAt.After(time.Now()))

	// Verify creates the user on first sign-in.
	res, body = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/verify", "", map[string]interface{}{
		"token": link.Token,
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	var verifyResp struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &verifyResp))
	assert.NotEmpty(t, verifyResp.Token)
	assert.Equal(t, "fresh.signup@test.com", verifyResp.User.Email)

	// The session token works against /auth/me.
	res, body = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/auth/me", verifyResp.Token, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Contains(t, body, "fresh.signup@test.com")

	// The link is single use.
	res, body = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/verify", "", map[string]interface{}{
		"token": link.Token,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "Invalid or expired link")
}

func TestAuth_ExpiredLinkRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	link := &models.MagicLink{
		Email:     "late@test.com",
		Token:     "expired-token-for-test",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, tx.Create(link).Error)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/verify", "", map[string]interface{}{
		"token": link.Token,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestAuth_InvalidEmailRejected(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, body := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/auth/magic-link", "", map[string]interface{}{
		"email": "not-an-email",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestAuth_MeRequiresToken(t *testing.T) {
	t.Parallel()

	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/auth/me", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/auth/me", "garbage-token", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
