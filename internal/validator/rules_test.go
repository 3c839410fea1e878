package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvalidPatchKeys(t *testing.T) {
	t.Run("accepts the full allow-list", func(t *testing.T) {
		patch := map[string]interface{}{
			"title":         "New title",
			"startTime":     "10:00",
			"endTime":       "12:00",
			"locationText":  "Somewhere",
			"coverImage":    "https://example.com/img.jpg",
			"notes":         "Bring snacks",
			"externalLinks": []string{"https://example.com"},
		}
		assert.Empty(t, InvalidPatchKeys(patch))
	})

	t.Run("reports offenders sorted", func(t *testing.T) {
		patch := map[string]interface{}{
			"title":  "ok",
			"tripId": "nope",
			"dayId":  "nope",
			"status": "nope",
		}
		assert.Equal(t, []string{"dayId", "status", "tripId"}, InvalidPatchKeys(patch))
	})

	t.Run("keys are case sensitive", func(t *testing.T) {
		patch := map[string]interface{}{"Title": "nope"}
		assert.Equal(t, []string{"Title"}, InvalidPatchKeys(patch))
	})

	t.Run("empty patch is valid", func(t *testing.T) {
		assert.Empty(t, InvalidPatchKeys(map[string]interface{}{}))
	})
}
