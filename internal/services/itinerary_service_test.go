package services

import (
	"testing"

	"issavie_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func item(title string, startTime *string) models.ItineraryItem {
	return models.ItineraryItem{Title: title, StartTime: startTime}
}

func strptr(s string) *string { return &s }

func titles(items []models.ItineraryItem) []string {
	out := make([]string, 0, len(items))
	for _, i := range items {
		out = append(out, i.Title)
	}
	return out
}

func TestSortDayItems(t *testing.T) {
	t.Run("timed before untimed", func(t *testing.T) {
		items := []models.ItineraryItem{
			item("Ideas", nil),
			item("Dinner", strptr("19:30")),
			item("Breakfast", strptr("08:00")),
		}
		SortDayItems(items)
		assert.Equal(t, []string{"Breakfast", "Dinner", "Ideas"}, titles(items))
	})

	t.Run("TBD and empty count as untimed", func(t *testing.T) {
		items := []models.ItineraryItem{
			item("Zoo maybe", strptr("TBD")),
			item("Lunch", strptr("12:00")),
			item("Beach maybe", strptr("")),
			item("Aquarium maybe", strptr("  tbd ")),
		}
		SortDayItems(items)
		assert.Equal(t, []string{"Lunch", "Aquarium maybe", "Beach maybe", "Zoo maybe"}, titles(items))
	})

	t.Run("same time falls back to title", func(t *testing.T) {
		items := []models.ItineraryItem{
			item("Walk", strptr("10:00")),
			item("Coffee", strptr("10:00")),
		}
		SortDayItems(items)
		assert.Equal(t, []string{"Coffee", "Walk"}, titles(items))
	})

	t.Run("empty slice is fine", func(t *testing.T) {
		var items []models.ItineraryItem
		SortDayItems(items)
		assert.Empty(t, items)
	})
}

func TestClearableTime(t *testing.T) {
	assert.Nil(t, clearableTime(nil))
	assert.Nil(t, clearableTime(strptr("")))
	assert.Nil(t, clearableTime(strptr("TBD")))
	assert.Nil(t, clearableTime(strptr(" tbd ")))
	assert.Equal(t, "09:15", clearableTime(strptr("09:15")))
}

func TestPatchFields(t *testing.T) {
	patch := map[string]interface{}{
		"title":        "New title",
		"startTime":    "TBD",
		"endTime":      "17:00",
		"locationText": "Harbor",
		"notes":        "",
		// Keys a wider historical allow-list might have written.
		"legacyField": "ignored",
	}

	fields := patchFields(patch)

	assert.Equal(t, "New title", fields["title"])
	assert.Nil(t, fields["start_time"])
	assert.Equal(t, "17:00", fields["end_time"])
	assert.Equal(t, "Harbor", fields["location_text"])
	assert.Nil(t, fields["notes"])
	assert.NotContains(t, fields, "legacyField")
	assert.NotContains(t, fields, "legacy_field")
	assert.NotContains(t, fields, "cover_image")
}

func TestNormalizeDate(t *testing.T) {
	d, err := normalizeDate("2026-10-02")
	assert.NoError(t, err)
	assert.Equal(t, "2026-10-02T00:00:00Z", d.Format("2006-01-02T15:04:05Z07:00"))

	d, err = normalizeDate("2026-10-02T18:45:00+02:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, d.Hour())

	_, err = normalizeDate("02/10/2026")
	assert.Error(t, err)
}
