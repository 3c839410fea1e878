package validator

import "sort"

// AllowedPatchKeys is the full set of itinerary-item fields a change
// request may propose. Anything outside this set is rejected before a
// request row is created.
var AllowedPatchKeys = map[string]bool{
	"title":         true,
	"startTime":     true,
	"endTime":       true,
	"locationText":  true,
	"coverImage":    true,
	"notes":         true,
	"externalLinks": true,
}

// InvalidPatchKeys returns the sorted keys of patch that fall outside
// the allow-list. Empty result means the patch is acceptable.
func InvalidPatchKeys(patch map[string]interface{}) []string {
	var invalid []string
	for k := range patch {
		if !AllowedPatchKeys[k] {
			invalid = append(invalid, k)
		}
	}
	sort.Strings(invalid)
	return invalid
}
