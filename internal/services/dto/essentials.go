package dto

// UpdateEssentialsRequest patches the essentials document. Nil fields
// stay untouched; list fields replace the stored array wholesale and
// object fields replace the stored object.
type UpdateEssentialsRequest struct {
	MeetingPoints     []interface{} `json:"meeting_points"`
	EmergencyContacts []interface{} `json:"emergency_contacts"`
	KeyLinks          []interface{} `json:"key_links"`
	PackingList       []interface{} `json:"packing_list"`

	TravelDetails map[string]interface{} `json:"travel_details"`
	DocumentsInfo map[string]interface{} `json:"documents_info"`
	SafetyHealth  map[string]interface{} `json:"safety_health"`
	LocalInfo     map[string]interface{} `json:"local_info"`
	PlanningInfo  map[string]interface{} `json:"planning_info"`
	PersonalInfo  map[string]interface{} `json:"personal_info"`
	GroupFeatures map[string]interface{} `json:"group_features"`

	HouseRules       *string `json:"house_rules"`
	HotelInformation *string `json:"hotel_information"`
	FlightInfo       *string `json:"flight_information"`
	DestinationRules *string `json:"destination_rules"`
	LodgingDetails   *string `json:"lodging_details"`
}
