package handlers

// AppHandlers holds every handler the router registers.
type AppHandlers struct {
	AuthHandler          *AuthHandler
	TripHandler          *TripHandler
	InviteHandler        *InviteHandler
	ItineraryHandler     *ItineraryHandler
	ChangeRequestHandler *ChangeRequestHandler
	AnnouncementHandler  *AnnouncementHandler
	EssentialsHandler    *EssentialsHandler
	NotificationHandler  *NotificationHandler
	AnalyticsHandler     *AnalyticsHandler
}
