package services

import "issavie_backend/internal/email"

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService          AuthService
	TripService          TripService
	MemberService        MemberService
	InviteService        InviteService
	ItineraryService     ItineraryService
	ChangeRequestService ChangeRequestService
	AnnouncementService  AnnouncementService
	CommentService       CommentService
	EssentialsService    EssentialsService
	NotificationService  NotificationService
	AnalyticsService     AnalyticsService
	ExportService        ExportService
	EmailService         email.Provider
}
