package routes

import (
	"issavie_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler under /api/v1.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api/v1")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.TripHandler.RegisterRoutes(api)
		appHandlers.InviteHandler.RegisterRoutes(api)
		appHandlers.ItineraryHandler.RegisterRoutes(api)
		appHandlers.ChangeRequestHandler.RegisterRoutes(api)
		appHandlers.AnnouncementHandler.RegisterRoutes(api)
		appHandlers.EssentialsHandler.RegisterRoutes(api)
		appHandlers.NotificationHandler.RegisterRoutes(api)
		appHandlers.AnalyticsHandler.RegisterRoutes(api)
	}
}
