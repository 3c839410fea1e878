package handlers

import (
	"net/http"

	"issavie_backend/internal/auth"
	"issavie_backend/internal/middleware"
	"issavie_backend/internal/models"
	"issavie_backend/internal/services"
	"issavie_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ItineraryHandler struct {
	*BaseHandler
	policy           auth.AccessPolicy
	itineraryService services.ItineraryService
	exportService    services.ExportService
}

func NewItineraryHandler(base *BaseHandler, policy auth.AccessPolicy, itineraryService services.ItineraryService, exportService services.ExportService) *ItineraryHandler {
	return &ItineraryHandler{
		BaseHandler:      base,
		policy:           policy,
		itineraryService: itineraryService,
		exportService:    exportService,
	}
}

func (h *ItineraryHandler) RegisterRoutes(r *gin.RouterGroup) {
	trip := r.Group("/trips/:tripId")
	trip.Use(middleware.AuthMiddleware(), middleware.MembershipMiddleware())
	{
		trip.GET("/itinerary", h.GetItinerary)
		trip.POST("/export/itinerary.pdf", h.ExportPDF)

		items := trip.Group("/itinerary/items")
		items.Use(middleware.RequireTripRoles(h.policy, models.RoleOrganizer))
		{
			items.POST("", h.CreateItem)
			items.PATCH("/:itemId", h.UpdateItem)
			items.DELETE("/:itemId", h.DeleteItem)
		}
	}
}

func (h *ItineraryHandler) GetItinerary(c *gin.Context) {
	member := middleware.GetTripMember(c)

	itinerary, err := h.itineraryService.GetItinerary(h.GetDB(c), member.TripID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, itinerary)
}

func (h *ItineraryHandler) CreateItem(c *gin.Context) {
	member := middleware.GetTripMember(c)

	var req dto.CreateItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.itineraryService.CreateItem(h.GetDB(c), member.TripID, member.UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *ItineraryHandler) UpdateItem(c *gin.Context) {
	member := middleware.GetTripMember(c)

	var req dto.UpdateItemRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	item, err := h.itineraryService.UpdateItem(h.GetDB(c), member.TripID, c.Param("itemId"), member.UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *ItineraryHandler) DeleteItem(c *gin.Context) {
	member := middleware.GetTripMember(c)

	if err := h.itineraryService.DeleteItem(h.GetDB(c), member.TripID, c.Param("itemId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ItineraryHandler) ExportPDF(c *gin.Context) {
	trip := middleware.GetTrip(c)

	document, filename, err := h.exportService.ItineraryPDF(h.GetDB(c), trip)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", document)
}
