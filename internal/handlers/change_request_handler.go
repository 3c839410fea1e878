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

type ChangeRequestHandler struct {
	*BaseHandler
	policy               auth.AccessPolicy
	changeRequestService services.ChangeRequestService
}

func NewChangeRequestHandler(base *BaseHandler, policy auth.AccessPolicy, changeRequestService services.ChangeRequestService) *ChangeRequestHandler {
	return &ChangeRequestHandler{
		BaseHandler:          base,
		policy:               policy,
		changeRequestService: changeRequestService,
	}
}

func (h *ChangeRequestHandler) RegisterRoutes(r *gin.RouterGroup) {
	trip := r.Group("/trips/:tripId")
	trip.Use(middleware.AuthMiddleware(), middleware.MembershipMiddleware())
	{
		trip.POST("/itinerary/items/:itemId/change-requests", h.Submit)
		trip.GET("/change-requests", h.List)

		// Decisions are the one place where co_organizer is not enough.
		decide := trip.Group("/change-requests/:requestId")
		decide.Use(middleware.RequireTripRoles(h.policy, models.RoleOrganizer))
		{
			decide.POST("/approve", h.Approve)
			decide.POST("/deny", h.Deny)
		}
	}
}

func (h *ChangeRequestHandler) Submit(c *gin.Context) {
	member := middleware.GetTripMember(c)

	var req dto.CreateChangeRequestRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	cr, err := h.changeRequestService.Submit(h.GetDB(c), member.TripID, c.Param("itemId"), member.UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, cr)
}

func (h *ChangeRequestHandler) List(c *gin.Context) {
	member := middleware.GetTripMember(c)

	var criteria dto.ChangeRequestCriteria
	if !h.BindAndValidate_Query(c, &criteria) {
		return
	}

	requests, err := h.changeRequestService.List(h.GetDB(c), member.TripID, &criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *ChangeRequestHandler) Approve(c *gin.Context) {
	member := middleware.GetTripMember(c)

	cr, err := h.changeRequestService.Approve(h.GetDB(c), member.TripID, c.Param("requestId"), member.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cr)
}

func (h *ChangeRequestHandler) Deny(c *gin.Context) {
	member := middleware.GetTripMember(c)

	cr, err := h.changeRequestService.Deny(h.GetDB(c), member.TripID, c.Param("requestId"), member.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cr)
}
