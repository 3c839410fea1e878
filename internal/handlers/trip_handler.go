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

type TripHandler struct {
	*BaseHandler
	policy        auth.AccessPolicy
	tripService   services.TripService
	memberService services.MemberService
	inviteService services.InviteService
}

func NewTripHandler(base *BaseHandler, policy auth.AccessPolicy, tripService services.TripService, memberService services.MemberService, inviteService services.InviteService) *TripHandler {
	return &TripHandler{
		BaseHandler:   base,
		policy:        policy,
		tripService:   tripService,
		memberService: memberService,
		inviteService: inviteService,
	}
}

func (h *TripHandler) RegisterRoutes(r *gin.RouterGroup) {
	trips := r.Group("/trips")
	trips.Use(middleware.AuthMiddleware())
	{
		trips.POST("", h.CreateTrip)
		trips.GET("", h.ListTrips)
	}

	trip := trips.Group("/:tripId")
	trip.Use(middleware.MembershipMiddleware())
	{
		trip.GET("", h.GetTrip)
		trip.DELETE("", middleware.RequireTripRoles(h.policy, models.RoleOrganizer), h.DeleteTrip)
		trip.GET("/members", h.ListMembers)
		trip.PATCH("/members/:userId", h.UpdateMemberRole)
		trip.DELETE("/members/:userId", h.RemoveMember)
		trip.POST("/invites", middleware.RequireTripRoles(h.policy, models.RoleOrganizer, models.RoleCoOrganizer), h.CreateInvite)
	}
}

func (h *TripHandler) CreateTrip(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTripRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	trip, err := h.tripService.CreateTrip(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, trip)
}

func (h *TripHandler) ListTrips(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	trips, err := h.tripService.ListTrips(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, trips)
}

func (h *TripHandler) GetTrip(c *gin.Context) {
	trip := middleware.GetTrip(c)
	member := middleware.GetTripMember(c)

	c.JSON(http.StatusOK, h.tripService.GetTrip(trip, member))
}

func (h *TripHandler) DeleteTrip(c *gin.Context) {
	member := middleware.GetTripMember(c)

	if err := h.tripService.DeleteTrip(h.GetDB(c), member.TripID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TripHandler) ListMembers(c *gin.Context) {
	member := middleware.GetTripMember(c)

	members, err := h.memberService.ListMembers(h.GetDB(c), member.TripID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, members)
}

func (h *TripHandler) UpdateMemberRole(c *gin.Context) {
	actor := middleware.GetTripMember(c)

	var req dto.UpdateMemberRoleRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	updated, err := h.memberService.UpdateRole(h.GetDB(c), actor, c.Param("userId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *TripHandler) RemoveMember(c *gin.Context) {
	actor := middleware.GetTripMember(c)

	if err := h.memberService.RemoveMember(h.GetDB(c), actor, c.Param("userId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TripHandler) CreateInvite(c *gin.Context) {
	member := middleware.GetTripMember(c)

	invite, err := h.inviteService.CreateInvite(h.GetDB(c), member.TripID, member.UserID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, invite)
}
