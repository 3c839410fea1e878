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

type EssentialsHandler struct {
	*BaseHandler
	policy            auth.AccessPolicy
	essentialsService services.EssentialsService
}

func NewEssentialsHandler(base *BaseHandler, policy auth.AccessPolicy, essentialsService services.EssentialsService) *EssentialsHandler {
	return &EssentialsHandler{
		BaseHandler:       base,
		policy:            policy,
		essentialsService: essentialsService,
	}
}

func (h *EssentialsHandler) RegisterRoutes(r *gin.RouterGroup) {
	trip := r.Group("/trips/:tripId")
	trip.Use(middleware.AuthMiddleware(), middleware.MembershipMiddleware())
	{
		trip.GET("/essentials", h.Get)
		trip.PATCH("/essentials", middleware.RequireTripRoles(h.policy, models.RoleOrganizer, models.RoleCoOrganizer), h.Update)
	}
}

func (h *EssentialsHandler) Get(c *gin.Context) {
	member := middleware.GetTripMember(c)

	essentials, err := h.essentialsService.Get(h.GetDB(c), member.TripID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, essentials)
}

func (h *EssentialsHandler) Update(c *gin.Context) {
	member := middleware.GetTripMember(c)

	var req dto.UpdateEssentialsRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	essentials, err := h.essentialsService.Update(h.GetDB(c), member.TripID, member.UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, essentials)
}
