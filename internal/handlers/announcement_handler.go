package handlers

import (
	"net/http"

	"issavie_backend/internal/auth"
	"issavie_backend/internal/middleware"
	"issavie_backend/internal/models"
	"issavie_backend/internal/repositories"
	"issavie_backend/internal/services"
	"issavie_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type AnnouncementHandler struct {
	*BaseHandler
	policy              auth.AccessPolicy
	announcementService services.AnnouncementService
	commentService      services.CommentService
}

func NewAnnouncementHandler(base *BaseHandler, policy auth.AccessPolicy, announcementService services.AnnouncementService, commentService services.CommentService) *AnnouncementHandler {
	return &AnnouncementHandler{
		BaseHandler:         base,
		policy:              policy,
		announcementService: announcementService,
		commentService:      commentService,
	}
}

func (h *AnnouncementHandler) RegisterRoutes(r *gin.RouterGroup) {
	trip := r.Group("/trips/:tripId")
	trip.Use(middleware.AuthMiddleware(), middleware.MembershipMiddleware())
	{
		trip.GET("/announcements", h.List)
		trip.POST("/announcements", middleware.RequireTripRoles(h.policy, models.RoleOrganizer, models.RoleCoOrganizer), h.Create)
		trip.PATCH("/announcements/:announcementId/pin", middleware.RequireTripRoles(h.policy, models.RoleOrganizer, models.RoleCoOrganizer), h.SetPinned)

		trip.GET("/comments", h.ListComments)
		trip.POST("/comments", h.CreateComment)
		trip.DELETE("/comments/:commentId", h.DeleteComment)
	}
}

func (h *AnnouncementHandler) List(c *gin.Context) {
	member := middleware.GetTripMember(c)

	announcements, err := h.announcementService.List(h.GetDB(c), member.TripID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, announcements)
}

func (h *AnnouncementHandler) Create(c *gin.Context) {
	member := middleware.GetTripMember(c)

	var req dto.CreateAnnouncementRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ann, err := h.announcementService.Create(h.GetDB(c), member.TripID, member.UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ann)
}

func (h *AnnouncementHandler) SetPinned(c *gin.Context) {
	member := middleware.GetTripMember(c)

	var req dto.PinAnnouncementRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	ann, err := h.announcementService.SetPinned(h.GetDB(c), member.TripID, c.Param("announcementId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, ann)
}

func (h *AnnouncementHandler) ListComments(c *gin.Context) {
	member := middleware.GetTripMember(c)

	var filter repositories.CommentFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	comments, err := h.commentService.List(h.GetDB(c), member.TripID, filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}

func (h *AnnouncementHandler) CreateComment(c *gin.Context) {
	member := middleware.GetTripMember(c)

	var req dto.CreateCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	comment, err := h.commentService.Create(h.GetDB(c), member.TripID, member.UserID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

func (h *AnnouncementHandler) DeleteComment(c *gin.Context) {
	member := middleware.GetTripMember(c)

	if err := h.commentService.Delete(h.GetDB(c), member, c.Param("commentId")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
