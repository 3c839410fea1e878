package handlers

import (
	"net/http"

	"issavie_backend/internal/middleware"
	"issavie_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type InviteHandler struct {
	*BaseHandler
	inviteService services.InviteService
}

func NewInviteHandler(base *BaseHandler, inviteService services.InviteService) *InviteHandler {
	return &InviteHandler{
		BaseHandler:   base,
		inviteService: inviteService,
	}
}

func (h *InviteHandler) RegisterRoutes(r *gin.RouterGroup) {
	invites := r.Group("/invites")
	{
		// Preview is public: the recipient has no account yet.
		invites.GET("/:token/preview", h.Preview)
		invites.POST("/:token/join", middleware.AuthMiddleware(), h.Join)
	}
}

func (h *InviteHandler) Preview(c *gin.Context) {
	preview, err := h.inviteService.Preview(h.GetDB(c), c.Param("token"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, preview)
}

func (h *InviteHandler) Join(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.inviteService.Join(h.GetDB(c), c.Param("token"), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
