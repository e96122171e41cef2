package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duetly/backend/internal/service"
	"github.com/duetly/backend/internal/types"
)

// DashboardHandler serves the authenticated dashboard payload.
type DashboardHandler struct {
	authService    service.IAuthService
	coupleService  service.ICoupleService
	contentService *service.ContentService
}

// NewDashboardHandler creates a new DashboardHandler
func NewDashboardHandler(authService service.IAuthService, coupleService service.ICoupleService, contentService *service.ContentService) *DashboardHandler {
	return &DashboardHandler{
		authService:    authService,
		coupleService:  coupleService,
		contentService: contentService,
	}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	router.GET("/dashboard", authRequired, h.GetDashboard)
}

// GetDashboard returns the dashboard state for the current user. Users with
// no linked couple get needsCouple=true so the frontend shows the
// create-couple prompt instead of the site-management panel.
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	resp := types.DashboardResponse{User: user}
	if user.CoupleID == nil {
		resp.NeedsCouple = true
		c.JSON(http.StatusOK, resp)
		return
	}

	couple, err := h.coupleService.GetByID(c.Request.Context(), *user.CoupleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load couple"})
		return
	}
	resp.Couple = couple

	stats, err := h.contentService.Stats(c.Request.Context(), couple.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	resp.Stats = *stats

	c.JSON(http.StatusOK, resp)
}
