package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/duetly/backend/internal/service"
	"github.com/duetly/backend/internal/types"
)

// CoupleHandler serves the couple profile for its partners and the public
// site payload for tenant subdomains.
type CoupleHandler struct {
	coupleService service.ICoupleService
}

func NewCoupleHandler(coupleService service.ICoupleService) *CoupleHandler {
	return &CoupleHandler{coupleService: coupleService}
}

func (h *CoupleHandler) RegisterRoutes(router *gin.RouterGroup, authRequired, coupleRequired gin.HandlerFunc) {
	couple := router.Group("/couple")
	{
		couple.GET("/site/:subdomain", h.PublicSite)
		couple.GET("", authRequired, coupleRequired, h.GetCouple)
		couple.PUT("", authRequired, coupleRequired, h.UpdateCouple)
		couple.POST("/invite/accept", authRequired, h.AcceptInvite)
	}
}

// PublicSite returns everything a tenant's public page renders from.
func (h *CoupleHandler) PublicSite(c *gin.Context) {
	site, err := h.coupleService.PublicSite(c.Request.Context(), c.Param("subdomain"))
	if err != nil {
		if errors.Is(err, service.ErrCoupleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "site not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load site"})
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: site})
}

// GetCouple returns the caller's couple profile.
func (h *CoupleHandler) GetCouple(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}

	couple, err := h.coupleService.GetByID(c.Request.Context(), coupleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load couple"})
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: couple})
}

// UpdateCouple changes the couple's public profile.
func (h *CoupleHandler) UpdateCouple(c *gin.Context) {
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}

	var req types.UpdateCoupleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	couple, err := h.coupleService.Update(c.Request.Context(), coupleID, &req)
	if err != nil {
		if errors.Is(err, service.ErrCoupleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "couple not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update couple"})
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: couple})
}

// AcceptInvite links the caller into an existing couple as the second
// partner.
func (h *CoupleHandler) AcceptInvite(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		CoupleID uuid.UUID `json:"couple_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	couple, err := h.coupleService.AcceptInvite(c.Request.Context(), req.CoupleID, userID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCoupleNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "couple not found"})
		case errors.Is(err, service.ErrCoupleFull):
			c.JSON(http.StatusConflict, gin.H{"error": "couple already has two partners"})
		case errors.Is(err, service.ErrAlreadyInCouple):
			c.JSON(http.StatusConflict, gin.H{"error": "you already belong to a couple"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to accept invite"})
		}
		return
	}
	c.JSON(http.StatusOK, types.DataEnvelope{Data: couple})
}
