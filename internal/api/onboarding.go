package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duetly/backend/internal/service"
	"github.com/duetly/backend/internal/types"
)

// OnboardingHandler serves the subdomain-availability check and the claim
// flow that creates a couple.
type OnboardingHandler struct {
	coupleService service.ICoupleService
}

func NewOnboardingHandler(coupleService service.ICoupleService) *OnboardingHandler {
	return &OnboardingHandler{coupleService: coupleService}
}

func (h *OnboardingHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	onboarding := router.Group("/onboarding")
	{
		onboarding.GET("/check-subdomain", h.CheckSubdomain)
		onboarding.POST("/claim", authRequired, h.Claim)
	}
}

// CheckSubdomain reports whether a subdomain is still available. The tenant
// gateway treats "available" as "no such site".
func (h *OnboardingHandler) CheckSubdomain(c *gin.Context) {
	subdomain := c.Query("subdomain")
	if subdomain == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subdomain query parameter is required"})
		return
	}

	available, err := h.coupleService.SubdomainAvailable(c.Request.Context(), subdomain)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check subdomain"})
		return
	}

	c.JSON(http.StatusOK, types.DataEnvelope{Data: types.SubdomainCheckResponse{Available: available}})
}

// Claim creates the caller's couple and claims the requested subdomain.
func (h *OnboardingHandler) Claim(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.ClaimSubdomainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	couple, err := h.coupleService.ClaimSubdomain(c.Request.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSubdomainInvalid):
			c.JSON(http.StatusBadRequest, gin.H{"error": "subdomain is invalid or reserved"})
		case errors.Is(err, service.ErrSubdomainTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "subdomain is already taken"})
		case errors.Is(err, service.ErrAlreadyInCouple):
			c.JSON(http.StatusConflict, gin.H{"error": "you already have a couple site"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to claim subdomain"})
		}
		return
	}

	c.JSON(http.StatusCreated, types.DataEnvelope{Data: couple})
}
