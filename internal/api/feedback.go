package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/duetly/backend/internal/service"
	"github.com/duetly/backend/internal/types"
)

// FeedbackHandler serves the feedback intake and the public stats counter.
type FeedbackHandler struct {
	feedbackService service.IFeedbackService
}

func NewFeedbackHandler(feedbackService service.IFeedbackService) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

func (h *FeedbackHandler) RegisterRoutes(router *gin.RouterGroup, authRequired, coupleRequired gin.HandlerFunc) {
	feedback := router.Group("/feedback")
	{
		feedback.POST("", authRequired, coupleRequired, h.CreateFeedback)
		feedback.GET("/stats", h.GetStats)
	}
}

// CreateFeedback validates and persists a feedback submission. Validation
// failures reject the request before anything is stored; the couple and user
// identity come from the session, never from the body.
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	coupleID, ok := currentCoupleID(c)
	if !ok {
		return
	}

	var req types.CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	feedback, err := h.feedbackService.Submit(c.Request.Context(), userID, coupleID, &req)
	if err != nil {
		if errors.Is(err, service.ErrFeedbackCoupleRequired) {
			c.JSON(http.StatusForbidden, gin.H{"error": "couple required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create feedback"})
		return
	}

	c.JSON(http.StatusCreated, types.DataEnvelope{Data: feedback})
}

// GetStats returns the submission count and the advertised founder-slot
// ceiling. The ceiling is informational; intake never enforces it.
func (h *FeedbackHandler) GetStats(c *gin.Context) {
	stats, err := h.feedbackService.Stats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
