package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/duetly/backend/internal/service"
	"github.com/duetly/backend/internal/types"
)

const cookieMaxAge = 7 * 24 * 60 * 60 // matches token lifetime

// AuthHandler serves registration, login, and the cookie-based session
// endpoint the frontends read the current user from.
type AuthHandler struct {
	authService   service.IAuthService
	coupleService service.ICoupleService
	cookieDomain  string
	secureCookies bool
}

func NewAuthHandler(authService service.IAuthService, coupleService service.ICoupleService, cookieDomain string, secureCookies bool) *AuthHandler {
	return &AuthHandler{
		authService:   authService,
		coupleService: coupleService,
		cookieDomain:  cookieDomain,
		secureCookies: secureCookies,
	}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
		auth.GET("/me", authRequired, h.Me)
	}
}

// Register creates an account and starts a session.
func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "user already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusCreated, types.DataEnvelope{Data: types.SessionResponse{User: user}})
}

// Login verifies credentials and starts a session.
func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	h.setSessionCookie(c, token)
	c.JSON(http.StatusOK, types.DataEnvelope{Data: types.SessionResponse{User: user}})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(types.AccessTokenCookie, "", -1, "/", h.cookieDomain, h.secureCookies, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Me returns the current user and their couple, if linked.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown user"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load user"})
		return
	}

	resp := types.SessionResponse{User: user}
	if user.CoupleID != nil {
		if couple, err := h.coupleService.GetByID(c.Request.Context(), *user.CoupleID); err == nil {
			resp.Couple = couple
		}
	}

	c.JSON(http.StatusOK, types.DataEnvelope{Data: resp})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(types.AccessTokenCookie, token, cookieMaxAge, "/", h.cookieDomain, h.secureCookies, true)
}
