package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/duetly/backend/config"
	"github.com/duetly/backend/internal/api"
	"github.com/duetly/backend/internal/database"
	"github.com/duetly/backend/internal/middleware"
	"github.com/duetly/backend/internal/service"
)

// Deps carries the external collaborators the router wires together.
type Deps struct {
	DB           *gorm.DB
	HealthDB     *database.DB
	Redis        *redis.Client
	ImageService service.IImageService
	EmailService service.IEmailService
}

// SetupRouter configures the application routes
func SetupRouter(cfg *config.Config, deps Deps) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS(cfg.PrimaryDomain, "http://"+cfg.LocalDomain, "http://localhost:3000"))

	// Services
	var cache *service.CacheService
	if deps.Redis != nil {
		cache = service.NewCacheService(deps.Redis)
	}
	authService := service.NewAuthService(deps.DB, cfg.JWTSecret)
	coupleService := service.NewCoupleService(deps.DB, cache)
	feedbackService := service.NewFeedbackService(deps.DB, cache, deps.EmailService)
	contentService := service.NewContentService(deps.DB)

	// Shared middleware
	authRequired := middleware.AuthMiddleware(authService)
	coupleRequired := middleware.RequireCouple(deps.DB)

	router.GET("/health", func(c *gin.Context) {
		if deps.HealthDB != nil {
			if err := deps.HealthDB.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	if deps.Redis != nil {
		limiter := middleware.NewRateLimiter(deps.Redis, middleware.RateLimitConfig{
			Window:    time.Minute,
			Limit:     120,
			KeyPrefix: "ratelimit",
		})
		v1.Use(limiter.RateLimitMiddleware())
	}

	secureCookies := config.IsProduction()
	api.NewAuthHandler(authService, coupleService, cfg.CookieDomain, secureCookies).RegisterRoutes(v1, authRequired)
	api.NewOnboardingHandler(coupleService).RegisterRoutes(v1, authRequired)
	api.NewCoupleHandler(coupleService).RegisterRoutes(v1, authRequired, coupleRequired)
	api.NewFeedbackHandler(feedbackService).RegisterRoutes(v1, authRequired, coupleRequired)
	api.NewDashboardHandler(authService, coupleService, contentService).RegisterRoutes(v1, authRequired)
	api.NewContentHandler(contentService).RegisterRoutes(v1, authRequired, coupleRequired)
	if deps.ImageService != nil {
		api.NewGalleryHandler(contentService, deps.ImageService).RegisterRoutes(v1, authRequired, coupleRequired)
	}

	return router
}
