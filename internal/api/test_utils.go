package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/duetly/backend/internal/database"
	"github.com/duetly/backend/internal/middleware"
	"github.com/duetly/backend/internal/models"
	"github.com/duetly/backend/internal/service"
	"github.com/duetly/backend/internal/types"
)

var testDBCounter atomic.Int64

// SetupTestDB creates an isolated in-memory database with the full schema.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:apitest%d?mode=memory&cache=shared", testDBCounter.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Keep the shared in-memory database alive for the whole test.
	sqlDB.SetMaxIdleConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.AutoMigrate(db))
	return db
}

// stubImageService stands in for S3 and records what was uploaded.
type stubImageService struct {
	uploads      int
	contentTypes []string
	err          error
}

func (s *stubImageService) UploadPhoto(ctx context.Context, data []byte, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	s.uploads++
	s.contentTypes = append(s.contentTypes, contentType)
	return fmt.Sprintf("https://photos.test/photos/%d", s.uploads), nil
}

// TestEnv bundles the router and services handler tests drive.
type TestEnv struct {
	DB     *gorm.DB
	Router *gin.Engine
	Auth   *service.AuthService
	Images *stubImageService
}

// SetupTestRouter wires the full API surface against a fresh database, with
// no Redis or S3 attached.
func SetupTestRouter(t *testing.T) *TestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := SetupTestDB(t)
	images := &stubImageService{}
	authService := service.NewAuthService(db, "test-secret")
	coupleService := service.NewCoupleService(db, nil)
	feedbackService := service.NewFeedbackService(db, nil, nil)
	contentService := service.NewContentService(db)

	authRequired := middleware.AuthMiddleware(authService)
	coupleRequired := middleware.RequireCouple(db)

	router := gin.New()
	router.Use(gin.Recovery())
	v1 := router.Group("/api/v1")

	NewAuthHandler(authService, coupleService, "", false).RegisterRoutes(v1, authRequired)
	NewOnboardingHandler(coupleService).RegisterRoutes(v1, authRequired)
	NewCoupleHandler(coupleService).RegisterRoutes(v1, authRequired, coupleRequired)
	NewFeedbackHandler(feedbackService).RegisterRoutes(v1, authRequired, coupleRequired)
	NewDashboardHandler(authService, coupleService, contentService).RegisterRoutes(v1, authRequired)
	NewContentHandler(contentService).RegisterRoutes(v1, authRequired, coupleRequired)
	NewGalleryHandler(contentService, images).RegisterRoutes(v1, authRequired, coupleRequired)

	return &TestEnv{DB: db, Router: router, Auth: authService, Images: images}
}

// CreateTestUser registers a user directly and returns it with a session
// token.
func (e *TestEnv) CreateTestUser(t *testing.T, name, email string) (*models.User, string) {
	t.Helper()

	user, token, err := e.Auth.Register(context.Background(), &types.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: "testpassword123",
	})
	require.NoError(t, err)
	return user, token
}

// CreateTestCouple links the user to a fresh couple and returns it with a
// token that reflects the link.
func (e *TestEnv) CreateTestCouple(t *testing.T, user *models.User, subdomain string) (*models.Couple, string) {
	t.Helper()

	coupleService := service.NewCoupleService(e.DB, nil)
	couple, err := coupleService.ClaimSubdomain(context.Background(), user.ID, &types.ClaimSubdomainRequest{
		Subdomain: subdomain,
	})
	require.NoError(t, err)

	user.CoupleID = &couple.ID
	token, err := e.Auth.GenerateToken(user)
	require.NoError(t, err)
	return couple, token
}

// DoJSON performs a request with an optional session cookie and JSON body.
func (e *TestEnv) DoJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(data)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: types.AccessTokenCookie, Value: token})
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}
