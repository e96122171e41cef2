package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/duetly/backend/internal/models"
	"github.com/duetly/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
	GenerateToken(user *models.User) (string, error)
	GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
}

// ICoupleService defines the interface for couple and subdomain operations
type ICoupleService interface {
	ClaimSubdomain(ctx context.Context, userID uuid.UUID, req *types.ClaimSubdomainRequest) (*models.Couple, error)
	SubdomainAvailable(ctx context.Context, subdomain string) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Couple, error)
	GetBySubdomain(ctx context.Context, subdomain string) (*models.Couple, error)
	Update(ctx context.Context, id uuid.UUID, req *types.UpdateCoupleRequest) (*models.Couple, error)
	AcceptInvite(ctx context.Context, coupleID, userID uuid.UUID) (*models.Couple, error)
	PublicSite(ctx context.Context, subdomain string) (*types.PublicSiteResponse, error)
}

// IFeedbackService defines the interface for feedback intake
type IFeedbackService interface {
	Submit(ctx context.Context, userID, coupleID uuid.UUID, req *types.CreateFeedbackRequest) (*models.Feedback, error)
	Stats(ctx context.Context) (*types.FeedbackStatsResponse, error)
}

// IImageService defines the interface for photo storage
type IImageService interface {
	UploadPhoto(ctx context.Context, data []byte, contentType string) (string, error)
}

// IEmailService defines the interface for outbound notifications
type IEmailService interface {
	SendFeedbackNotification(feedback *models.Feedback, user *models.User) error
	SendEmail(to, subject, body string) error
}
