package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/duetly/backend/internal/models"
	"github.com/duetly/backend/internal/types"
)

// FeedbackLimit is the advertised founder-slot ceiling. It is reported by
// Stats but never enforced at intake.
const FeedbackLimit = 50

var ErrFeedbackCoupleRequired = errors.New("feedback requires a linked couple")

type FeedbackService struct {
	db           *gorm.DB
	cache        *CacheService
	emailService IEmailService
}

// NewFeedbackService creates a new FeedbackService. cache and emailService
// may be nil.
func NewFeedbackService(db *gorm.DB, cache *CacheService, emailService IEmailService) IFeedbackService {
	return &FeedbackService{
		db:           db,
		cache:        cache,
		emailService: emailService,
	}
}

// Submit persists a feedback record exactly once. The couple and user IDs
// come from the authenticated session, never from the payload.
func (s *FeedbackService) Submit(ctx context.Context, userID, coupleID uuid.UUID, req *types.CreateFeedbackRequest) (*models.Feedback, error) {
	if coupleID == uuid.Nil {
		return nil, ErrFeedbackCoupleRequired
	}

	var couple models.Couple
	if err := s.db.WithContext(ctx).First(&couple, "id = ?", coupleID).Error; err != nil {
		return nil, ErrFeedbackCoupleRequired
	}

	feedback := &models.Feedback{
		CoupleID:         coupleID,
		UserID:           userID,
		Subdomain:        couple.Subdomain,
		ContactEmail:     req.ContactEmail,
		Partner1Name:     req.Partner1Name,
		Partner2Name:     req.Partner2Name,
		Rating:           req.Rating,
		FavoriteFeatures: models.StringList(req.FavoriteFeatures),
		LikedFeatures:    req.LikedFeatures,
		Improvements:     req.Improvements,
		Bugs:             req.Bugs,
		FeatureRequests:  req.FeatureRequests,
		Device:           req.Device,
		UsageFrequency:   req.UsageFrequency,
		EaseOfUse:        req.EaseOfUse,
		DesignRating:     req.DesignRating,
		Performance:      req.Performance,
		Recommendation:   req.Recommendation,
		WillingnessToPay: req.WillingnessToPay,
		PriceRange:       req.PriceRange,
		Comments:         req.Comments,
		Consent:          req.Consent,
	}

	if err := s.db.WithContext(ctx).Create(feedback).Error; err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}

	if s.cache != nil {
		_ = s.cache.Delete(ctx, "feedback:stats")
	}

	// Notify asynchronously; intake never fails on notification errors.
	if s.emailService != nil {
		var user models.User
		if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
			log.Printf("could not load user for feedback notification: %v", err)
		}
		go func() {
			if err := s.emailService.SendFeedbackNotification(feedback, &user); err != nil {
				log.Printf("error sending feedback notification: %v", err)
			}
		}()
	}

	return feedback, nil
}

// Stats returns the submission count and the advertised ceiling.
func (s *FeedbackService) Stats(ctx context.Context) (*types.FeedbackStatsResponse, error) {
	if s.cache != nil {
		var cached types.FeedbackStatsResponse
		if hit, err := s.cache.Get(ctx, "feedback:stats", &cached); err == nil && hit {
			return &cached, nil
		}
	}

	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Feedback{}).Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count feedback: %w", err)
	}

	stats := &types.FeedbackStatsResponse{
		TotalFeedback: total,
		Limit:         FeedbackLimit,
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, "feedback:stats", stats, statsCacheTTL)
	}
	return stats, nil
}
