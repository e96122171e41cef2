package service

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/duetly/backend/internal/models"
	"github.com/duetly/backend/internal/types"
)

var (
	ErrSubdomainTaken   = errors.New("subdomain is already taken")
	ErrSubdomainInvalid = errors.New("subdomain is invalid or reserved")
	ErrAlreadyInCouple  = errors.New("user already belongs to a couple")
	ErrCoupleNotFound   = errors.New("couple not found")
	ErrCoupleFull       = errors.New("couple already has two partners")
)

// Subdomains are DNS labels: lowercase alphanumerics and hyphens, no leading
// or trailing hyphen.
var subdomainPattern = regexp.MustCompile(`^[a-z0-9]([a-z0-9-]*[a-z0-9])?$`)

// reservedSubdomains never resolve to a couple site and can never be claimed.
var reservedSubdomains = map[string]bool{
	"app":   true,
	"www":   true,
	"api":   true,
	"admin": true,
	"mail":  true,
	"blog":  true,
}

type CoupleService struct {
	db    *gorm.DB
	cache *CacheService
}

// NewCoupleService creates a new CoupleService. cache may be nil, in which
// case every lookup hits the database.
func NewCoupleService(db *gorm.DB, cache *CacheService) ICoupleService {
	return &CoupleService{db: db, cache: cache}
}

// NormalizeSubdomain lowercases and trims a requested subdomain label.
func NormalizeSubdomain(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func validSubdomain(s string) bool {
	if len(s) < 3 || len(s) > 63 {
		return false
	}
	if reservedSubdomains[s] {
		return false
	}
	return subdomainPattern.MatchString(s)
}

// ClaimSubdomain creates the couple, claims its subdomain, and links the
// claiming user as the first partner.
func (s *CoupleService) ClaimSubdomain(ctx context.Context, userID uuid.UUID, req *types.ClaimSubdomainRequest) (*models.Couple, error) {
	sub := NormalizeSubdomain(req.Subdomain)
	if !validSubdomain(sub) {
		return nil, ErrSubdomainInvalid
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.CoupleID != nil {
		return nil, ErrAlreadyInCouple
	}

	couple := models.Couple{
		Subdomain:   sub,
		Title:       req.Title,
		Anniversary: req.Anniversary,
		Partner1ID:  userID,
	}

	// The unique index on subdomain decides races between concurrent claims.
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&couple).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).Update("couple_id", couple.ID).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrSubdomainTaken
		}
		return nil, err
	}

	s.invalidateSubdomain(ctx, sub)
	return &couple, nil
}

// SubdomainAvailable reports whether a subdomain can still be claimed.
// Invalid and reserved labels report unavailable.
func (s *CoupleService) SubdomainAvailable(ctx context.Context, subdomain string) (bool, error) {
	sub := NormalizeSubdomain(subdomain)
	if !validSubdomain(sub) {
		return false, nil
	}

	cacheKey := "subdomain:" + sub
	if s.cache != nil {
		var available bool
		if hit, err := s.cache.Get(ctx, cacheKey, &available); err == nil && hit {
			return available, nil
		}
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.Couple{}).Where("subdomain = ?", sub).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check subdomain: %w", err)
	}
	available := count == 0

	if s.cache != nil {
		// Best effort; a cold cache only costs a query.
		_ = s.cache.Set(ctx, cacheKey, available, subdomainCacheTTL)
	}
	return available, nil
}

// GetByID loads a couple with both partners.
func (s *CoupleService) GetByID(ctx context.Context, id uuid.UUID) (*models.Couple, error) {
	var couple models.Couple
	err := s.db.WithContext(ctx).Preload("Partner1").Preload("Partner2").First(&couple, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCoupleNotFound
		}
		return nil, fmt.Errorf("failed to get couple: %w", err)
	}
	return &couple, nil
}

// GetBySubdomain loads a couple by its subdomain.
func (s *CoupleService) GetBySubdomain(ctx context.Context, subdomain string) (*models.Couple, error) {
	var couple models.Couple
	err := s.db.WithContext(ctx).Preload("Partner1").Preload("Partner2").
		First(&couple, "subdomain = ?", NormalizeSubdomain(subdomain)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCoupleNotFound
		}
		return nil, fmt.Errorf("failed to get couple: %w", err)
	}
	return &couple, nil
}

// Update changes the couple's public profile.
func (s *CoupleService) Update(ctx context.Context, id uuid.UUID, req *types.UpdateCoupleRequest) (*models.Couple, error) {
	updates := map[string]interface{}{}
	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Bio != "" {
		updates["bio"] = req.Bio
	}
	if req.Anniversary != nil {
		updates["anniversary"] = req.Anniversary
	}

	if len(updates) > 0 {
		result := s.db.WithContext(ctx).Model(&models.Couple{}).Where("id = ?", id).Updates(updates)
		if result.Error != nil {
			return nil, fmt.Errorf("failed to update couple: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return nil, ErrCoupleNotFound
		}
	}
	return s.GetByID(ctx, id)
}

// AcceptInvite links a second user into the couple.
func (s *CoupleService) AcceptInvite(ctx context.Context, coupleID, userID uuid.UUID) (*models.Couple, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.CoupleID != nil {
		return nil, ErrAlreadyInCouple
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var couple models.Couple
		if err := tx.First(&couple, "id = ?", coupleID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCoupleNotFound
			}
			return err
		}
		if couple.Partner2ID != nil {
			return ErrCoupleFull
		}
		if err := tx.Model(&couple).Update("partner2_id", userID).Error; err != nil {
			return err
		}
		return tx.Model(&models.User{}).Where("id = ?", userID).Update("couple_id", coupleID).Error
	})
	if err != nil {
		return nil, err
	}
	return s.GetByID(ctx, coupleID)
}

// PublicSite assembles everything a tenant's public page renders from.
func (s *CoupleService) PublicSite(ctx context.Context, subdomain string) (*types.PublicSiteResponse, error) {
	couple, err := s.GetBySubdomain(ctx, subdomain)
	if err != nil {
		return nil, err
	}

	site := &types.PublicSiteResponse{Couple: couple}
	db := s.db.WithContext(ctx)

	if err := db.Where("couple_id = ?", couple.ID).Order("date DESC").Find(&site.Memories).Error; err != nil {
		return nil, fmt.Errorf("failed to load memories: %w", err)
	}
	if err := db.Where("couple_id = ?", couple.ID).Order("created_at DESC").Find(&site.Notes).Error; err != nil {
		return nil, fmt.Errorf("failed to load notes: %w", err)
	}
	if err := db.Where("couple_id = ?", couple.ID).Order("created_at DESC").Find(&site.Poems).Error; err != nil {
		return nil, fmt.Errorf("failed to load poems: %w", err)
	}
	if err := db.Where("couple_id = ?", couple.ID).Preload("Photos").Order("created_at DESC").Find(&site.Albums).Error; err != nil {
		return nil, fmt.Errorf("failed to load albums: %w", err)
	}
	if err := db.Where("couple_id = ?", couple.ID).Order("created_at").Find(&site.BucketList).Error; err != nil {
		return nil, fmt.Errorf("failed to load bucket list: %w", err)
	}

	return site, nil
}

func (s *CoupleService) invalidateSubdomain(ctx context.Context, sub string) {
	if s.cache != nil {
		_ = s.cache.Delete(ctx, "subdomain:"+sub)
	}
}
