package types

import "github.com/duetly/backend/internal/models"

// DataEnvelope wraps payloads the frontend unwraps from a "data" key.
type DataEnvelope struct {
	Data interface{} `json:"data"`
}

// SubdomainCheckResponse reports whether a subdomain is still available.
type SubdomainCheckResponse struct {
	Available bool `json:"available"`
}

// SessionResponse is the /auth/me payload.
type SessionResponse struct {
	User   *models.User   `json:"user"`
	Couple *models.Couple `json:"couple,omitempty"`
}

// FeedbackStatsResponse reports how many feedback submissions exist against
// the advertised founder-slot ceiling. The limit is descriptive only.
type FeedbackStatsResponse struct {
	TotalFeedback int64 `json:"totalFeedback"`
	Limit         int   `json:"limit"`
}

// DashboardResponse is the authenticated dashboard payload. NeedsCouple
// signals the create-couple prompt for users with no linked couple.
type DashboardResponse struct {
	User        *models.User   `json:"user"`
	Couple      *models.Couple `json:"couple,omitempty"`
	NeedsCouple bool           `json:"needsCouple"`
	Stats       ContentStats   `json:"stats"`
}

// ContentStats counts the couple's content per feature.
type ContentStats struct {
	Memories   int64 `json:"memories"`
	Notes      int64 `json:"notes"`
	Poems      int64 `json:"poems"`
	Albums     int64 `json:"albums"`
	Photos     int64 `json:"photos"`
	BucketList int64 `json:"bucketList"`
}

// PublicSiteResponse is the payload a tenant's public microsite renders from.
type PublicSiteResponse struct {
	Couple     *models.Couple          `json:"couple"`
	Memories   []models.Memory         `json:"memories"`
	Notes      []models.Note           `json:"notes"`
	Poems      []models.Poem           `json:"poems"`
	Albums     []models.Album          `json:"albums"`
	BucketList []models.BucketListItem `json:"bucket_list"`
}
