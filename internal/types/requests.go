package types

import "time"

// RegisterRequest represents the request body for creating an account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,max=120"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Gender   string `json:"gender" binding:"omitempty,oneof=female male other"`
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ClaimSubdomainRequest creates the couple and claims its subdomain
type ClaimSubdomainRequest struct {
	Subdomain    string     `json:"subdomain" binding:"required,min=3,max=63"`
	Title        string     `json:"title" binding:"max=120"`
	PartnerEmail string     `json:"partner_email" binding:"omitempty,email"`
	Anniversary  *time.Time `json:"anniversary"`
}

// UpdateCoupleRequest updates the couple's public profile
type UpdateCoupleRequest struct {
	Title       string     `json:"title" binding:"max=120"`
	Bio         string     `json:"bio" binding:"max=2000"`
	Anniversary *time.Time `json:"anniversary"`
}

// CreateFeedbackRequest is the feedback intake payload. Field names match the
// wire contract exactly; range checks reject out-of-band ratings before
// anything is persisted.
type CreateFeedbackRequest struct {
	ContactEmail     string   `json:"contact_email" binding:"required,email"`
	Partner1Name     string   `json:"partner1_name" binding:"required,max=120"`
	Partner2Name     string   `json:"partner2_name" binding:"required,max=120"`
	Rating           int      `json:"rating" binding:"required,min=1,max=5"`
	FavoriteFeatures []string `json:"favorite_features" binding:"required,min=1"`
	LikedFeatures    string   `json:"liked_features" binding:"required,max=2000"`
	Improvements     string   `json:"improvements" binding:"required,max=2000"`
	Bugs             string   `json:"bugs" binding:"max=2000"`
	FeatureRequests  string   `json:"feature_requests" binding:"max=2000"`
	Device           string   `json:"device" binding:"required,max=120"`
	UsageFrequency   string   `json:"usage_frequency" binding:"required,max=50"`
	EaseOfUse        int      `json:"ease_of_use" binding:"required,min=1,max=10"`
	DesignRating     int      `json:"design_rating" binding:"required,min=1,max=10"`
	Performance      int      `json:"performance" binding:"required,min=1,max=10"`
	Recommendation   string   `json:"recommendation" binding:"required,max=50"`
	WillingnessToPay string   `json:"willingness_to_pay" binding:"required,max=50"`
	PriceRange       string   `json:"price_range" binding:"max=50"`
	Comments         string   `json:"comments" binding:"max=2000"`
	Consent          bool     `json:"consent"`
}

// CreateMemoryRequest represents the request body for creating a memory
type CreateMemoryRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description string    `json:"description" binding:"max=2000"`
	Date        time.Time `json:"date" binding:"required"`
	Mood        string    `json:"mood" binding:"max=30"`
	PhotoURL    string    `json:"photo_url" binding:"max=255"`
}

// UpdateMemoryRequest represents the request body for updating a memory
type UpdateMemoryRequest struct {
	Title       string     `json:"title" binding:"max=200"`
	Description string     `json:"description" binding:"max=2000"`
	Date        *time.Time `json:"date"`
	Mood        string     `json:"mood" binding:"max=30"`
	PhotoURL    string     `json:"photo_url" binding:"max=255"`
}

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	Title string `json:"title" binding:"required,max=200"`
	Body  string `json:"body" binding:"required,max=5000"`
	Mood  string `json:"mood" binding:"max=30"`
}

// UpdateNoteRequest represents the request body for updating a note
type UpdateNoteRequest struct {
	Title string `json:"title" binding:"max=200"`
	Body  string `json:"body" binding:"max=5000"`
	Mood  string `json:"mood" binding:"max=30"`
}

// CreatePoemRequest represents the request body for creating a poem
type CreatePoemRequest struct {
	Title    string `json:"title" binding:"required,max=200"`
	Body     string `json:"body" binding:"required,max=10000"`
	Category string `json:"category" binding:"max=30"`
}

// UpdatePoemRequest represents the request body for updating a poem
type UpdatePoemRequest struct {
	Title    string `json:"title" binding:"max=200"`
	Body     string `json:"body" binding:"max=10000"`
	Category string `json:"category" binding:"max=30"`
}

// CreateAlbumRequest represents the request body for creating an album
type CreateAlbumRequest struct {
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
}

// CreateBucketListItemRequest represents the request body for adding a
// bucket-list item
type CreateBucketListItemRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Description string `json:"description" binding:"max=2000"`
	Category    string `json:"category" binding:"max=30"`
}

// UpdateBucketListItemRequest represents the request body for updating a
// bucket-list item
type UpdateBucketListItemRequest struct {
	Title       string `json:"title" binding:"max=200"`
	Description string `json:"description" binding:"max=2000"`
	Category    string `json:"category" binding:"max=30"`
	Completed   *bool  `json:"completed"`
}
