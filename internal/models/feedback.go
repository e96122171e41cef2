package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StringList is a custom type for handling string slices stored as JSON
type StringList []string

// Value implements the driver.Valuer interface
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	return json.Marshal(l)
}

// Scan implements the sql.Scanner interface
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = StringList{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return nil
	}

	return json.Unmarshal(bytes, l)
}

// Feedback is a single survey submission. Records are written once at intake
// and never updated or deleted afterwards.
type Feedback struct {
	ID               uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
	CoupleID         uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"couple_id"`
	UserID           uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Subdomain        string         `gorm:"size:63;not null" json:"subdomain"`
	ContactEmail     string         `gorm:"size:255;not null" json:"contact_email"`
	Partner1Name     string         `gorm:"size:120;not null" json:"partner1_name"`
	Partner2Name     string         `gorm:"size:120;not null" json:"partner2_name"`
	Rating           int            `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	FavoriteFeatures StringList     `gorm:"type:text;not null;default:'[]'" json:"favorite_features"`
	LikedFeatures    string         `gorm:"type:text;not null" json:"liked_features"`
	Improvements     string         `gorm:"type:text;not null" json:"improvements"`
	Bugs             string         `gorm:"type:text" json:"bugs,omitempty"`
	FeatureRequests  string         `gorm:"type:text" json:"feature_requests,omitempty"`
	Device           string         `gorm:"size:120;not null" json:"device"`
	UsageFrequency   string         `gorm:"size:50;not null" json:"usage_frequency"`
	EaseOfUse        int            `gorm:"not null;check:ease_of_use >= 1 AND ease_of_use <= 10" json:"ease_of_use"`
	DesignRating     int            `gorm:"not null;check:design_rating >= 1 AND design_rating <= 10" json:"design_rating"`
	Performance      int            `gorm:"not null;check:performance >= 1 AND performance <= 10" json:"performance"`
	Recommendation   string         `gorm:"size:50;not null" json:"recommendation"`
	WillingnessToPay string         `gorm:"size:50;not null" json:"willingness_to_pay"`
	PriceRange       string         `gorm:"size:50" json:"price_range,omitempty"`
	Comments         string         `gorm:"type:text" json:"comments,omitempty"`
	Consent          bool           `gorm:"not null" json:"consent"`
}

// TableName returns the table name for the Feedback model
func (Feedback) TableName() string {
	return "feedback"
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
