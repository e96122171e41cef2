package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Couple struct {
	ID          uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
	Subdomain   string         `gorm:"size:63;uniqueIndex;not null" json:"subdomain"`
	Title       string         `gorm:"size:120" json:"title"`
	Bio         string         `gorm:"type:text" json:"bio"`
	Anniversary *time.Time     `json:"anniversary,omitempty"`
	Partner1ID  uuid.UUID      `gorm:"type:varchar(36);not null" json:"partner1_id"`
	Partner2ID  *uuid.UUID     `gorm:"type:varchar(36)" json:"partner2_id,omitempty"`
	Partner1    *User          `gorm:"foreignKey:Partner1ID" json:"partner1,omitempty"`
	Partner2    *User          `gorm:"foreignKey:Partner2ID" json:"partner2,omitempty"`
}

// TableName returns the table name for the Couple model
func (Couple) TableName() string {
	return "couples"
}

func (c *Couple) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// HasPartner reports whether the given user is one of the two partners.
func (c *Couple) HasPartner(userID uuid.UUID) bool {
	if c.Partner1ID == userID {
		return true
	}
	return c.Partner2ID != nil && *c.Partner2ID == userID
}
