package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedContent carries the fields shared by every per-couple content entity:
// the owning couple and the partner who authored the record.
type OwnedContent struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
	CoupleID  uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"couple_id"`
	AuthorID  uuid.UUID      `gorm:"type:varchar(36);not null" json:"author_id"`
}

func (o *OwnedContent) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}

// Memory is a dated moment on the couple's shared timeline.
type Memory struct {
	OwnedContent
	Title       string    `gorm:"size:200;not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Mood        string    `gorm:"size:30" json:"mood"`
	PhotoURL    string    `gorm:"size:255" json:"photo_url"`
}

func (Memory) TableName() string { return "memories" }

// Note is a short love note left for the other partner.
type Note struct {
	OwnedContent
	Title string `gorm:"size:200;not null" json:"title"`
	Body  string `gorm:"type:text;not null" json:"body"`
	Mood  string `gorm:"size:30" json:"mood"`
}

func (Note) TableName() string { return "notes" }

type Poem struct {
	OwnedContent
	Title    string `gorm:"size:200;not null" json:"title"`
	Body     string `gorm:"type:text;not null" json:"body"`
	Category string `gorm:"size:30" json:"category"`
}

func (Poem) TableName() string { return "poems" }

type Album struct {
	OwnedContent
	Name        string  `gorm:"size:200;not null" json:"name"`
	Description string  `gorm:"type:text" json:"description"`
	Photos      []Photo `gorm:"foreignKey:AlbumID" json:"photos,omitempty"`
}

func (Album) TableName() string { return "albums" }

type Photo struct {
	OwnedContent
	AlbumID uuid.UUID `gorm:"type:varchar(36);not null;index" json:"album_id"`
	URL     string    `gorm:"size:255;not null" json:"url"`
	Caption string    `gorm:"size:255" json:"caption"`
}

func (Photo) TableName() string { return "photos" }

type BucketListItem struct {
	OwnedContent
	Title       string     `gorm:"size:200;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Category    string     `gorm:"size:30" json:"category"`
	Completed   bool       `gorm:"not null;default:false" json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (BucketListItem) TableName() string { return "bucket_list_items" }
