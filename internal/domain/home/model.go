package home

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BigText is the singleton headline of the homepage. The API keeps the
// array-wrapped wire shape the site expects, but only one row ever exists.
type BigText struct {
	ID   string `gorm:"primaryKey" json:"_id"`
	Text string `gorm:"type:text;not null" json:"text"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (b *BigText) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}

// LinkSet is the singleton pair of homepage links (general inquiries and
// Instagram).
type LinkSet struct {
	ID           string `gorm:"primaryKey" json:"_id"`
	GeneralTitle string `json:"generalTitle"`
	GeneralURL   string `json:"generalUrl"`
	InstaTitle   string `json:"instaTitle"`
	InstaURL     string `json:"instaUrl"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *LinkSet) BeforeCreate(tx *gorm.DB) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	return nil
}
