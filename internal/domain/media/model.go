package media

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image is one entry of the homepage image roll. Path is the public URL
// relative to the server root ("uploads/<name>").
type Image struct {
	ID       string `gorm:"primaryKey" json:"_id"`
	Filename string `gorm:"not null" json:"filename"`
	Path     string `gorm:"not null" json:"path"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// Video is an append-only homepage video upload; the newest row wins for
// display.
type Video struct {
	ID       string `gorm:"primaryKey" json:"_id"`
	VideoURL string `gorm:"not null" json:"videoUrl"`

	CreatedAt time.Time `json:"created_at"`
}

func (v *Video) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}
