package scripts

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Script struct {
	ID          string `gorm:"primaryKey" json:"_id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	ImageURL    string `json:"imageUrl"`
	PDFURL      string `json:"pdfUrl"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Script) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
