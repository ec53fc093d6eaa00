package competence

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Competence struct {
	ID    string `gorm:"primaryKey" json:"_id"`
	Title string `gorm:"not null" json:"title"`
	Image string `json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Competence) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
