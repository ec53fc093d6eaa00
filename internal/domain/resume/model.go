package resume

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Education struct {
	ID         string `gorm:"primaryKey" json:"_id"`
	Degree     string `gorm:"not null" json:"degree"`
	School     string `gorm:"not null" json:"school"`
	Year       string `json:"year"`
	Percentage string `json:"percentage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Education) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

type Experience struct {
	ID          string `gorm:"primaryKey" json:"_id"`
	Position    string `gorm:"not null" json:"position"`
	Company     string `gorm:"not null" json:"company"`
	Years       string `json:"years"`
	Description string `gorm:"type:text" json:"description"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (e *Experience) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}
