package skills

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Skill and Strength are the two percentage charts of the skills page. They
// share a shape but live in separate tables and collections.

type Skill struct {
	ID         string `gorm:"primaryKey" json:"_id"`
	Name       string `gorm:"not null" json:"name"`
	Percentage int    `gorm:"not null" json:"percentage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type Strength struct {
	ID         string `gorm:"primaryKey" json:"_id"`
	Name       string `gorm:"not null" json:"name"`
	Percentage int    `gorm:"not null" json:"percentage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (s *Strength) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
