package contact

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Contact is one outbound link shown on the contact page.
type Contact struct {
	ID         string `gorm:"primaryKey" json:"_id"`
	Heading    string `gorm:"not null" json:"heading"`
	ContactURL string `gorm:"not null" json:"contactUrl"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Contact) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// ContactDetails is the singleton phone/id block of the contact page.
type ContactDetails struct {
	ID          string `gorm:"primaryKey" json:"_id"`
	PhoneNumber string `json:"phoneNumber"`
	MainID      string `json:"mainId"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *ContactDetails) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
