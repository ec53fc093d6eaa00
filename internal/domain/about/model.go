package about

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// About is the singleton about-page content. Image and PDF hold public
// upload URLs; empty means not uploaded yet.
type About struct {
	ID          string `gorm:"primaryKey" json:"_id"`
	Subheading  string `gorm:"type:text" json:"subheading"`
	Description string `gorm:"type:text" json:"description"`
	PurpleText  string `gorm:"type:text" json:"purpleText"`
	Image       string `json:"image"`
	PDF         string `json:"pdf"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *About) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
