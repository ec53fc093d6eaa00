package inbox

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Query is an inbound visitor inquiry submitted through the public contact
// form. The admin only lists and deletes them.
type Query struct {
	ID          string `gorm:"primaryKey" json:"_id"`
	Name        string `gorm:"not null" json:"name"`
	Email       string `gorm:"not null" json:"email"`
	InquiryType string `json:"inquiryType"`
	Budget      string `json:"budget"`
	Message     string `gorm:"type:text" json:"message"`

	CreatedAt time.Time `json:"createdAt"`
}

func (q *Query) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
