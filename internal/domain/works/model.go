package works

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	KindCharacter   = "character"
	KindEnvironment = "environment"
)

// FileList holds public upload URLs and is stored as a JSON column.
type FileList []string

// WorkItem is one gallery entry of the works section. Characters and
// environments share the shape and table; Kind keeps the two collections
// apart.
type WorkItem struct {
	ID   string `gorm:"primaryKey" json:"_id"`
	Kind string `gorm:"not null;index" json:"-"`

	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"type:text" json:"description"`

	MainImages FileList `gorm:"serializer:json" json:"mainImages"`
	Images     FileList `gorm:"serializer:json" json:"images"`
	Videos     FileList `gorm:"serializer:json" json:"videos"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *WorkItem) BeforeCreate(tx *gorm.DB) error {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	return nil
}

// AllFiles returns every upload referenced by the item, for cleanup on
// delete.
func (w *WorkItem) AllFiles() []string {
	out := make([]string, 0, len(w.MainImages)+len(w.Images)+len(w.Videos))
	out = append(out, w.MainImages...)
	out = append(out, w.Images...)
	out = append(out, w.Videos...)
	return out
}
