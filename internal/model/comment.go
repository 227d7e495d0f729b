package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment belongs to a post. Author is a frozen display-name snapshot taken
// at comment time (username, or "Anonymous" for guests), not a reference to
// a user record; renaming a user does not rewrite past attribution.
type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	Author    string    `json:"author" gorm:"size:255;not null"`
	PostID    uuid.UUID `json:"post" gorm:"type:char(36);index;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// BeforeCreate sets the UUID before creating the record.
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
