package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. IsAdmin is assigned manually; there
// is no elevation workflow. The password field holds the bcrypt hash and is
// blanked before a user document is returned to a client.
type User struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Email      string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Username   string    `json:"username" gorm:"size:255;not null"`
	Password   string    `json:"password" gorm:"size:255;not null"`
	IsAdmin    bool      `json:"isAdmin" gorm:"default:false"`
	ProfilePic string    `json:"profilePic,omitempty" gorm:"size:512"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"-"`

	Posts []Post `json:"-" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets the UUID before creating the record.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
