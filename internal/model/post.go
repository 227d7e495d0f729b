package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// IDList is a JSON-encoded list of UUIDs stored in a TEXT column.
type IDList []uuid.UUID

// Value implements driver.Valuer.
func (l IDList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner.
func (l *IDList) Scan(value interface{}) error {
	if value == nil {
		*l = IDList{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan IDList: unsupported type %T", value)
	}
	if len(data) == 0 {
		*l = IDList{}
		return nil
	}
	return json.Unmarshal(data, l)
}

// Post represents a blog post. CommentIDs is the denormalized back-reference
// to the post's comments; it is maintained alongside comment creation but is
// treated as a cache. Read paths derive membership from Comment.PostID.
type Post struct {
	ID         uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Title      string    `json:"title" gorm:"size:255;not null"`
	Content    string    `json:"content" gorm:"type:text;not null"`
	AuthorID   uuid.UUID `json:"author" gorm:"type:char(36);index;not null"`
	ImageURL   string    `json:"imageUrl,omitempty" gorm:"size:512"`
	CommentIDs IDList    `json:"comments" gorm:"type:text"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"-"`

	Author *User `json:"authorDetails,omitempty" gorm:"foreignKey:AuthorID"`
}

// BeforeCreate sets the UUID before creating the record.
func (p *Post) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
