package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/reyesrichjames/blogappAPI/internal/model"
)

func TestCanModifyPost(t *testing.T) {
	ownerID := uuid.New()
	post := &model.Post{ID: uuid.New(), AuthorID: ownerID}

	tests := []struct {
		name    string
		isOwner bool
		isAdmin bool
		want    bool
	}{
		{"stranger", false, false, false},
		{"owner", true, false, true},
		{"admin", false, true, true},
		{"admin owner", true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			subject := uuid.New()
			if tt.isOwner {
				subject = ownerID
			}
			claims := &Claims{UserID: subject.String(), IsAdmin: tt.isAdmin}
			assert.Equal(t, tt.want, CanModifyPost(claims, post))
		})
	}

	assert.False(t, CanModifyPost(nil, post))
}

func TestCanModifyComment(t *testing.T) {
	// admin-only regardless of who wrote the comment
	assert.True(t, CanModifyComment(&Claims{IsAdmin: true}))
	assert.False(t, CanModifyComment(&Claims{IsAdmin: false}))
	assert.False(t, CanModifyComment(nil))
}

func TestCanRead(t *testing.T) {
	assert.True(t, CanRead())
}
