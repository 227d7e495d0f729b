package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/reyesrichjames/blogappAPI/internal/auth"
	"github.com/reyesrichjames/blogappAPI/internal/model"
)

// MockCommentRepository is a mock implementation of repository.CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByPost(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCommentService_Add_AuthorAttribution(t *testing.T) {
	postID := uuid.New()

	tests := []struct {
		name         string
		claims       *auth.Claims
		bodyUsername string
		wantAuthor   string
	}{
		{
			name:       "logged-in identity wins",
			claims:     &auth.Claims{UserID: uuid.NewString(), Username: "hillary"},
			wantAuthor: "hillary",
		},
		{
			name:         "body username when identity has none",
			claims:       &auth.Claims{UserID: uuid.NewString()},
			bodyUsername: "visitor",
			wantAuthor:   "visitor",
		},
		{
			name:       "anonymous fallback",
			claims:     nil,
			wantAuthor: "Anonymous",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockComments := new(MockCommentRepository)
			mockPosts := new(MockPostRepository)
			mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
			mockComments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

			svc := NewCommentService(mockComments, mockPosts, nil)
			comment, err := svc.Add(context.Background(), tt.claims, postID, "nice post", tt.bodyUsername)
			require.NoError(t, err)
			assert.Equal(t, tt.wantAuthor, comment.Author)
			assert.Equal(t, postID, comment.PostID)
			assert.Equal(t, "nice post", comment.Content)
			mockComments.AssertExpectations(t)
		})
	}
}

func TestCommentService_AddGuest_DefaultsToAnonymous(t *testing.T) {
	postID := uuid.New()
	mockComments := new(MockCommentRepository)
	mockPosts := new(MockPostRepository)
	mockPosts.On("FindByID", mock.Anything, postID).Return(&model.Post{ID: postID}, nil)
	mockComments.On("Create", mock.Anything, mock.AnythingOfType("*model.Comment")).Return(nil)

	svc := NewCommentService(mockComments, mockPosts, nil)
	comment, err := svc.AddGuest(context.Background(), postID, "hello", "")
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", comment.Author)
}

func TestCommentService_Add_MissingPost(t *testing.T) {
	postID := uuid.New()
	mockComments := new(MockCommentRepository)
	mockPosts := new(MockPostRepository)
	mockPosts.On("FindByID", mock.Anything, postID).Return(nil, gorm.ErrRecordNotFound)

	svc := NewCommentService(mockComments, mockPosts, nil)
	comment, err := svc.AddGuest(context.Background(), postID, "hello", "")
	assert.Nil(t, comment)
	assert.Equal(t, ErrPostNotFound, err)
	mockComments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentService_Delete(t *testing.T) {
	commentID := uuid.New()

	tests := []struct {
		name          string
		claims        *auth.Claims
		expectedError error
	}{
		{"admin deletes any comment", &auth.Claims{IsAdmin: true}, nil},
		{"non-admin is forbidden", &auth.Claims{IsAdmin: false}, ErrAdminOnly},
		{"missing identity is forbidden", nil, ErrAdminOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockComments := new(MockCommentRepository)
			mockPosts := new(MockPostRepository)
			if tt.expectedError == nil {
				mockComments.On("Delete", mock.Anything, commentID).Return(nil)
			}

			svc := NewCommentService(mockComments, mockPosts, nil)
			err := svc.Delete(context.Background(), tt.claims, commentID)

			if tt.expectedError != nil {
				assert.Equal(t, tt.expectedError, err)
				assert.Equal(t, "Only admin can delete comments", err.Error())
				mockComments.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}
			mockComments.AssertExpectations(t)
		})
	}
}
