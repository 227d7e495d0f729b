package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/reyesrichjames/blogappAPI/internal/auth"
	"github.com/reyesrichjames/blogappAPI/internal/cache"
	"github.com/reyesrichjames/blogappAPI/internal/model"
	"github.com/reyesrichjames/blogappAPI/internal/repository"
)

// ErrAdminOnly is returned when a non-admin attempts to delete a comment.
var ErrAdminOnly = errors.New("Only admin can delete comments")

// anonymousAuthor is the frozen display name for comments without one.
const anonymousAuthor = "Anonymous"

// CommentService handles comment creation, listing and deletion.
type CommentService interface {
	// Add stores a comment attributed to the identity's username when
	// available, falling back to the supplied name, then to "Anonymous".
	Add(ctx context.Context, claims *auth.Claims, postID uuid.UUID, content, username string) (*model.Comment, error)
	// AddGuest stores a comment from an anonymous visitor.
	AddGuest(ctx context.Context, postID uuid.UUID, content, username string) (*model.Comment, error)
	List(ctx context.Context, postID uuid.UUID) ([]model.Comment, error)
	Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error
}

type commentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
	cache    *cache.Client
}

// NewCommentService creates a new comment service.
func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository, cacheClient *cache.Client) CommentService {
	return &commentService{comments: comments, posts: posts, cache: cacheClient}
}

func (s *commentService) Add(ctx context.Context, claims *auth.Claims, postID uuid.UUID, content, username string) (*model.Comment, error) {
	author := anonymousAuthor
	switch {
	case claims != nil && claims.Username != "":
		author = claims.Username
	case username != "":
		author = username
	}
	return s.add(ctx, postID, content, author)
}

func (s *commentService) AddGuest(ctx context.Context, postID uuid.UUID, content, username string) (*model.Comment, error) {
	return s.Add(ctx, nil, postID, content, username)
}

func (s *commentService) add(ctx context.Context, postID uuid.UUID, content, author string) (*model.Comment, error) {
	if _, err := s.posts.FindByID(ctx, postID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}

	comment := &model.Comment{
		Content: content,
		Author:  author,
		PostID:  postID,
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}
	_ = s.cache.Delete(ctx, popularPostsKey)
	return comment, nil
}

func (s *commentService) List(ctx context.Context, postID uuid.UUID) ([]model.Comment, error) {
	comments, err := s.comments.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}
	return comments, nil
}

// Delete removes a comment. Admin-only regardless of who authored it; the
// policy is re-checked here even though the route is already admin-gated.
func (s *commentService) Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error {
	if !auth.CanModifyComment(claims) {
		return ErrAdminOnly
	}
	if err := s.comments.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	_ = s.cache.Delete(ctx, popularPostsKey)
	return nil
}
