package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/reyesrichjames/blogappAPI/internal/auth"
	"github.com/reyesrichjames/blogappAPI/internal/cache"
	"github.com/reyesrichjames/blogappAPI/internal/model"
	"github.com/reyesrichjames/blogappAPI/internal/repository"
)

var (
	// ErrPostNotFound is returned when the target post does not exist.
	ErrPostNotFound = errors.New("Post not found")
	// ErrNoPosts is returned when the post list is empty.
	ErrNoPosts = errors.New("No posts found")
	// ErrUnauthorized is returned when the identity is neither the post's
	// author nor an admin.
	ErrUnauthorized = errors.New("Unauthorized")
)

const (
	popularPostsKey   = "popular_posts"
	popularPostsTTL   = 30 * time.Second
	popularPostsLimit = 10
)

// PostService handles post CRUD and the popularity ranking.
type PostService interface {
	Create(ctx context.Context, claims *auth.Claims, title, content, imageURL string) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Post, error)
	Update(ctx context.Context, claims *auth.Claims, id uuid.UUID, title, content, imageURL string) (*model.Post, error)
	Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error
	Popular(ctx context.Context) ([]repository.PostStats, error)
}

type postService struct {
	posts repository.PostRepository
	cache *cache.Client
}

// NewPostService creates a new post service.
func NewPostService(posts repository.PostRepository, cacheClient *cache.Client) PostService {
	return &postService{posts: posts, cache: cacheClient}
}

// Create stores a post authored by the identity and returns it with the
// author projection populated.
func (s *postService) Create(ctx context.Context, claims *auth.Claims, title, content, imageURL string) (*model.Post, error) {
	authorID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse author id: %w", err)
	}
	post := &model.Post{
		Title:    title,
		Content:  content,
		AuthorID: authorID,
		ImageURL: imageURL,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	s.invalidatePopular(ctx)
	return s.posts.FindByID(ctx, post.ID)
}

// List returns all posts, newest first, with author projections.
func (s *postService) List(ctx context.Context) ([]model.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	if len(posts) == 0 {
		return nil, ErrNoPosts
	}
	return posts, nil
}

// Get returns a single post with its author projection.
func (s *postService) Get(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return post, nil
}

// Update merges the supplied fields into the post. Existence is resolved
// before ownership, so a missing post reads Not Found even to strangers;
// fields left empty in the request keep their prior values.
func (s *postService) Update(ctx context.Context, claims *auth.Claims, id uuid.UUID, title, content, imageURL string) (*model.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	if !auth.CanModifyPost(claims, post) {
		return nil, ErrUnauthorized
	}

	if title != "" {
		post.Title = title
	}
	if content != "" {
		post.Content = content
	}
	if imageURL != "" {
		post.ImageURL = imageURL
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, fmt.Errorf("update post: %w", err)
	}
	s.invalidatePopular(ctx)
	return post, nil
}

// Delete removes the post after the same existence-then-ownership gate.
func (s *postService) Delete(ctx context.Context, claims *auth.Claims, id uuid.UUID) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrPostNotFound
		}
		return fmt.Errorf("find post: %w", err)
	}
	if !auth.CanModifyPost(claims, post) {
		return ErrUnauthorized
	}
	if err := s.posts.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	s.invalidatePopular(ctx)
	return nil
}

// Popular ranks posts by comment count descending, ties most-recent-first,
// truncated to the top ten. Posts whose author record is gone still appear
// with empty author fields. The result is cached briefly; the cache is
// dropped on any post or comment mutation.
func (s *postService) Popular(ctx context.Context) ([]repository.PostStats, error) {
	if data, _ := s.cache.Get(ctx, popularPostsKey); data != nil {
		var cached []repository.PostStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	rows, err := s.posts.ListWithStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("aggregate posts: %w", err)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CommentCount != rows[j].CommentCount {
			return rows[i].CommentCount > rows[j].CommentCount
		}
		return rows[i].CreatedAt.After(rows[j].CreatedAt)
	})
	if len(rows) > popularPostsLimit {
		rows = rows[:popularPostsLimit]
	}

	if data, err := json.Marshal(rows); err == nil {
		_ = s.cache.Set(ctx, popularPostsKey, data, popularPostsTTL)
	}
	return rows, nil
}

func (s *postService) invalidatePopular(ctx context.Context) {
	_ = s.cache.Delete(ctx, popularPostsKey)
}
