package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/reyesrichjames/blogappAPI/internal/model"
)

// PostStats is one row of the popularity aggregation: a post joined with its
// comment count and its author's display fields. Both joins are outer joins,
// so a post keeps its row when comments or the author record are absent.
type PostStats struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Content          string    `json:"content"`
	ImageURL         string    `json:"imageUrl,omitempty"`
	CreatedAt        time.Time `json:"createdAt"`
	CommentCount     int64     `json:"commentCount"`
	AuthorUsername   string    `json:"authorUsername,omitempty"`
	AuthorProfilePic string    `json:"authorProfilePic,omitempty"`
}

// PostRepository defines post persistence operations.
type PostRepository interface {
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error)
	List(ctx context.Context) ([]model.Post, error)
	ListWithStats(ctx context.Context) ([]PostStats, error)
}

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository creates a new post repository.
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// withAuthor preloads the author projection exposed on post documents.
// The password hash column is never selected.
func withAuthor(db *gorm.DB) *gorm.DB {
	return db.Preload("Author", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "username", "profile_pic")
	})
}

func (r *postRepository) Create(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *postRepository) Update(ctx context.Context, post *model.Post) error {
	return r.db.WithContext(ctx).Save(post).Error
}

func (r *postRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}).Error
}

func (r *postRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Post, error) {
	var post model.Post
	if err := withAuthor(r.db.WithContext(ctx)).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *postRepository) List(ctx context.Context) ([]model.Post, error) {
	var posts []model.Post
	if err := withAuthor(r.db.WithContext(ctx)).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// ListWithStats joins every post with its comment count (membership derived
// from comments.post_id, never from the denormalized comment_ids column) and
// its author's username and profile picture. Ordering and truncation are
// left to the caller.
func (r *postRepository) ListWithStats(ctx context.Context) ([]PostStats, error) {
	var rows []PostStats
	err := r.db.WithContext(ctx).Model(&model.Post{}).
		Select("posts.id, posts.title, posts.content, posts.image_url, posts.created_at, " +
			"COUNT(comments.id) AS comment_count, " +
			"users.username AS author_username, users.profile_pic AS author_profile_pic").
		Joins("LEFT JOIN comments ON comments.post_id = posts.id").
		Joins("LEFT JOIN users ON users.id = posts.author_id").
		Group("posts.id, posts.title, posts.content, posts.image_url, posts.created_at, users.username, users.profile_pic").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
