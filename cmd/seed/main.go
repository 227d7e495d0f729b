package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/reyesrichjames/blogappAPI/internal/config"
	"github.com/reyesrichjames/blogappAPI/internal/db"
	"github.com/reyesrichjames/blogappAPI/internal/model"
	"github.com/reyesrichjames/blogappAPI/internal/repository"
)

// seedUser is one development fixture account.
type seedUser struct {
	Email      string
	Username   string
	Password   string
	IsAdmin    bool
	ProfilePic string
}

var seedUsers = []seedUser{
	{Email: "admin@mail.com", Username: "admin", Password: "admin1234", IsAdmin: true},
	{Email: "halmonte@mail.com", Username: "hillary", Password: "user1234", ProfilePic: "https://i.pravatar.cc/150?u=hillary"},
	{Email: "jdoe@mail.com", Username: "jdoe", Password: "user1234", ProfilePic: "https://i.pravatar.cc/150?u=jdoe"},
}

// seedPost is one development fixture post with its comments.
type seedPost struct {
	AuthorEmail string
	Title       string
	Content     string
	ImageURL    string
	Comments    []string
}

var seedPosts = []seedPost{
	{
		AuthorEmail: "halmonte@mail.com",
		Title:       "Getting started",
		Content:     "First post on the new blog.",
		Comments:    []string{"Welcome!", "Looking forward to more."},
	},
	{
		AuthorEmail: "jdoe@mail.com",
		Title:       "On writing",
		Content:     "Notes on keeping a writing habit.",
		ImageURL:    "https://picsum.photos/seed/writing/600/400",
		Comments:    []string{"Good read."},
	},
	{
		AuthorEmail: "halmonte@mail.com",
		Title:       "Quiet week",
		Content:     "Not much happened this week.",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Post{}, &model.Comment{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	commentRepo := repository.NewCommentRepository(gormDB)
	ctx := context.Background()

	usersByEmail := make(map[string]*model.User, len(seedUsers))
	created, updated := 0, 0
	for _, su := range seedUsers {
		existing, err := userRepo.FindByEmail(ctx, su.Email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Error checking user %s: %v", su.Email, err)
		}

		if existing != nil {
			existing.Username = su.Username
			existing.IsAdmin = su.IsAdmin
			existing.ProfilePic = su.ProfilePic
			if err := userRepo.Update(ctx, existing); err != nil {
				log.Fatalf("Error updating user %s: %v", su.Email, err)
			}
			usersByEmail[su.Email] = existing
			updated++
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(su.Password), 12)
		if err != nil {
			log.Fatalf("Error hashing password for %s: %v", su.Email, err)
		}
		user := &model.User{
			Email:      su.Email,
			Username:   su.Username,
			Password:   string(hashed),
			IsAdmin:    su.IsAdmin,
			ProfilePic: su.ProfilePic,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Error creating user %s: %v", su.Email, err)
		}
		usersByEmail[su.Email] = user
		created++
	}
	log.Printf("Users seeded: %d created, %d updated", created, updated)

	posts, comments := 0, 0
	for _, sp := range seedPosts {
		author, ok := usersByEmail[sp.AuthorEmail]
		if !ok {
			log.Fatalf("Seed post %q references unknown author %s", sp.Title, sp.AuthorEmail)
		}
		post := &model.Post{
			Title:    sp.Title,
			Content:  sp.Content,
			AuthorID: author.ID,
			ImageURL: sp.ImageURL,
		}
		if err := postRepo.Create(ctx, post); err != nil {
			log.Fatalf("Error creating post %q: %v", sp.Title, err)
		}
		posts++

		for _, content := range sp.Comments {
			comment := &model.Comment{
				Content: content,
				Author:  "Anonymous",
				PostID:  post.ID,
			}
			if err := commentRepo.Create(ctx, comment); err != nil {
				log.Fatalf("Error creating comment on %q: %v", sp.Title, err)
			}
			comments++
		}
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - Posts created: %d", posts)
	log.Printf("  - Comments created: %d", comments)
}
