package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/reyesrichjames/blogappAPI/internal/auth"
	"github.com/reyesrichjames/blogappAPI/internal/model"
	"github.com/reyesrichjames/blogappAPI/internal/repository"
)

// bcryptCost matches the salt rounds used on existing password hashes.
const bcryptCost = 12

// Sentinel errors carry the exact client-facing message for each outcome;
// handlers map them onto status codes.
var (
	// ErrEmailRequired is returned when registration omits the email.
	ErrEmailRequired = errors.New("Email is required")
	// ErrInvalidEmail is returned when the email is not in a valid format.
	ErrInvalidEmail = errors.New("Invalid email format")
	// ErrShortPassword is returned when the password is under eight characters.
	ErrShortPassword = errors.New("Password must be atleast 8 characters long")
	// ErrEmailNotFound is returned when no account exists for the login email.
	ErrEmailNotFound = errors.New("No email found")
	// ErrIncorrectCredentials is returned when the password does not match.
	ErrIncorrectCredentials = errors.New("Incorrect email or password")
	// ErrUserNotFound is returned when the subject of a valid token no longer resolves.
	ErrUserNotFound = errors.New("user not found")
)

// AuthService handles registration, login and profile retrieval.
type AuthService interface {
	Register(ctx context.Context, email, username, password string) (*model.User, error)
	Login(ctx context.Context, email, password string) (accessToken string, err error)
	Profile(ctx context.Context, userID string) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Register validates the credentials and stores a new account with a hashed
// password. The admin flag is never set here; it is assigned manually.
func (s *authService) Register(ctx context.Context, email, username, password string) (*model.User, error) {
	if email == "" {
		return nil, ErrEmailRequired
	}
	if !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	if len(password) < 8 {
		return nil, ErrShortPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Email:    email,
		Username: username,
		Password: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login authenticates by email and password and issues an access token.
// Unknown email and wrong password are distinct outcomes; the split leaks
// account existence but is part of the observed contract.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrEmailNotFound
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrIncorrectCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Profile loads the user behind a verified token subject, with the password
// hash blanked before the document leaves the service.
func (s *authService) Profile(ctx context.Context, userID string) (*model.User, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	user.Password = ""
	return user, nil
}
