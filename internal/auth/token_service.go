package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/reyesrichjames/blogappAPI/internal/model"
)

var (
	// ErrTokenMalformed is returned when a token cannot be parsed as a signed triple.
	ErrTokenMalformed = errors.New("token is malformed")
	// ErrBadSignature is returned when the recomputed signature does not match.
	ErrBadSignature = errors.New("token signature is invalid")
	// ErrTokenExpired is returned when a token carries an elapsed expiry.
	ErrTokenExpired = errors.New("token is expired")
)

// Claims is the identity fact set embedded in a token: subject id, email,
// admin flag and username. It never carries the password hash. Claims are
// frozen at issuance; a later admin-flag change or account deletion does not
// invalidate tokens already held by clients.
type Claims struct {
	UserID   string `json:"id"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies HS256 identity tokens over a process-wide
// secret loaded once at startup.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a token service with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs an access token for the user. Only the issued-at timestamp is
// stamped; no expiry is set, so tokens stay valid until the secret rotates.
func (s *TokenService) Issue(user *model.User) (string, error) {
	claims := &Claims{
		UserID:   user.ID.String(),
		Email:    user.Email,
		IsAdmin:  user.IsAdmin,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify decodes the token, recomputes the signature against the server
// secret and returns the embedded claims unmodified. The claims are never
// re-derived from current user state.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrBadSignature
		}
		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, ErrBadSignature
		}
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrBadSignature
	}
	return claims, nil
}
