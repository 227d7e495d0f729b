package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/reyesrichjames/blogappAPI/internal/model"
)

func testUser(admin bool) *model.User {
	return &model.User{
		ID:       uuid.New(),
		Email:    "halmonte@mail.com",
		Username: "hillary",
		IsAdmin:  admin,
		Password: "$2b$12$v1HKMytZxXe0ifk2IagWbudr.3FOH0Zj4IlmSMlRYMWmSfkHS4qwm",
	}
}

func TestTokenService_RoundTrip(t *testing.T) {
	svc := NewTokenService("test-secret")
	user := testUser(true)

	token, err := svc.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, user.Username, claims.Username)
	assert.True(t, claims.IsAdmin)
	assert.Nil(t, claims.ExpiresAt, "issued tokens carry no expiry")
}

const b64url = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_"

// flipChar returns s with bit 3 of the base64url group at i flipped. Flipping
// one of the low two bits of a segment's final character would only touch
// padding bits the decoder discards, so a mid-group bit is used instead.
func flipChar(s string, i int) string {
	b := []byte(s)
	v := strings.IndexByte(b64url, b[i])
	b[i] = b64url[v^8]
	return string(b)
}

func TestTokenService_TamperedToken(t *testing.T) {
	svc := NewTokenService("test-secret")
	token, err := svc.Issue(testUser(false))
	require.NoError(t, err)

	// corrupt a byte in every position of the signed triple; verification
	// must fail each time, never silently succeed
	for i := 0; i < len(token); i++ {
		if token[i] == '.' {
			continue
		}
		tampered := flipChar(token, i)
		claims, err := svc.Verify(tampered)
		assert.Error(t, err, "byte %d", i)
		assert.Nil(t, claims, "byte %d", i)
		assert.True(t, err == ErrBadSignature || err == ErrTokenMalformed,
			"byte %d: got %v", i, err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("test-secret")

	for _, token := range []string{"", "garbage", "one.two", "a.b.c.d"} {
		claims, err := svc.Verify(token)
		assert.Nil(t, claims)
		assert.Equal(t, ErrTokenMalformed, err, "token %q", token)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret-a").Issue(testUser(false))
	require.NoError(t, err)

	claims, err := NewTokenService("secret-b").Verify(token)
	assert.Nil(t, claims)
	assert.Equal(t, ErrBadSignature, err)
}

func TestTokenService_Expired(t *testing.T) {
	secret := "test-secret"
	claims := &Claims{
		UserID: uuid.NewString(),
		Email:  "halmonte@mail.com",
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)

	got, err := NewTokenService(secret).Verify(token)
	assert.Nil(t, got)
	assert.Equal(t, ErrTokenExpired, err)
}
