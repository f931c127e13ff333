package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// AuthIface defines the JWT operations used by the guest-token middleware.
type AuthIface interface {
	BuildJWTString() (string, string, error)
	ParseClaims(c *http.Cookie) (*Claims, error)
	ParseRawJWT(tokenString string) (*Claims, error)
}

// Claims are the JWT claims issued to anonymous visitors. GuestID ties
// repeat visits together without any account.
type Claims struct {
	jwt.RegisteredClaims
	GuestID string `json:"guest_id"`
}

// TokenExp defines the expiration time of the guest token (1 year).
const TokenExp = time.Hour * 24 * 365

const defaultSecretKey = "supersecretkey"

// Auth builds and parses the guest JWT carried in the token cookie.
type Auth struct {
	secret []byte
}

// NewAuth creates an Auth signing with the given secret; an empty secret
// falls back to the built-in development key.
func NewAuth(secret string) *Auth {
	if secret == "" {
		secret = defaultSecretKey
	}
	return &Auth{secret: []byte(secret)}
}

// BuildJWTString mints a token for a fresh guest id and returns both.
func (a *Auth) BuildJWTString() (string, string, error) {
	guestID := uuid.New().String()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		GuestID: guestID,
	})

	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", "", err
	}

	return tokenString, guestID, nil
}

// ParseClaims parses and verifies the guest JWT from the cookie.
func (a *Auth) ParseClaims(c *http.Cookie) (*Claims, error) {
	return a.ParseRawJWT(c.Value)
}

func (a *Auth) ParseRawJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token or claims")
	}

	return claims, nil
}
