package service_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/go-deeplink-shortener/internal/app/service"
)

func TestBuildJWTString(t *testing.T) {
	auth := service.NewAuth("test-secret")

	tokenStr, guestID, err := auth.BuildJWTString()

	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)
	require.NotEmpty(t, guestID)

	token, err := jwt.ParseWithClaims(tokenStr, &service.Claims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims, ok := token.Claims.(*service.Claims)
	require.True(t, ok)
	require.Equal(t, guestID, claims.GuestID)
	require.WithinDuration(t, time.Now().Add(service.TokenExp), claims.ExpiresAt.Time, time.Minute)
}

func TestParseClaims(t *testing.T) {
	auth := service.NewAuth("test-secret")

	t.Run("valid token", func(t *testing.T) {
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, service.Claims{
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(service.TokenExp)),
			},
			GuestID: "guest-123",
		})

		signedToken, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		claims, err := auth.ParseClaims(&http.Cookie{Name: "token", Value: signedToken})
		require.NoError(t, err)
		require.Equal(t, "guest-123", claims.GuestID)
	})

	t.Run("invalid token", func(t *testing.T) {
		claims, err := auth.ParseClaims(&http.Cookie{Name: "token", Value: "invalid.token.here"})
		require.Error(t, err)
		require.Nil(t, claims)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other := service.NewAuth("other-secret")
		signed, _, err := other.BuildJWTString()
		require.NoError(t, err)

		claims, err := auth.ParseClaims(&http.Cookie{Name: "token", Value: signed})
		require.Error(t, err)
		require.Nil(t, claims)
	})
}
