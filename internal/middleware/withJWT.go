package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/atinyakov/go-deeplink-shortener/internal/app/service"
)

// ContextKey is a custom type for context keys to avoid collisions.
type ContextKey string

// GuestIDKey holds the guest id extracted from the token cookie.
const GuestIDKey ContextKey = "guestID"

// WithGuestToken ensures every visitor carries a signed guest token. A
// missing or invalid cookie gets replaced with a fresh one instead of
// failing the request; a redirect must never break over a stale cookie.
func WithGuestToken(auth service.AuthIface) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			guestID := ""

			if cookie, err := r.Cookie("token"); err == nil {
				if claims, err := auth.ParseClaims(cookie); err == nil {
					guestID = claims.GuestID
				}
			}

			if guestID == "" {
				tokenString, generatedID, err := auth.BuildJWTString()
				if err != nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}

				http.SetCookie(w, &http.Cookie{
					Name:     "token",
					Value:    tokenString,
					Expires:  time.Now().Add(service.TokenExp),
					HttpOnly: true,
					Path:     "/",
				})
				guestID = generatedID
			}

			ctx := context.WithValue(r.Context(), GuestIDKey, guestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
