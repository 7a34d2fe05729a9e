package middleware

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"sport-academy/internal/auth"
	"sport-academy/internal/models"
)

type contextKey string

const (
	UserKey      contextKey = "user"
	SessionIDKey contextKey = "sessionID"
)

// SessionCookieName is the cookie holding the signed session ID.
const SessionCookieName = "sport_academy_session"

func sign(value, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(value))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}

func CreateSessionCookie(sessionID, secret string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    fmt.Sprintf("%s|%s", sessionID, sign(sessionID, secret)),
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	}
}

func ValidateSessionCookie(cookie *http.Cookie, secret string) (string, error) {
	if cookie == nil {
		return "", fmt.Errorf("no session cookie")
	}

	parts := strings.Split(cookie.Value, "|")
	if len(parts) != 2 || parts[0] == "" {
		return "", fmt.Errorf("invalid session format")
	}

	if !hmac.Equal([]byte(parts[1]), []byte(sign(parts[0], secret))) {
		return "", fmt.Errorf("invalid session signature")
	}
	return parts[0], nil
}

// SessionGate resolves the request's gate from its cookie. ok is false when the cookie is
// missing, forged, or names a session this process does not know.
func SessionGate(r *http.Request, sessions *auth.Sessions, secret string) (string, *auth.Gate, bool) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", nil, false
	}
	id, err := ValidateSessionCookie(cookie, secret)
	if err != nil {
		return "", nil, false
	}
	g, ok := sessions.Get(id)
	if !ok {
		return "", nil, false
	}
	return id, g, true
}

// RequireAuth lets the request through only when its gate is LoggedIn.
func RequireAuth(sessions *auth.Sessions, secret string) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			id, g, ok := SessionGate(r, sessions, secret)
			if !ok {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}
			user, loggedIn := g.User()
			if !loggedIn {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, user)
			ctx = context.WithValue(ctx, SessionIDKey, id)
			next(w, r.WithContext(ctx))
		}
	}
}

// GetUser returns the logged-in user placed in the context by RequireAuth.
func GetUser(r *http.Request) (models.User, bool) {
	u, ok := r.Context().Value(UserKey).(models.User)
	return u, ok
}
