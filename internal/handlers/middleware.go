package handlers

import (
	"context"
	"log"
	"net/http"
	"time"

	"questacademy/internal/auth"
	"questacademy/internal/security"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const UsernameContextKey ContextKey = "username"

// SessionCookieName carries the signed session token.
const SessionCookieName = "qa_session"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	tokens  *auth.TokenManager
	limiter *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(tokens *auth.TokenManager, limiter *security.RateLimiter) *Middleware {
	return &Middleware{tokens: tokens, limiter: limiter}
}

// RequireAuth rejects requests without a valid session token and puts
// the authenticated username into the request context.
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			respondWithError(w, http.StatusUnauthorized, "authentication required", "", nil)
			return
		}

		username, err := m.tokens.Verify(cookie.Value)
		if err != nil {
			clearSessionCookie(w)
			respondWithError(w, http.StatusUnauthorized, "invalid session", "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), UsernameContextKey, username)
		next(w, r.WithContext(ctx))
	}
}

// RateLimit throttles by client IP. Used on the credential endpoints.
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow(security.ClientIP(r)) {
			respondWithError(w, http.StatusTooManyRequests, "too many requests, slow down", "", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// UsernameFromContext retrieves the authenticated username, or "" when
// the request did not pass RequireAuth.
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(UsernameContextKey).(string)
	return username
}

func setSessionCookie(w http.ResponseWriter, token string, maxAge time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
