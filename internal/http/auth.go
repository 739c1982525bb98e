package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"fittrack-backend-go/internal/services"
)

type contextKey string

const ctxUserID contextKey = "userID"

const sessionCookie = "session"

// WithIdentity resolves the caller from a Bearer token or the session cookie
// and rejects the request through fail when it is missing, invalid or names
// an unknown user.
func WithIdentity(tokens services.TokenService, tracker *services.Tracker, fail func(http.ResponseWriter, *http.Request, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				if cookie, err := r.Cookie(sessionCookie); err == nil {
					tokenStr = cookie.Value
				}
			}
			if tokenStr == "" {
				fail(w, r, services.ErrUnauthorized("Authentication required"))
				return
			}
			userID, err := tokens.UserIDFromToken(tokenStr)
			if err != nil {
				fail(w, r, err)
				return
			}
			if err := tracker.RequireUser(r.Context(), userID); err != nil {
				fail(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), ctxUserID, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
}

func CurrentUserID(r *http.Request) int64 {
	if value, ok := r.Context().Value(ctxUserID).(int64); ok {
		return value
	}
	return 0
}

func (s *Server) apiUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	WriteError(w, r, err)
}

func (s *Server) pageUnauthorized(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusUnauthorized
	if svcErr, ok := services.AsServiceError(err); ok {
		status = svcErr.Status
	}
	s.renderPage(w, r, status, "unauthorized", "Sign in", "", "This page needs a valid session.")
}

// StartSession checks the token from a sign-in link, stores it in the
// session cookie and redirects to the dashboard.
func (s *Server) StartSession(w http.ResponseWriter, r *http.Request) {
	tokenStr := strings.TrimSpace(r.URL.Query().Get("token"))
	userID, err := s.Tokens.UserIDFromToken(tokenStr)
	if err == nil {
		err = s.Tracker.RequireUser(r.Context(), userID)
	}
	if err != nil {
		s.pageUnauthorized(w, r, err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    tokenStr,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Now().Add(s.Tokens.TTL),
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
