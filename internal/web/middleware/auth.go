package middleware

import (
	"context"
	"net/http"
	"net/url"

	"github.com/ugordi/gladialore-admin/internal/model"
	"github.com/ugordi/gladialore-admin/internal/session"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"

	// SessionCookieName is the browser cookie carrying the admin session ID
	SessionCookieName = "admin_session"
)

// GetSession retrieves the authenticated admin session from the request context
// Returns nil if no session is authenticated
func GetSession(ctx context.Context) *model.Session {
	sess, _ := ctx.Value(sessionContextKey).(*model.Session)
	return sess
}

// WithSession stores a session in the context; used when a handler has just
// created the session and wants API calls on the same request to use it
func WithSession(ctx context.Context, sess *model.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, sess)
}

// Auth returns middleware that requires a live session with a backend
// credential. Anything else redirects to the login page, remembering the
// original URL so login can send the admin back.
func Auth(sessions *session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := getSessionFromCookie(r, sessions)
			if sess == nil || sess.AccessToken == "" {
				redirectURL := "/login?next=" + url.QueryEscape(r.URL.RequestURI())
				http.Redirect(w, r, redirectURL, http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

// OptionalAuth returns middleware that attempts authentication but doesn't
// require it. Sets the session in context if present, nil otherwise.
func OptionalAuth(sessions *session.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := getSessionFromCookie(r, sessions)
			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), sess)))
		})
	}
}

func getSessionFromCookie(r *http.Request, sessions *session.Service) *model.Session {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return nil
	}

	sess, err := sessions.Get(r.Context(), model.SessionID(cookie.Value))
	if err != nil {
		return nil
	}

	return sess
}
