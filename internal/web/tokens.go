package web

import (
	"context"

	"github.com/ugordi/gladialore-admin/internal/session"
	"github.com/ugordi/gladialore-admin/internal/web/middleware"
)

// SessionTokens is a glapi.TokenSource that reads the credential of
// whichever session the current request context carries. One client serves
// every admin; the binding happens per request.
type SessionTokens struct {
	sessions *session.Service
}

// NewSessionTokens creates a request-scoped token source over the session
// service
func NewSessionTokens(sessions *session.Service) *SessionTokens {
	return &SessionTokens{sessions: sessions}
}

// Token returns the context session's access token; no session reads as an
// empty credential
func (t *SessionTokens) Token(ctx context.Context) (string, error) {
	sess := middleware.GetSession(ctx)
	if sess == nil {
		return "", nil
	}
	return sess.AccessToken, nil
}

// Invalidate discards the context session's access token after the backend
// rejects it. The session row and refresh token survive, so the next page
// load hits the login gate instead of looping on a dead credential.
func (t *SessionTokens) Invalidate(ctx context.Context) error {
	sess := middleware.GetSession(ctx)
	if sess == nil {
		return nil
	}
	return t.sessions.TokenSource(sess.ID).Invalidate(ctx)
}
