// Package session owns the lifecycle of admin sessions: one record per
// logged-in browser, holding the backend credentials obtained at login.
// It is the single writer of session state; the API client only reads and
// invalidates tokens through the TokenSource it hands out.
package session

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"time"

	"github.com/ugordi/gladialore-admin/internal/dependencies/clock"
	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/model"
	"github.com/ugordi/gladialore-admin/internal/storage"
)

// Service manages admin sessions
type Service struct {
	storage storage.Storage
	clock   clock.Clock
	ttl     time.Duration
}

// Config holds configuration for the session service
type Config struct {
	// TTL bounds how long a session stays valid after login
	TTL time.Duration
}

// DefaultConfig returns default session configuration
func DefaultConfig() Config {
	return Config{
		TTL: 7 * 24 * time.Hour,
	}
}

// New creates a new session service
func New(store storage.Storage, clk clock.Clock, cfg Config) *Service {
	if cfg.TTL == 0 {
		cfg.TTL = DefaultConfig().TTL
	}
	return &Service{
		storage: store,
		clock:   clk,
		ttl:     cfg.TTL,
	}
}

// Create stores a new session for the given login and returns it
func (s *Service) Create(ctx context.Context, username string, tokens glapi.TokenPair) (*model.Session, error) {
	now := s.clock.Now()
	session := &model.Session{
		ID:           model.SessionID(generateID("as_")),
		Username:     username,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.ttl),
	}

	if err := s.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Get returns the session with the given ID. Expired sessions are removed
// and reported as not found.
func (s *Service) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}

	if session.Expired(s.clock.Now()) {
		_ = s.storage.DeleteSession(ctx, id)
		return nil, model.ErrSessionNotFound
	}

	return session, nil
}

// SetTokens replaces the session's backend credentials (after a refresh)
func (s *Service) SetTokens(ctx context.Context, id model.SessionID, tokens glapi.TokenPair) error {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		return err
	}

	session.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		session.RefreshToken = tokens.RefreshToken
	}
	return s.storage.SaveSession(ctx, session)
}

// Clear removes the session entirely (logout). Idempotent: clearing a
// missing session is a no-op.
func (s *Service) Clear(ctx context.Context, id model.SessionID) error {
	return s.storage.DeleteSession(ctx, id)
}

// clearAccessToken drops only the access token, keeping the session row and
// its refresh token. This is what a backend 401 triggers: the next gate
// evaluation sees an empty credential and redirects to login.
func (s *Service) clearAccessToken(ctx context.Context, id model.SessionID) error {
	session, err := s.storage.GetSession(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return nil
		}
		return err
	}

	session.AccessToken = ""
	return s.storage.SaveSession(ctx, session)
}

// TokenSource binds a session to the API client's credential interface
func (s *Service) TokenSource(id model.SessionID) glapi.TokenSource {
	return &sessionTokens{service: s, id: id}
}

type sessionTokens struct {
	service *Service
	id      model.SessionID
}

// Token returns the session's access token; a missing session reads as an
// empty credential, never as an error
func (t *sessionTokens) Token(ctx context.Context) (string, error) {
	session, err := t.service.Get(ctx, t.id)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return "", nil
		}
		return "", err
	}
	return session.AccessToken, nil
}

// Invalidate discards the session's access token after a backend rejection
func (t *sessionTokens) Invalidate(ctx context.Context) error {
	return t.service.clearAccessToken(ctx, t.id)
}

func generateID(prefix string) string {
	buf := make([]byte, 24)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand failure is unrecoverable
	}
	return prefix + base64.RawURLEncoding.EncodeToString(buf)
}
