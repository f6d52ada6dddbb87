package glapi

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/ugordi/gladialore-admin/internal/model"
)

// loginRequest uses the backend's native field names, which differ from the
// English names the rest of the panel uses
type loginRequest struct {
	Username string `json:"kullanici_adi"`
	Password string `json:"sifre"`
}

// loginResponse tolerates both response shapes the backend has shipped:
// tokens at the top level, or nested under a data wrapper
type loginResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	Data         struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
	} `json:"data"`
}

// TokenPair is the canonical shape login resolves to; no downstream code
// branches on the wire variant again
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Login authenticates against the backend and returns the extracted token
// pair. A response with no access token in either known shape is a fatal
// login failure.
func (c *Client) Login(ctx context.Context, username, password string) (TokenPair, error) {
	req := loginRequest{
		Username: strings.TrimSpace(username),
		Password: password,
	}

	var resp loginResponse
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		return TokenPair{}, err
	}

	pair := extractTokens(resp)
	if pair.AccessToken == "" {
		return TokenPair{}, model.ErrNoAccessToken
	}
	return pair, nil
}

func extractTokens(resp loginResponse) TokenPair {
	pair := TokenPair{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	}
	if pair.AccessToken == "" {
		pair.AccessToken = resp.Data.AccessToken
	}
	if pair.RefreshToken == "" {
		pair.RefreshToken = resp.Data.RefreshToken
	}
	return pair
}

// Logout revokes the refresh token server-side. Callers clear local session
// state regardless of the outcome.
func (c *Client) Logout(ctx context.Context, refreshToken string) error {
	body := map[string]string{"refreshToken": refreshToken}
	return c.post(ctx, "/auth/logout", body, nil)
}

// Refresh exchanges a refresh token for a new access token
func (c *Client) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	body := map[string]string{"refreshToken": refreshToken}

	var resp loginResponse
	if err := c.post(ctx, "/auth/refresh", body, &resp); err != nil {
		return TokenPair{}, err
	}

	pair := extractTokens(resp)
	if pair.AccessToken == "" {
		return TokenPair{}, model.ErrNoAccessToken
	}
	return pair, nil
}

// AuditLogin records an admin login event for the audit trail. Best-effort:
// callers treat a failure as non-fatal and discard it.
func (c *Client) AuditLogin(ctx context.Context, meta map[string]string) error {
	body := map[string]any{
		"event": "login",
		"meta":  meta,
	}
	return c.post(ctx, "/admin/audit/logins", body, nil)
}

// Me returns the authenticated admin's identity as the backend reports it
func (c *Client) Me(ctx context.Context) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.get(ctx, "/admin/me", nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}
