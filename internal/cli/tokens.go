package cli

import "context"

// fileTokens adapts the CLI's token files to the API client's credential
// interface. A backend rejection drops the access token but keeps the
// refresh token, so `gladmin auth refresh` can recover without a password.
type fileTokens struct {
	cfg *Config
}

func (t *fileTokens) Token(_ context.Context) (string, error) {
	return t.cfg.Token, nil
}

func (t *fileTokens) Invalidate(_ context.Context) error {
	return t.cfg.ClearAccessToken()
}
