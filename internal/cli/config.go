package cli

import (
	"os"
	"path/filepath"

	"github.com/ugordi/gladialore-admin/internal/glapi"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Token     string
	TokenFile string
	Output    string
	Verbose   bool

	refreshToken string
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("GLADMIN_SERVER", glapi.DefaultBaseURL),
		Token:     os.Getenv("GLADMIN_TOKEN"),
		TokenFile: getEnvOrDefault("GLADMIN_TOKEN_FILE", defaultTokenFile()),
		Output:    "text",
		Verbose:   false,
	}
}

// LoadTokens loads the access and refresh tokens from disk if not already set
func (c *Config) LoadTokens() error {
	if c.Token == "" {
		token, err := readTokenFile(c.TokenFile)
		if err != nil {
			return err
		}
		c.Token = token
	}

	refresh, err := readTokenFile(c.refreshFile())
	if err != nil {
		return err
	}
	c.refreshToken = refresh
	return nil
}

// SaveTokens writes the token pair to disk; a pair without a refresh token
// keeps whatever refresh token is already stored
func (c *Config) SaveTokens(tokens glapi.TokenPair) error {
	c.Token = tokens.AccessToken

	dir := filepath.Dir(c.TokenFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}
	if err := os.WriteFile(c.TokenFile, []byte(tokens.AccessToken), 0600); err != nil {
		return err
	}

	if tokens.RefreshToken != "" {
		c.refreshToken = tokens.RefreshToken
		if err := os.WriteFile(c.refreshFile(), []byte(tokens.RefreshToken), 0600); err != nil {
			return err
		}
	}
	return nil
}

// RefreshToken returns the stored refresh token, if any
func (c *Config) RefreshToken() string {
	return c.refreshToken
}

// ClearTokens removes both stored tokens
func (c *Config) ClearTokens() error {
	c.Token = ""
	c.refreshToken = ""
	if err := removeIfPresent(c.TokenFile); err != nil {
		return err
	}
	return removeIfPresent(c.refreshFile())
}

// ClearAccessToken removes only the access token, keeping the refresh token
// for a later refresh
func (c *Config) ClearAccessToken() error {
	c.Token = ""
	return removeIfPresent(c.TokenFile)
}

func (c *Config) refreshFile() string {
	return filepath.Join(filepath.Dir(c.TokenFile), "refresh")
}

func readTokenFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil // No token file is fine
		}
		return "", err
	}
	return string(data), nil
}

func removeIfPresent(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func defaultTokenFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gladmin/token"
	}
	return filepath.Join(home, ".gladmin", "token")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
