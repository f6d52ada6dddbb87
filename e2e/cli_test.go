package e2e_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cliRunner manages CLI binary execution
type cliRunner struct {
	binaryPath string
	serverURL  string
	tokenFile  string
}

func newCLIRunner(t *testing.T, serverURL string) *cliRunner {
	t.Helper()

	// Find project root (where go.mod is)
	projectRoot := findProjectRoot(t)

	// Build the CLI binary
	binaryPath := filepath.Join(projectRoot, "bin", "gladmin-test")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gladmin")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "failed to build CLI: %s", string(output))

	// Create temp token file
	tokenFile := filepath.Join(t.TempDir(), "token")

	return &cliRunner{
		binaryPath: binaryPath,
		serverURL:  serverURL,
		tokenFile:  tokenFile,
	}
}

func (r *cliRunner) run(args ...string) (string, error) {
	fullArgs := append([]string{
		"--server", r.serverURL,
		"--token-file", r.tokenFile,
		"--output", "json",
	}, args...)

	cmd := exec.Command(r.binaryPath, fullArgs...)
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func (r *cliRunner) login(t *testing.T) {
	t.Helper()
	output, err := r.run("auth", "login", "--user", "admin", "--pass", "secret")
	require.NoError(t, err, "output: %s", output)
}

func findProjectRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find project root (go.mod)")
		}
		dir = parent
	}
}

// fakeBackend is a minimal stand-in for the game backend's admin API,
// recording every request it serves
type fakeBackend struct {
	server *httptest.Server

	mu       sync.Mutex
	requests []string
}

func startFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{}
	b.server = httptest.NewServer(http.HandlerFunc(b.handle))
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.requests = append(b.requests, r.Method+" "+r.URL.Path)
	b.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
		var creds struct {
			Username string `json:"kullanici_adi"`
			Password string `json:"sifre"`
		}
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username != "admin" || creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid username or password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"accessToken":"good-token","refreshToken":"refresh-token"}`))
		return

	case r.Method == http.MethodPost && r.URL.Path == "/auth/logout":
		w.WriteHeader(http.StatusNoContent)
		return
	}

	// Everything else requires the bearer token
	if r.Header.Get("Authorization") != "Bearer good-token" {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"unauthorized"}`))
		return
	}

	switch r.Method + " " + r.URL.Path {
	case "POST /admin/audit/logins":
		w.WriteHeader(http.StatusNoContent)
	case "GET /admin/me":
		_, _ = w.Write([]byte(`{"id":"a1","username":"admin","role":"admin"}`))
	case "GET /admin/users":
		_, _ = w.Write([]byte(`{"items":[
			{"id":"u1","username":"alice","status":"active","role":"user"},
			{"id":"u2","username":"bob","status":"banned","role":"user"}
		],"total":2}`))
	case "GET /admin/settings":
		_, _ = w.Write([]byte(`{
			"admin":{"points_per_level":5},
			"energy":{"battle_cost":10},
			"pvp":{"steal_pct_min":1,"steal_pct_max":5}
		}`))
	case "PATCH /admin/enemies/e1/loot":
		_, _ = w.Write([]byte(`{"id":"e1","name":"Dire Wolf","loot_chance_total":40}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	}
}

func (b *fakeBackend) sawRequest(methodPath string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, req := range b.requests {
		if req == methodPath {
			return true
		}
	}
	return false
}

// Tests

func TestCLI_LoginStoresTokens(t *testing.T) {
	backend := startFakeBackend(t)
	cli := newCLIRunner(t, backend.server.URL)

	output, err := cli.run("auth", "login", "--user", "admin", "--pass", "secret")
	require.NoError(t, err, "output: %s", output)
	assert.Contains(t, output, "Logged in as admin")

	access, err := os.ReadFile(cli.tokenFile)
	require.NoError(t, err)
	assert.Equal(t, "good-token", string(access))

	refresh, err := os.ReadFile(filepath.Join(filepath.Dir(cli.tokenFile), "refresh"))
	require.NoError(t, err)
	assert.Equal(t, "refresh-token", string(refresh))

	assert.True(t, backend.sawRequest("POST /admin/audit/logins"))
}

func TestCLI_RejectedLoginLeavesNoTokens(t *testing.T) {
	backend := startFakeBackend(t)
	cli := newCLIRunner(t, backend.server.URL)

	output, err := cli.run("auth", "login", "--user", "admin", "--pass", "wrong")
	assert.Error(t, err)
	assert.Contains(t, output, "Invalid username or password")

	_, statErr := os.Stat(cli.tokenFile)
	assert.True(t, os.IsNotExist(statErr))
}

func TestCLI_UsersList(t *testing.T) {
	backend := startFakeBackend(t)
	cli := newCLIRunner(t, backend.server.URL)
	cli.login(t)

	output, err := cli.run("users", "list")
	require.NoError(t, err, "output: %s", output)

	var list struct {
		Items []struct {
			Username string `json:"username"`
			Status   string `json:"status"`
		} `json:"items"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &list))
	assert.Equal(t, 2, list.Total)
	require.Len(t, list.Items, 2)
	assert.Equal(t, "alice", list.Items[0].Username)
	assert.Equal(t, "banned", list.Items[1].Status)
}

func TestCLI_SettingsShow(t *testing.T) {
	backend := startFakeBackend(t)
	cli := newCLIRunner(t, backend.server.URL)
	cli.login(t)

	output, err := cli.run("settings", "show")
	require.NoError(t, err, "output: %s", output)

	var settings struct {
		Admin struct {
			PointsPerLevel int `json:"points_per_level"`
		} `json:"admin"`
		Energy struct {
			BattleCost int `json:"battle_cost"`
		} `json:"energy"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &settings))
	assert.Equal(t, 5, settings.Admin.PointsPerLevel)
	assert.Equal(t, 10, settings.Energy.BattleCost)
}

func TestCLI_InvalidLootFailsBeforeBackend(t *testing.T) {
	backend := startFakeBackend(t)
	cli := newCLIRunner(t, backend.server.URL)
	cli.login(t)

	output, err := cli.run("enemies", "set-loot", "e1",
		"--total", "150", "--t1", "50", "--t2", "50")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "loot")
	assert.False(t, backend.sawRequest("PATCH /admin/enemies/e1/loot"))
}

func TestCLI_ValidLootIsSent(t *testing.T) {
	backend := startFakeBackend(t)
	cli := newCLIRunner(t, backend.server.URL)
	cli.login(t)

	output, err := cli.run("enemies", "set-loot", "e1",
		"--total", "40", "--t1", "25", "--t2", "15")
	require.NoError(t, err, "output: %s", output)
	assert.True(t, backend.sawRequest("PATCH /admin/enemies/e1/loot"))
}

func TestCLI_Logout(t *testing.T) {
	backend := startFakeBackend(t)
	cli := newCLIRunner(t, backend.server.URL)
	cli.login(t)

	output, err := cli.run("auth", "logout")
	require.NoError(t, err, "output: %s", output)
	assert.True(t, backend.sawRequest("POST /auth/logout"))

	_, statErr := os.Stat(cli.tokenFile)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(filepath.Join(filepath.Dir(cli.tokenFile), "refresh"))
	assert.True(t, os.IsNotExist(statErr))

	// Gone credentials mean authenticated calls are rejected again
	output, err = cli.run("auth", "me")
	assert.Error(t, err)
	assert.Contains(t, strings.ToLower(output), "unauthorized")
}
