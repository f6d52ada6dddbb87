package glapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTokens records reads and invalidations for assertions
type fakeTokens struct {
	mu          sync.Mutex
	token       string
	invalidated bool
}

func (f *fakeTokens) Token(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token, nil
}

func (f *fakeTokens) Invalidate(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = ""
	f.invalidated = true
	return nil
}

func newTestClient(t *testing.T, handler http.HandlerFunc, tokens TokenSource) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New(Config{BaseURL: server.URL}, tokens)
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{}`))
	}, &fakeTokens{token: "tok-123"})

	var out map[string]any
	require.NoError(t, client.get(context.Background(), "/admin/me", nil, &out))
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientOmitsAuthorizationWithoutToken(t *testing.T) {
	var gotAuth string
	var present bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, present = r.Header["Authorization"]
		w.Write([]byte(`{}`))
	}, &fakeTokens{})

	require.NoError(t, client.get(context.Background(), "/admin/me", nil, nil))
	assert.Empty(t, gotAuth)
	assert.False(t, present)
}

func TestStructuredBackendErrorUsesMessageField(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"region name taken"}`))
	}, &fakeTokens{token: "t"})

	err := client.get(context.Background(), "/admin/regions", nil, nil)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "region name taken", apiErr.Message)
	assert.JSONEq(t, `{"message":"region name taken"}`, string(apiErr.Body))
}

func TestBackendErrorFieldFallbacks(t *testing.T) {
	cases := []struct {
		name string
		body string
		want string
	}{
		{"error string", `{"error":"nope"}`, "nope"},
		{"error object message", `{"error":{"message":"denied","code":"X"}}`, "denied"},
		{"error object code only", `{"error":{"code":"E_DENIED"}}`, "E_DENIED"},
		{"unstructured", `<html>boom</html>`, fallbackMessage},
		{"empty body", ``, fallbackMessage},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(tc.body))
			}, &fakeTokens{token: "t"})

			err := client.get(context.Background(), "/admin/settings", nil, nil)
			apiErr, ok := AsAPIError(err)
			require.True(t, ok)
			assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
			assert.Equal(t, tc.want, apiErr.Message)
			assert.NotEmpty(t, apiErr.Message)
		})
	}
}

func TestNetworkFailureIsStatusZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	client := New(Config{BaseURL: server.URL}, &fakeTokens{token: "t"})
	server.Close()

	err := client.get(context.Background(), "/admin/users", nil, nil)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
	assert.Error(t, apiErr.Err)
}

func TestTimeoutIsStatusZero(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	t.Cleanup(server.Close)

	client := New(Config{BaseURL: server.URL, Timeout: 20 * time.Millisecond}, &fakeTokens{token: "t"})

	err := client.get(context.Background(), "/admin/users", nil, nil)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, 0, apiErr.Status)
	assert.NotEmpty(t, apiErr.Message)
}

func TestUnauthorizedInvalidatesTokenSource(t *testing.T) {
	tokens := &fakeTokens{token: "stale"}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"token expired"}`))
	}, tokens)

	err := client.get(context.Background(), "/admin/users", nil, nil)
	apiErr, ok := AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.Status)

	assert.True(t, tokens.invalidated)
	got, _ := tokens.Token(context.Background())
	assert.Empty(t, got)
}

func TestForbiddenDoesNotInvalidateTokenSource(t *testing.T) {
	tokens := &fakeTokens{token: "ok"}
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}, tokens)

	err := client.get(context.Background(), "/admin/users", nil, nil)
	require.Error(t, err)
	assert.False(t, tokens.invalidated)
	got, _ := tokens.Token(context.Background())
	assert.Equal(t, "ok", got)
}

func TestClientMakesExactlyOneAttempt(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}, &fakeTokens{token: "t"})

	err := client.get(context.Background(), "/admin/users", nil, nil)
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
