package web_test

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnonymousIsRedirectedToLogin(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/users")

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login?next=%2Fusers", rr.Header().Get("Location"))
}

func TestLoginFlow(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"username": {"admin"}, "password": {"secret"}}
	rr := ts.post("/login", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/", rr.Header().Get("Location"))
	assert.True(t, ts.cookies.hasSession())

	// The login is recorded in the backend's audit trail
	assert.True(t, ts.backend.sawRequest("POST /admin/audit/logins"))

	rr = ts.followRedirect(rr)
	assert.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "header", "admin")
	assertContainsText(t, doc, "#flash", "Welcome back")
}

func TestLoginHonorsNextParameter(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{
		"username": {"admin"},
		"password": {"secret"},
		"next":     {"/settings"},
	}
	rr := ts.post("/login", form)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/settings", rr.Header().Get("Location"))
}

func TestLoginRejectionShowsBackendMessage(t *testing.T) {
	ts := newWebTestServer(t)

	form := url.Values{"username": {"admin"}, "password": {"wrong"}}
	rr := ts.post("/login", form)

	// Rendered inline, no redirect and no session
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.False(t, ts.cookies.hasSession())

	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, ".flash.error", "Invalid username or password")
	// Username is preserved in the form
	val, _ := doc.Find("input[name='username']").Attr("value")
	assert.Equal(t, "admin", val)
}

func TestBackendRejectionTearsDownCredential(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	// Backend stops honoring the token mid-session
	ts.backend.revoke()

	// The page the failure happens on renders with an error notice
	rr := ts.get("/users")
	require.Equal(t, http.StatusOK, rr.Code)
	doc := parseHTML(rr.Body)
	assertContainsText(t, doc, "#flash", "token expired")

	// The credential is gone, so the next navigation hits the login gate
	rr = ts.get("/enemies")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Contains(t, rr.Header().Get("Location"), "/login")
}

func TestLogout(t *testing.T) {
	ts := newWebTestServer(t)
	ts.login()

	rr := ts.post("/logout", nil)

	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Equal(t, "/login", rr.Header().Get("Location"))
	assert.False(t, ts.cookies.hasSession())

	// The backend's refresh token was revoked
	assert.True(t, ts.backend.sawRequest("POST /auth/logout"))

	// The panel is gated again
	rr = ts.get("/")
	assert.Equal(t, http.StatusSeeOther, rr.Code)
	assert.Contains(t, rr.Header().Get("Location"), "/login")
}
