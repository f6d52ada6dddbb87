package web_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"

	"github.com/ugordi/gladialore-admin/internal/factory"
	"github.com/ugordi/gladialore-admin/internal/testutil"
	"github.com/ugordi/gladialore-admin/internal/web"
)

// fakeBackend is a minimal stand-in for the game backend's admin API. It
// requires a bearer token on /admin/ routes, records every request, and
// serves canned fixtures.
type fakeBackend struct {
	server *httptest.Server

	mu       sync.Mutex
	revoked  bool
	requests []string
	bodies   map[string][]byte
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	fb := &fakeBackend{bodies: make(map[string][]byte)}
	fb.server = httptest.NewServer(http.HandlerFunc(fb.handle))
	t.Cleanup(fb.server.Close)
	return fb
}

// revoke makes every subsequent authenticated request fail with 401
func (fb *fakeBackend) revoke() {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	fb.revoked = true
}

func (fb *fakeBackend) sawRequest(methodAndPath string) bool {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	for _, r := range fb.requests {
		if r == methodAndPath {
			return true
		}
	}
	return false
}

func (fb *fakeBackend) body(methodAndPath string) []byte {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.bodies[methodAndPath]
}

func (fb *fakeBackend) handle(w http.ResponseWriter, r *http.Request) {
	key := r.Method + " " + r.URL.Path
	body, _ := io.ReadAll(r.Body)

	fb.mu.Lock()
	fb.requests = append(fb.requests, key)
	fb.bodies[key] = body
	revoked := fb.revoked
	fb.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if key == "POST /auth/login" {
		if !strings.Contains(string(body), `"sifre":"secret"`) {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Invalid username or password"}`))
			return
		}
		_, _ = w.Write([]byte(`{"accessToken":"good-token","refreshToken":"refresh-token"}`))
		return
	}
	if key == "POST /auth/logout" || key == "POST /auth/refresh" {
		_, _ = w.Write([]byte(`{}`))
		return
	}

	if strings.HasPrefix(r.URL.Path, "/admin/") {
		if revoked || r.Header.Get("Authorization") != "Bearer good-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"token expired"}`))
			return
		}
	}

	switch key {
	case "POST /admin/audit/logins":
		_, _ = w.Write([]byte(`{}`))
	case "GET /admin/users":
		_, _ = w.Write([]byte(`{"items":[
			{"id":"u1","username":"alice","status":"active","role":"user"},
			{"id":"u2","username":"bob","status":"banned","role":"user"}
		],"total":2}`))
	case "GET /admin/users/u1":
		_, _ = w.Write([]byte(`{"id":"u1","username":"alice","status":"active","role":"user"}`))
	case "GET /admin/users/u1/main":
		_, _ = w.Write([]byte(`{"level":12}`))
	case "GET /admin/users/u1/wallet":
		_, _ = w.Write([]byte(`{"gold":500}`))
	case "GET /admin/users/u1/sessions":
		_, _ = w.Write([]byte(`[]`))
	case "GET /admin/rankings/users/u1":
		_, _ = w.Write([]byte(`{"rank":3,"user_id":"u1","username":"alice","score":900}`))
	case "PATCH /admin/users/u1/status":
		_, _ = w.Write([]byte(`{"id":"u1","username":"alice","status":"banned","role":"user"}`))
	case "GET /admin/regions":
		_, _ = w.Write([]byte(`{"items":[{"id":"r1","name":"Darkwood","min_level":5}],"total":1}`))
	case "GET /admin/enemies":
		_, _ = w.Write([]byte(`{"items":[
			{"id":"e1","code":"wolf","name":"Dire Wolf","base_level":3,"loot_chance_total":40,"loot_t1":30,"loot_t2":10},
			{"id":"e2","code":"drake","name":"Ash Drake","base_level":9,"is_boss":true}
		],"total":2}`))
	case "PATCH /admin/enemies/e1/loot":
		_, _ = w.Write([]byte(`{"id":"e1","code":"wolf","name":"Dire Wolf","base_level":3}`))
	case "GET /admin/item-templates":
		_, _ = w.Write([]byte(`{"items":[{"id":"i1","code":"sword","name":"Iron Sword","category":"weapon","rarity":"common","tier":1}],"total":3}`))
	case "GET /admin/equipment-slots":
		_, _ = w.Write([]byte(`{"items":[{"code":"hand","name":"Hand"}]}`))
	case "GET /admin/rankings":
		_, _ = w.Write([]byte(`{"items":[{"rank":1,"user_id":"u1","username":"alice","level":12,"score":900}],"total":1}`))
	case "GET /admin/settings":
		_, _ = w.Write([]byte(`{
			"admin":{"points_per_level":5},
			"energy":{"battle_cost":10},
			"pvp":{"steal_pct_min":1,"steal_pct_max":5},
			"battle_rewards":[{"id":"br1","mode":"pve","lvl_min":1,"lvl_max":10,"win_xp_min":10,"win_xp_max":20,"drop_chance_pct":50,"drop_tier_min":1,"drop_tier_max":2}]
		}`))
	case "GET /admin/xp-rules":
		_, _ = w.Write([]byte(`{"rules":{"base":100}}`))
	case "PUT /admin/battle-rewards":
		_, _ = w.Write([]byte(`{"items":[]}`))
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"not found"}`))
	}
}

// webTestServer provides a test server for the admin panel
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.TestApp
	backend *fakeBackend
	cookies *cookieJar
}

// newWebTestServer creates a test server wired against a fake backend
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	backend := newFakeBackend(t)
	logger := testutil.NopLogger()
	app := factory.NewTestApp(backend.server.URL)

	router := web.NewRouter(web.RouterConfig{
		Logger:   logger,
		API:      app.API,
		Sessions: app.Sessions,
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		backend: backend,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, form url.Values) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}

	req := httptest.NewRequest(method, path, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil)
}

// post makes a POST request with form data
func (ts *webTestServer) post(path string, form url.Values) *httptest.ResponseRecorder {
	return ts.request(http.MethodPost, path, form)
}

// login authenticates as the fixture admin and sets the session cookie
func (ts *webTestServer) login() {
	ts.t.Helper()
	form := url.Values{"username": {"admin"}, "password": {"secret"}}
	rr := ts.post("/login", form)
	require.Equal(ts.t, http.StatusSeeOther, rr.Code, "Expected redirect after login")
	require.True(ts.t, ts.cookies.hasSession(), "Expected session cookie to be set")
}

// followRedirect follows a redirect and returns the response
func (ts *webTestServer) followRedirect(rr *httptest.ResponseRecorder) *httptest.ResponseRecorder {
	ts.t.Helper()
	location := rr.Header().Get("Location")
	require.NotEmpty(ts.t, location, "Expected Location header for redirect")
	return ts.get(location)
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// hasSession returns true if the session cookie is set
func (j *cookieJar) hasSession() bool {
	_, ok := j.cookies["admin_session"]
	return ok
}

// Assertion helpers

// assertContainsElement asserts that the document contains an element matching the selector
func assertContainsElement(t *testing.T, doc *goquery.Document, selector string) {
	t.Helper()
	if doc.Find(selector).Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
	}
}

// assertContainsText asserts that the element matching the selector contains the text
func assertContainsText(t *testing.T, doc *goquery.Document, selector, text string) {
	t.Helper()
	el := doc.Find(selector)
	if el.Length() == 0 {
		t.Errorf("Expected to find element matching %q, but none found", selector)
		return
	}
	if !strings.Contains(el.Text(), text) {
		t.Errorf("Expected element %q to contain %q, but got %q", selector, text, el.Text())
	}
}
