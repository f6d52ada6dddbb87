package handler

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/session"
	"github.com/ugordi/gladialore-admin/internal/web/middleware"
)

// AuthHandler handles login and logout
type AuthHandler struct {
	api          *glapi.Client
	sessions     *session.Service
	logger       *slog.Logger
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(api *glapi.Client, sessions *session.Service, logger *slog.Logger, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		api:          api,
		sessions:     sessions,
		logger:       logger,
		cookieSecure: cookieSecure,
	}
}

type loginPage struct {
	Username string
	Error    string
	Next     string
}

// LoginPage renders the login page
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if sess := middleware.GetSession(r.Context()); sess != nil && sess.AccessToken != "" {
		// Already logged in
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	data := loginPage{Next: r.URL.Query().Get("next")}
	render(w, r, "login", "Login", "", data)
}

// Login handles the login form: authenticates against the backend, stores
// the issued tokens in a fresh session, and points the browser at it
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.renderLoginError(w, r, "Invalid form data", "", "")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	next := r.FormValue("next")

	if username == "" || password == "" {
		h.renderLoginError(w, r, "Username and password are required", username, next)
		return
	}

	tokens, err := h.api.Login(r.Context(), username, password)
	if err != nil {
		h.renderLoginError(w, r, errorMessage(err), username, next)
		return
	}

	sess, err := h.sessions.Create(r.Context(), username, tokens)
	if err != nil {
		h.logger.Error("failed to store session", slog.Any("error", err))
		h.renderLoginError(w, r, "Failed to store session", username, next)
		return
	}

	h.setSessionCookie(w, string(sess.ID))

	// Best-effort audit trail; a failure here never blocks the login
	auditCtx := middleware.WithSession(r.Context(), sess)
	if err := h.api.AuditLogin(auditCtx, map[string]string{"panel": "web"}); err != nil {
		h.logger.Warn("login audit failed", slog.Any("error", err))
	}

	middleware.SetFlash(w, "success", "Welcome back, "+username+"!")
	if next != "" && strings.HasPrefix(next, "/") {
		http.Redirect(w, r, next, http.StatusSeeOther)
	} else {
		http.Redirect(w, r, "/", http.StatusSeeOther)
	}
}

// Logout revokes the backend refresh token where possible, then drops the
// session and its cookie
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess := middleware.GetSession(r.Context())
	if sess != nil {
		if sess.RefreshToken != "" {
			if err := h.api.Logout(r.Context(), sess.RefreshToken); err != nil {
				h.logger.Warn("backend logout failed", slog.Any("error", err))
			}
		}
		if err := h.sessions.Clear(r.Context(), sess.ID); err != nil {
			h.logger.Warn("failed to clear session", slog.Any("error", err))
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})

	middleware.SetFlash(w, "info", "You have been logged out")
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) renderLoginError(w http.ResponseWriter, r *http.Request, errorMsg, username, next string) {
	data := loginPage{
		Username: username,
		Error:    errorMsg,
		Next:     next,
	}
	render(w, r, "login", "Login", "", data)
}
