package middleware

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/ugordi/gladialore-admin/internal/web/templates"
)

const (
	flashCookieName = "flash"
	flashContextKey = contextKey("flash")
)

// GetFlash returns the flash decoded by the Flash middleware, or nil.
func GetFlash(ctx context.Context) *templates.FlashMessage {
	flash, _ := ctx.Value(flashContextKey).(*templates.FlashMessage)
	return flash
}

// SetFlash queues a one-shot message for the next page load. The payload is
// base64-encoded because backend error messages can carry characters that are
// not legal in a cookie value.
func SetFlash(w http.ResponseWriter, flashType, message string) {
	encoded := base64.URLEncoding.EncodeToString([]byte(flashType + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Flash pops any pending flash into the request context and expires the
// cookie so the message shows exactly once.
func Flash() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var flash *templates.FlashMessage

			if cookie, err := r.Cookie(flashCookieName); err == nil && cookie.Value != "" {
				flash = decodeFlash(cookie.Value)
				http.SetCookie(w, &http.Cookie{
					Name:     flashCookieName,
					Value:    "",
					Path:     "/",
					MaxAge:   -1,
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), flashContextKey, flash)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func decodeFlash(value string) *templates.FlashMessage {
	raw, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return nil
	}

	kind, msg, found := strings.Cut(string(raw), "|")
	if !found {
		return &templates.FlashMessage{Type: "info", Message: kind}
	}
	return &templates.FlashMessage{Type: kind, Message: msg}
}
