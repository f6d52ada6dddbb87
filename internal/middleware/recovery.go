package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

// PanicHandler writes the error response after a recovered panic.
type PanicHandler func(w http.ResponseWriter, r *http.Request, v any)

// Recovery turns handler panics into a logged 500 instead of a dropped
// connection. The response body is delegated so the web tree can render an
// HTML error page while anything else stays plain text.
func Recovery(logger *slog.Logger, respond PanicHandler) func(http.Handler) http.Handler {
	if respond == nil {
		respond = plainPanicResponse
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if v := recover(); v != nil {
					logger.Error("handler panic",
						slog.Any("value", v),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("stack", string(debug.Stack())),
					)
					respond(w, r, v)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}

func plainPanicResponse(w http.ResponseWriter, _ *http.Request, _ any) {
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}
