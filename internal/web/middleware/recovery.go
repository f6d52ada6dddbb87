package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ugordi/gladialore-admin/internal/middleware"
)

// Recovery wraps the shared panic recovery with an HTML error page suitable
// for the panel.
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, panelErrorPage)
}

func panelErrorPage(w http.ResponseWriter, _ *http.Request, _ any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Gladialore Admin — Error</title></head>
<body>
<h1>Something broke</h1>
<p>The panel hit an unexpected error. The backend may still have applied your change.</p>
<p><a href="/">Back to the dashboard</a></p>
</body>
</html>`))
}
