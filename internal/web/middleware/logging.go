package middleware

import (
	"log/slog"
	"net/http"

	"github.com/ugordi/gladialore-admin/internal/middleware"
)

// Logging creates logging middleware for the admin web interface
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Logging(logger)
}
