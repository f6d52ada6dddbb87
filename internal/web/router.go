package web

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ugordi/gladialore-admin/internal/glapi"
	"github.com/ugordi/gladialore-admin/internal/session"
	"github.com/ugordi/gladialore-admin/internal/web/handler"
	"github.com/ugordi/gladialore-admin/internal/web/middleware"
)

// RouterConfig holds configuration for the admin panel router
type RouterConfig struct {
	Logger       *slog.Logger
	API          *glapi.Client
	Sessions     *session.Service
	CookieSecure bool
}

// NewRouter creates the admin panel router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)
	flashMiddleware := middleware.Flash()
	authMiddleware := middleware.Auth(cfg.Sessions)
	optionalAuthMiddleware := middleware.OptionalAuth(cfg.Sessions)

	// Apply global middleware to all routes
	r.Use(recoveryMiddleware)
	r.Use(loggingMiddleware)

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.API, cfg.Sessions, cfg.Logger, cfg.CookieSecure)
	dashboardHandler := handler.NewDashboardHandler(cfg.API, cfg.Logger)
	usersHandler := handler.NewUsersHandler(cfg.API, cfg.Logger)
	regionsHandler := handler.NewRegionsHandler(cfg.API, cfg.Logger)
	enemiesHandler := handler.NewEnemiesHandler(cfg.API, cfg.Logger)
	itemsHandler := handler.NewItemsHandler(cfg.API, cfg.Logger)
	mediaHandler := handler.NewMediaHandler(cfg.API, cfg.Logger)
	rankingsHandler := handler.NewRankingsHandler(cfg.API, cfg.Logger)
	settingsHandler := handler.NewSettingsHandler(cfg.API, cfg.Logger)

	// Login routes (no auth required)
	public := r.NewRoute().Subrouter()
	public.Use(flashMiddleware)
	public.Use(optionalAuthMiddleware)
	public.HandleFunc("/login", authHandler.LoginPage).Methods(http.MethodGet)
	public.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)

	// Everything else requires a live session
	protected := r.NewRoute().Subrouter()
	protected.Use(flashMiddleware)
	protected.Use(authMiddleware)

	protected.HandleFunc("/", dashboardHandler.Dashboard).Methods(http.MethodGet)
	protected.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)

	// User management
	protected.HandleFunc("/users", usersHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}", usersHandler.Detail).Methods(http.MethodGet)
	protected.HandleFunc("/users/{id}/status", usersHandler.SetStatus).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id}/role", usersHandler.SetRole).Methods(http.MethodPost)
	protected.HandleFunc("/users/{id}/delete", usersHandler.Delete).Methods(http.MethodPost)

	// Regions and their enemy populations
	protected.HandleFunc("/regions", regionsHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/regions", regionsHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/regions/{id}", regionsHandler.Detail).Methods(http.MethodGet)
	protected.HandleFunc("/regions/{id}", regionsHandler.Update).Methods(http.MethodPost)
	protected.HandleFunc("/regions/{id}/delete", regionsHandler.Delete).Methods(http.MethodPost)
	protected.HandleFunc("/regions/{id}/enemies", regionsHandler.AddEnemy).Methods(http.MethodPost)
	protected.HandleFunc("/region-enemy-defs/{id}", regionsHandler.UpdateEnemy).Methods(http.MethodPost)
	protected.HandleFunc("/region-enemy-defs/{id}/delete", regionsHandler.RemoveEnemy).Methods(http.MethodPost)

	// Enemy types
	protected.HandleFunc("/enemies", enemiesHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/enemies", enemiesHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/enemies/{id}/loot", enemiesHandler.UpdateLoot).Methods(http.MethodPost)
	protected.HandleFunc("/enemies/{id}/delete", enemiesHandler.Delete).Methods(http.MethodPost)

	// Item templates
	protected.HandleFunc("/items", itemsHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/items", itemsHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/items/{id}/delete", itemsHandler.Delete).Methods(http.MethodPost)

	// Media library
	protected.HandleFunc("/media", mediaHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/media", mediaHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/media/upload", mediaHandler.Upload).Methods(http.MethodPost)

	// Rankings
	protected.HandleFunc("/rankings", rankingsHandler.List).Methods(http.MethodGet)

	// Settings
	protected.HandleFunc("/settings", settingsHandler.Show).Methods(http.MethodGet)
	protected.HandleFunc("/settings/admin", settingsHandler.UpdateAdmin).Methods(http.MethodPost)
	protected.HandleFunc("/settings/energy", settingsHandler.UpdateEnergy).Methods(http.MethodPost)
	protected.HandleFunc("/settings/pvp", settingsHandler.UpdatePvp).Methods(http.MethodPost)
	protected.HandleFunc("/settings/battle-rewards", settingsHandler.ReplaceRewards).Methods(http.MethodPost)

	return r
}
