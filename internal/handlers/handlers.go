package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"dconn.dev/folio/internal/config"
	"dconn.dev/folio/internal/middleware"
	"dconn.dev/folio/internal/render"
	"dconn.dev/folio/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	useMiddleware(r, logger)

	renderer := render.New(render.Options{
		Logger:  logger,
		Timeout: cfg.FetchTimeout,
		Strict:  cfg.StrictProjects,
	})
	projectService := services.NewProjectService(renderer, cfg.ProjectsSource)

	projectHandler := NewProjectHandler(projectService, logger)
	pageHandler := NewPageHandler(renderer, PageConfig{
		PagePath: cfg.PagePath,
		Source:   cfg.ProjectsSource,
		Selector: cfg.GridSelector,
	}, logger)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{index}", projectHandler.GetProject)

		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(logger, w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	// Static files
	fileServer := http.FileServer(http.Dir(cfg.StaticDir))
	r.Handle("/static/*", http.StripPrefix("/static", fileServer))

	// Index page with the projects grid rendered in
	r.Get("/", pageHandler.ServePage)

	return r
}

// useMiddleware installs the shared middleware stack. Logger wraps Recovery
// so a panicking request is still logged, with its 500.
func useMiddleware(r chi.Router, logger *slog.Logger) {
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recovery(logger))
}

// respondJSON writes a JSON response
func respondJSON(logger *slog.Logger, w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("encoding JSON", "error", err)
	}
}

// respondError writes an error JSON response
func respondError(logger *slog.Logger, w http.ResponseWriter, status int, message string) {
	respondJSON(logger, w, status, map[string]string{"error": message})
}
