package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"showcase.dev/internal/config"
	"showcase.dev/internal/log"
	"showcase.dev/internal/middleware"
	"showcase.dev/internal/render"
	"showcase.dev/internal/services"
)

// SetupRoutes configures all routes and returns the router
func SetupRoutes(cfg *config.Config, content services.SiteSource) (http.Handler, error) {
	renderer, err := render.New()
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.SecurityHeaders(""))
	r.Use(middleware.RateLimit(cfg.RateLimitRPM))

	// Initialize services
	projectService := services.NewProjectService(content)
	pageService := services.NewPageService(content, renderer)

	// Initialize handlers
	projectHandler := NewProjectHandler(projectService)
	pageHandler := NewPageHandler(pageService)

	// API routes
	r.Route("/api", func(r chi.Router) {
		r.Get("/projects", projectHandler.ListProjects)
		r.Get("/projects/{id}", projectHandler.GetProject)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	r.Handle("/metrics", promhttp.Handler())

	// Sidebar photo and other local assets
	fileServer := http.FileServer(http.Dir(cfg.AssetsDir))
	r.Handle("/assets/*", http.StripPrefix("/assets", fileServer))

	r.Get("/", pageHandler.Index)
	r.Head("/", pageHandler.Index)

	return r, nil
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger := log.WithComponent("http")
		logger.Error().Err(err).Str("event", "http.encode_failed").Msg("error encoding JSON")
	}
}

// respondError writes an error JSON response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
