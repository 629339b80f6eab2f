package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ptcgmeta/tracker/internal/api/response"
)

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check endpoint (no versioning)
	s.router.Get("/health", s.healthCheck)

	// API v1 routes
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(s.rateLimit)
			r.Post("/resolve", s.handleResolve)
			r.Post("/resolve/batch", s.handleResolveBatch)
		})

		r.Get("/archetypes", s.handleArchetypes)
	})
}

// healthCheck returns server health status.
func (s *Server) healthCheck(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"service":     "ptcg-meta-tracker",
		"sprite_keys": s.engine().base.SpriteCount(),
	})
}
