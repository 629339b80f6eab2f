// Package api exposes the resolution engine over REST for the scraping
// and ingestion pipelines.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"

	"github.com/ptcgmeta/tracker/internal/api/response"
	"github.com/ptcgmeta/tracker/internal/archetype"
	"github.com/ptcgmeta/tracker/internal/knowledge"
)

// Server represents the REST API server.
type Server struct {
	router     *chi.Mux
	httpServer *http.Server
	port       int
	workers    int
	limiter    *rate.Limiter
	logger     *slog.Logger

	// Current engine state. Knowledge reloads swap in a whole new state;
	// in-flight requests keep the base they started with.
	state atomic.Pointer[engineState]
}

// engineState pairs a knowledge base with the normalizer built over it.
type engineState struct {
	base       *knowledge.Base
	normalizer *archetype.Normalizer
}

// Config holds configuration for the API server.
type Config struct {
	Port            int
	RateLimitPerSec float64 // Resolve requests admitted per second
	RateBurst       int
	Workers         int // Concurrency cap for batch resolution
}

// DefaultConfig returns the default API server configuration.
func DefaultConfig() *Config {
	return &Config{
		Port:            8080,
		RateLimitPerSec: 50,
		RateBurst:       100,
		Workers:         8,
	}
}

// NewServer creates an API server resolving against the given knowledge
// base. logger may be nil.
func NewServer(cfg *Config, base *knowledge.Base, logger *slog.Logger) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		router:  chi.NewRouter(),
		port:    cfg.Port,
		workers: cfg.Workers,
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimitPerSec), cfg.RateBurst),
		logger:  logger,
	}
	s.SetKnowledge(base)

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// SetKnowledge swaps in a new knowledge base, rebuilding the normalizer
// over it. Safe to call while requests are in flight.
func (s *Server) SetKnowledge(base *knowledge.Base) {
	normalizer := archetype.NewNormalizer(base, archetype.NewTableDetector(base))
	s.state.Store(&engineState{base: base, normalizer: normalizer})
}

// engine returns the current engine state.
func (s *Server) engine() *engineState {
	return s.state.Load()
}

// setupMiddleware configures the middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Timeout(60 * time.Second))

	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))
}

// rateLimit applies the shared token bucket to resolve endpoints, which
// ingestion pipelines hit in bursts.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !s.limiter.Allow() {
			response.TooManyRequests(w, fmt.Errorf("resolve rate limit exceeded"))
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Start starts the API server in a goroutine.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", s.port),
		Handler:           s.router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		s.logger.Info("API server starting", "port", s.port)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("API server error", "error", err)
		}
	}()

	return nil
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	s.logger.Info("shutting down API server")
	return s.httpServer.Shutdown(ctx)
}

// Port returns the port the server is configured to listen on.
func (s *Server) Port() int {
	return s.port
}
