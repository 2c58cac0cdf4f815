package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/moodflix/moodflix/internal/api/handlers"
	"github.com/moodflix/moodflix/internal/api/middleware"
	"github.com/moodflix/moodflix/internal/config"
	"github.com/moodflix/moodflix/internal/controllers"
	"github.com/moodflix/moodflix/internal/scheduler"
	"github.com/sirupsen/logrus"
)

// Controllers bundles the session-facing controllers the server exposes
type Controllers struct {
	Session   *controllers.SessionController
	Favorites *controllers.FavoritesController
	Trailer   *controllers.TrailerController
	Theme     *controllers.ThemeController
	History   *controllers.HistoryController
	Profile   *controllers.ProfileController
}

// Server represents the HTTP server
type Server struct {
	server *http.Server
	logger *logrus.Logger
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config, ctrls Controllers, sched *scheduler.Scheduler, logger *logrus.Logger) *Server {
	s := &Server{logger: logger}

	mux := http.NewServeMux()
	s.setupRoutes(mux, ctrls, sched)

	s.server = &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      middleware.Logging(mux, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 45 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes(mux *http.ServeMux, ctrls Controllers, sched *scheduler.Scheduler) {
	// Health check
	healthHandler := handlers.NewHealthHandler(s.logger)
	mux.HandleFunc("/health", healthHandler.ServeHTTP)

	// Status endpoint
	statusHandler := handlers.NewStatusHandler(ctrls.Session, ctrls.Favorites, sched, s.logger)
	mux.HandleFunc("/status", statusHandler.ServeHTTP)

	// Recommendation session
	sessionHandler := handlers.NewSessionHandler(ctrls.Session, s.logger)
	mux.HandleFunc("/api/filters", sessionHandler.HandleFilters)
	mux.HandleFunc("/api/reset", sessionHandler.HandleReset)
	mux.HandleFunc("/api/ask", sessionHandler.HandleAsk)
	mux.HandleFunc("/api/recommendations", sessionHandler.HandleRecommendations)

	// Favorites
	favoritesHandler := handlers.NewFavoritesHandler(ctrls.Favorites, s.logger)
	mux.HandleFunc("/api/favorites", favoritesHandler.ServeHTTP)

	// Trailer modal
	trailerHandler := handlers.NewTrailerHandler(ctrls.Trailer, s.logger)
	mux.HandleFunc("/api/trailer", trailerHandler.ServeHTTP)

	// Theme
	themeHandler := handlers.NewThemeHandler(ctrls.Theme, s.logger)
	mux.HandleFunc("/api/theme", themeHandler.ServeHTTP)

	// History
	historyHandler := handlers.NewHistoryHandler(ctrls.History, s.logger)
	mux.HandleFunc("/api/history", historyHandler.ServeHTTP)

	// Profile
	profileHandler := handlers.NewProfileHandler(ctrls.Profile, s.logger)
	mux.HandleFunc("/api/profile", profileHandler.ServeHTTP)
}

// Start starts the HTTP server
func (s *Server) Start(ctx context.Context) error {
	s.logger.WithField("port", s.server.Addr).Info("Starting HTTP server")

	errChan := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case err := <-errChan:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}
