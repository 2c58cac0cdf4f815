package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/moodflix/moodflix/internal/api"
	"github.com/moodflix/moodflix/internal/config"
	"github.com/moodflix/moodflix/internal/controllers"
	"github.com/moodflix/moodflix/internal/models"
	"github.com/moodflix/moodflix/internal/scheduler"
	"github.com/moodflix/moodflix/internal/services/recommender"
	"github.com/moodflix/moodflix/internal/utils"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// 2. Setup logger
	logger := utils.NewLogger(cfg.LogLevel)
	logger.Info("Starting MoodFlix session gateway")
	logger.WithField("config_dir", filepath.Dir(cfg.DatabaseFile)).Info("Configuration loaded")

	// 3. Initialize database
	db, err := models.NewDatabase(cfg.DatabaseFile)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()
	logger.Info("Database initialized")

	// 4. Initialize the recommendation service client
	client, err := recommender.NewClient(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize recommendation client: %w", err)
	}
	logger.WithField("api_base", cfg.APIBase).Info("Recommendation client initialized")

	// 5. Initialize controllers
	identityCtrl := controllers.NewIdentityController(db, logger)
	sessionCtrl := controllers.NewSessionController(client, identityCtrl, logger)
	favoritesCtrl := controllers.NewFavoritesController(db, logger)
	trailerCtrl := controllers.NewTrailerController(logger)
	themeCtrl := controllers.NewThemeController(db, logger)
	historyCtrl := controllers.NewHistoryController(client, identityCtrl, cfg.HistoryPageSize, logger)
	profileCtrl := controllers.NewProfileController(client, identityCtrl, logger)
	logger.WithField("user_id", identityCtrl.GetOrCreate()).Info("Controllers initialized")

	// 6. Initialize scheduler (upstream reachability probe)
	sched := scheduler.NewScheduler(client, cfg.ProbeIntervalMinutes, logger)
	if err := sched.Start(); err != nil {
		return fmt.Errorf("failed to start scheduler: %w", err)
	}
	defer sched.Stop()

	// 7. Initialize HTTP server
	server := api.NewServer(cfg, api.Controllers{
		Session:   sessionCtrl,
		Favorites: favoritesCtrl,
		Trailer:   trailerCtrl,
		Theme:     themeCtrl,
		History:   historyCtrl,
		Profile:   profileCtrl,
	}, sched, logger)

	// Start server in goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverErrChan := make(chan error, 1)
	go func() {
		if err := server.Start(ctx); err != nil {
			serverErrChan <- err
		}
	}()

	// 8. Wait for shutdown signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	logger.Info("MoodFlix session gateway is running")

	select {
	case err := <-serverErrChan:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigChan:
		logger.WithField("signal", sig).Info("Received shutdown signal")
		cancel()
		if err := server.Shutdown(context.Background()); err != nil {
			logger.WithError(err).Error("Error during server shutdown")
		}
	}

	logger.Info("MoodFlix session gateway stopped")
	return nil
}
