package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	// Recommendation service
	APIBase string // Base URL of the recommendation service API

	// History
	HistoryPageSize int // Entries per history page (default: 12)

	// Upstream probe
	ProbeIntervalMinutes int // Minutes between upstream reachability probes (default: 5)

	// Server
	ServerPort string

	// Paths
	DatabaseFile string // $CONFIG_DIR/moodflix.db

	// Logging
	LogLevel string
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Setup viper FIRST to load .env file
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Load .env file if it exists (ignore if not found)
	_ = viper.ReadInConfig()

	// Set defaults
	viper.SetDefault("API_BASE", "http://localhost:8080/api")
	viper.SetDefault("HISTORY_PAGE_SIZE", 12)
	viper.SetDefault("PROBE_INTERVAL_MINUTES", 5)
	viper.SetDefault("SERVER_PORT", "8090")
	viper.SetDefault("LOG_LEVEL", "info")

	// NOW read CONFIG_DIR from viper (which has loaded .env file)
	configDir := viper.GetString("CONFIG_DIR")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		configDir = filepath.Join(homeDir, ".config", "moodflix")
	} else {
		// Convert relative path to absolute path
		absPath, err := filepath.Abs(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to get absolute path for CONFIG_DIR: %w", err)
		}
		configDir = absPath
	}

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	config := &Config{
		APIBase:              viper.GetString("API_BASE"),
		HistoryPageSize:      viper.GetInt("HISTORY_PAGE_SIZE"),
		ProbeIntervalMinutes: viper.GetInt("PROBE_INTERVAL_MINUTES"),
		ServerPort:           viper.GetString("SERVER_PORT"),
		DatabaseFile:         filepath.Join(configDir, "moodflix.db"),
		LogLevel:             viper.GetString("LOG_LEVEL"),
	}

	// Validate the API base URL
	if _, err := url.Parse(config.APIBase); err != nil {
		return nil, fmt.Errorf("API_BASE is not a valid URL: %w", err)
	}

	return config, nil
}
