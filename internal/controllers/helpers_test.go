package controllers

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/moodflix/moodflix/internal/config"
	"github.com/moodflix/moodflix/internal/models"
	"github.com/moodflix/moodflix/internal/services/recommender"
	"github.com/sirupsen/logrus"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestDatabase(t *testing.T) *models.Database {
	t.Helper()

	db, err := models.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func newTestClient(t *testing.T, baseURL string) *recommender.Client {
	t.Helper()

	client, err := recommender.NewClient(&config.Config{APIBase: baseURL}, newTestLogger())
	if err != nil {
		t.Fatalf("Failed to create client: %v", err)
	}
	return client
}
