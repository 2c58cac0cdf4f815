package controllers

import (
	"sync"

	"github.com/moodflix/moodflix/internal/models"
	"github.com/sirupsen/logrus"
)

// maxFavorites bounds the favorites collection to the most recently added
const maxFavorites = 100

// FavoritesController owns the deduplicated, persisted favorites collection.
// Identity is the (title, year) pair. Every mutation persists the whole
// collection as one snapshot; persistence failures are absorbed and the
// in-memory collection keeps working for the session.
type FavoritesController struct {
	mu      sync.Mutex
	entries []models.Recommendation
	loaded  bool
	db      *models.Database
	logger  *logrus.Logger
}

// NewFavoritesController creates a new favorites controller
func NewFavoritesController(db *models.Database, logger *logrus.Logger) *FavoritesController {
	return &FavoritesController{
		db:     db,
		logger: logger,
	}
}

// loadLocked lazily reads the persisted snapshot. Callers must hold the mutex.
func (c *FavoritesController) loadLocked() {
	if c.loaded {
		return
	}
	c.loaded = true

	entries, err := c.db.GetFavorites()
	if err != nil {
		c.logger.WithError(err).Warn("Failed to load favorites, starting empty")
		return
	}
	c.entries = entries
}

// persistLocked writes the whole collection back. Callers must hold the mutex.
func (c *FavoritesController) persistLocked() {
	if err := c.db.SaveFavorites(c.entries); err != nil {
		c.logger.WithError(err).Warn("Failed to persist favorites")
	}
}

// Toggle removes the recommendation when an entry with the same title and
// year is present, otherwise prepends it and truncates the collection to the
// 100 most recently added entries
func (c *FavoritesController) Toggle(movie models.Recommendation) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadLocked()

	for i, entry := range c.entries {
		if entry.SameMovie(movie) {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			c.persistLocked()
			c.logger.WithField("title", movie.Title).Debug("Removed favorite")
			return
		}
	}

	c.entries = append([]models.Recommendation{movie}, c.entries...)
	if len(c.entries) > maxFavorites {
		c.entries = c.entries[:maxFavorites]
	}
	c.persistLocked()
	c.logger.WithField("title", movie.Title).Debug("Added favorite")
}

// IsFavorite reports whether a movie with this title and year is saved
func (c *FavoritesController) IsFavorite(title, year string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadLocked()

	for _, entry := range c.entries {
		if entry.Title == title && entry.Year == year {
			return true
		}
	}
	return false
}

// List returns a copy of the favorites, newest first
func (c *FavoritesController) List() []models.Recommendation {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadLocked()

	entries := make([]models.Recommendation, len(c.entries))
	copy(entries, c.entries)
	return entries
}

// Clear empties the collection and its persisted snapshot
func (c *FavoritesController) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.loaded = true
	c.entries = nil
	c.persistLocked()
	c.logger.Debug("Cleared favorites")
}
