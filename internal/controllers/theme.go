package controllers

import (
	"sync"

	"github.com/moodflix/moodflix/internal/models"
	"github.com/sirupsen/logrus"
)

// ThemeController owns the persisted dark/light toggle, defaulting to dark
type ThemeController struct {
	mu     sync.Mutex
	theme  models.Theme
	loaded bool
	db     *models.Database
	logger *logrus.Logger
}

// NewThemeController creates a new theme controller
func NewThemeController(db *models.Database, logger *logrus.Logger) *ThemeController {
	return &ThemeController{
		db:     db,
		logger: logger,
	}
}

// Get returns the current theme
func (c *ThemeController) Get() models.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadLocked()
	return c.theme
}

// Toggle flips the theme and persists the new value
func (c *ThemeController) Toggle() models.Theme {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadLocked()

	if c.theme == models.ThemeDark {
		c.theme = models.ThemeLight
	} else {
		c.theme = models.ThemeDark
	}

	if err := c.db.SaveTheme(c.theme); err != nil {
		c.logger.WithError(err).Warn("Failed to persist theme")
	}
	return c.theme
}

func (c *ThemeController) loadLocked() {
	if c.loaded {
		return
	}
	c.loaded = true

	theme, err := c.db.GetTheme()
	if err != nil {
		c.logger.WithError(err).Warn("Failed to load theme, using dark")
	}
	if theme == "" {
		theme = models.ThemeDark
	}
	c.theme = theme
}
