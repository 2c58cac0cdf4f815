package controllers

import (
	"context"

	"github.com/moodflix/moodflix/internal/models"
	"github.com/moodflix/moodflix/internal/services/recommender"
	"github.com/sirupsen/logrus"
)

// HistoryController retrieves pages of previously served recommendations.
// Failures fall back to an empty page rather than surfacing an error.
type HistoryController struct {
	pageSize    int
	recommender *recommender.Client
	identity    *IdentityController
	logger      *logrus.Logger
}

// NewHistoryController creates a new history controller
func NewHistoryController(client *recommender.Client, identity *IdentityController, pageSize int, logger *logrus.Logger) *HistoryController {
	return &HistoryController{
		pageSize:    pageSize,
		recommender: client,
		identity:    identity,
		logger:      logger,
	}
}

// Page retrieves one page of history. On any failure it returns an empty
// page with totalPages=1.
func (c *HistoryController) Page(ctx context.Context, page int) models.HistoryPage {
	history, err := c.recommender.History(ctx, c.identity.GetOrCreate(), page, c.pageSize)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to load history, falling back to empty page")
		return models.HistoryPage{Content: []models.Recommendation{}, TotalPages: 1}
	}

	if history.Content == nil {
		history.Content = []models.Recommendation{}
	}
	if history.TotalPages < 1 {
		history.TotalPages = 1
	}
	return *history
}
