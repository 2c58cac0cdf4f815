package controllers

import (
	"context"
	"sync"

	"github.com/moodflix/moodflix/internal/models"
	"github.com/moodflix/moodflix/internal/services/recommender"
	"github.com/sirupsen/logrus"
)

// defaultDisplayName is used until the service reports a stored name
const defaultDisplayName = "Guest"

// ProfileController owns the user's display name. The name lives on the
// recommendation service; absence or load failure leaves the default.
type ProfileController struct {
	mu          sync.Mutex
	displayName string
	recommender *recommender.Client
	identity    *IdentityController
	logger      *logrus.Logger
}

// NewProfileController creates a new profile controller
func NewProfileController(client *recommender.Client, identity *IdentityController, logger *logrus.Logger) *ProfileController {
	return &ProfileController{
		displayName: defaultDisplayName,
		recommender: client,
		identity:    identity,
		logger:      logger,
	}
}

// Load refreshes the display name from the recommendation service. Failures
// and missing profiles leave the current name unchanged.
func (c *ProfileController) Load(ctx context.Context) {
	profile, err := c.recommender.Profile(ctx, c.identity.GetOrCreate())
	if err != nil {
		c.logger.WithError(err).Debug("Failed to load profile, keeping current name")
		return
	}
	if profile.DisplayName == "" {
		return
	}

	c.mu.Lock()
	c.displayName = profile.DisplayName
	c.mu.Unlock()
}

// Save stores the display name on the recommendation service and adopts it
// locally on success
func (c *ProfileController) Save(ctx context.Context, displayName string) error {
	err := c.recommender.SaveProfile(ctx, models.UserProfile{
		ExternalID:  c.identity.GetOrCreate(),
		DisplayName: displayName,
	})
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.displayName = displayName
	c.mu.Unlock()
	return nil
}

// DisplayName returns the current display name
func (c *ProfileController) DisplayName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.displayName
}
