package controllers

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/moodflix/moodflix/internal/models"
	"github.com/sirupsen/logrus"
)

// IdentityController supplies the stable per-installation anonymous identity.
// The value is created once, persisted, and never regenerated while a
// persisted copy exists. Persistence failures are absorbed: the identity is
// still served from memory for the rest of the process.
type IdentityController struct {
	mu     sync.Mutex
	cached string
	db     *models.Database
	logger *logrus.Logger
}

// NewIdentityController creates a new identity controller
func NewIdentityController(db *models.Database, logger *logrus.Logger) *IdentityController {
	return &IdentityController{
		db:     db,
		logger: logger,
	}
}

// GetOrCreate returns the anonymous user identity, generating and persisting
// it on first use
func (c *IdentityController) GetOrCreate() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached != "" {
		return c.cached
	}

	value, err := c.db.GetUserIdentity()
	if err != nil {
		c.logger.WithError(err).Warn("Failed to read persisted identity")
	}
	if value != "" {
		c.cached = value
		return value
	}

	value = newIdentity()
	if err := c.db.SaveUserIdentity(value); err != nil {
		c.logger.WithError(err).Warn("Failed to persist identity, keeping it in memory only")
	}

	c.cached = value
	c.logger.WithField("user_id", value).Debug("Generated new anonymous identity")
	return value
}

// newIdentity generates a fresh opaque identifier, preferring a random UUID
// with a timestamp+random composite as fallback
func newIdentity() string {
	if id, err := uuid.NewRandom(); err == nil {
		return id.String()
	}
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), strconv.FormatInt(rand.Int63(), 36))
}
