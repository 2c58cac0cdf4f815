package controllers

import (
	"net/url"
	"sync"

	"github.com/moodflix/moodflix/internal/models"
	"github.com/moodflix/moodflix/internal/utils"
	"github.com/sirupsen/logrus"
)

const youtubeEmbedBase = "https://www.youtube.com/embed/"
const youtubeSearchBase = "https://www.youtube.com/results"

// TrailerController owns the trailer modal state for the currently inspected
// recommendation. States are closed -> open -> closed; closing clears the
// transient title and video id.
type TrailerController struct {
	mu     sync.Mutex
	state  models.TrailerState
	logger *logrus.Logger
}

// NewTrailerController creates a new trailer controller
func NewTrailerController(logger *logrus.Logger) *TrailerController {
	return &TrailerController{logger: logger}
}

// OpenFor resolves a video id from the recommendation's preview URL and opens
// the modal. The id may be empty, in which case the rendering side falls back
// to a search link.
func (c *TrailerController) OpenFor(movie models.Recommendation) {
	videoID := utils.ExtractVideoID(movie.PreviewURL)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = models.TrailerState{
		Open:    true,
		VideoID: videoID,
		Title:   movie.Title,
	}

	c.logger.WithFields(logrus.Fields{
		"title":    movie.Title,
		"video_id": videoID,
	}).Debug("Opened trailer modal")
}

// Close closes the modal and clears the transient state. An escape-key signal
// from the environment routes here as well.
func (c *TrailerController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.state.Open {
		return
	}
	c.state = models.TrailerState{}
	c.logger.Debug("Closed trailer modal")
}

// State returns a snapshot of the modal state
func (c *TrailerController) State() models.TrailerState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// EmbedURL returns the autoplaying embedded player URL for the resolved video
// id, or "" when no id was resolved
func (c *TrailerController) EmbedURL() string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.VideoID == "" {
		return ""
	}
	return youtubeEmbedBase + c.state.VideoID + "?autoplay=1&rel=0"
}

// SearchURL returns the fallback search link used when no video id could be
// resolved. The query is the given fallback, or the stored title, or
// "trailer" when neither is set.
func (c *TrailerController) SearchURL(fallbackQuery string) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	query := fallbackQuery
	if query == "" {
		query = c.state.Title
	}
	if query == "" {
		query = "trailer"
	}

	params := url.Values{}
	params.Set("search_query", query)
	return youtubeSearchBase + "?" + params.Encode()
}
