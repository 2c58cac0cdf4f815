package controllers

import (
	"context"
	"sync"
	"time"

	"github.com/moodflix/moodflix/internal/models"
	"github.com/moodflix/moodflix/internal/services/recommender"
	"github.com/sirupsen/logrus"
)

// typingIndicatorDelay is how long the cosmetic typing indicator stays on
// after an ask is issued. It is wall-clock based and deliberately decoupled
// from the request lifecycle, matching the UI affordance it backs.
const typingIndicatorDelay = 800 * time.Millisecond

// SessionState is a snapshot of the recommendation session
type SessionState struct {
	Phase     models.Phase        `json:"phase"`
	Typing    bool                `json:"typing"`
	Page      int                 `json:"page"`
	Count     int                 `json:"count"`
	LastError string              `json:"lastError,omitempty"`
	Filters   models.QueryFilters `json:"filters"`
}

// SessionController owns the filter state and the accumulated, paginated
// result set, and drives recommendation requests. Overlapping asks are
// allowed; each one carries a monotonically increasing token and a response
// is discarded when a later-issued response was already applied.
type SessionController struct {
	mu          sync.Mutex
	filters     models.QueryFilters
	movies      []models.Recommendation
	page        int
	phase       models.Phase
	typing      bool
	typingTimer *time.Timer
	lastError   string
	issued      uint64
	applied     uint64

	typingDelay time.Duration
	recommender *recommender.Client
	identity    *IdentityController
	logger      *logrus.Logger
}

// NewSessionController creates a new session controller
func NewSessionController(client *recommender.Client, identity *IdentityController, logger *logrus.Logger) *SessionController {
	return &SessionController{
		phase:       models.PhaseIdle,
		typingDelay: typingIndicatorDelay,
		recommender: client,
		identity:    identity,
		logger:      logger,
	}
}

// SetFilters replaces the current filter state
func (s *SessionController) SetFilters(filters models.QueryFilters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = filters
}

// Reset empties all filters
func (s *SessionController) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = models.QueryFilters{}
}

// State returns a snapshot of the session state
func (s *SessionController) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionState{
		Phase:     s.phase,
		Typing:    s.typing,
		Page:      s.page,
		Count:     len(s.movies),
		LastError: s.lastError,
		Filters:   s.filters,
	}
}

// Movies returns a copy of the accumulated result set
func (s *SessionController) Movies() []models.Recommendation {
	s.mu.Lock()
	defer s.mu.Unlock()
	movies := make([]models.Recommendation, len(s.movies))
	copy(movies, s.movies)
	return movies
}

// Ask issues a recommendation request for the given page. Page 1 replaces
// the result set, higher pages append to it. It is a no-op when the filters
// carry no signal. The returned error is the one to surface to the user; the
// result set is left untouched on failure.
func (s *SessionController) Ask(ctx context.Context, pageRequested int) error {
	userID := s.identity.GetOrCreate()

	s.mu.Lock()
	if !CanAsk(s.filters) {
		s.mu.Unlock()
		return nil
	}

	s.issued++
	token := s.issued
	s.phase = models.PhaseRequesting
	s.startTypingLocked()
	request := BuildRequest(s.filters, userID, pageRequested)
	s.mu.Unlock()

	s.logger.WithFields(logrus.Fields{
		"token": token,
		"page":  pageRequested,
	}).Debug("Asking for recommendations")

	movies, err := s.recommender.Recommendations(ctx, request)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopTypingLocked()
	s.filters.Text = ""

	if token <= s.applied {
		// A later-issued response was already applied, drop this one
		s.logger.WithFields(logrus.Fields{
			"token":   token,
			"applied": s.applied,
		}).Warn("Discarding stale recommendation response")
		return nil
	}

	if err != nil {
		if token == s.issued {
			s.phase = models.PhaseSettledError
			s.lastError = err.Error()
		}
		s.logger.WithError(err).Error("Recommendation request failed")
		return err
	}

	if pageRequested == 1 {
		s.movies = movies
	} else {
		s.movies = append(s.movies, movies...)
	}
	s.page = pageRequested
	s.applied = token
	if token == s.issued {
		s.phase = models.PhaseSettledOK
		s.lastError = ""
	}

	s.logger.WithFields(logrus.Fields{
		"page":  pageRequested,
		"count": len(s.movies),
	}).Info("Recommendations updated")

	return nil
}

// startTypingLocked turns the typing indicator on and schedules its
// fixed-delay clear. Callers must hold the mutex.
func (s *SessionController) startTypingLocked() {
	s.typing = true
	if s.typingTimer != nil {
		s.typingTimer.Stop()
	}
	s.typingTimer = time.AfterFunc(s.typingDelay, func() {
		s.mu.Lock()
		s.typing = false
		s.mu.Unlock()
	})
}

// stopTypingLocked clears the typing indicator immediately. Callers must
// hold the mutex.
func (s *SessionController) stopTypingLocked() {
	s.typing = false
	if s.typingTimer != nil {
		s.typingTimer.Stop()
		s.typingTimer = nil
	}
}
