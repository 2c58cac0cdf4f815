package handlers

import (
	"net/http"
	"time"

	"github.com/moodflix/moodflix/internal/controllers"
	"github.com/moodflix/moodflix/internal/scheduler"
	"github.com/sirupsen/logrus"
)

// StatusHandler reports the session and upstream state
type StatusHandler struct {
	session   *controllers.SessionController
	favorites *controllers.FavoritesController
	sched     *scheduler.Scheduler
	logger    *logrus.Logger
}

// NewStatusHandler creates a new status handler
func NewStatusHandler(session *controllers.SessionController, favorites *controllers.FavoritesController, sched *scheduler.Scheduler, logger *logrus.Logger) *StatusHandler {
	return &StatusHandler{
		session:   session,
		favorites: favorites,
		sched:     sched,
		logger:    logger,
	}
}

// statusResponse is the /status payload
type statusResponse struct {
	Session           controllers.SessionState `json:"session"`
	Favorites         int                      `json:"favorites"`
	UpstreamAvailable bool                     `json:"upstreamAvailable"`
	LastProbeAt       *time.Time               `json:"lastProbeAt,omitempty"`
}

// ServeHTTP handles the status endpoint
func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := statusResponse{
		Session:           h.session.State(),
		Favorites:         len(h.favorites.List()),
		UpstreamAvailable: h.sched.UpstreamAvailable(),
	}
	if probedAt := h.sched.LastProbeAt(); !probedAt.IsZero() {
		response.LastProbeAt = &probedAt
	}

	writeJSON(w, http.StatusOK, response)
}
