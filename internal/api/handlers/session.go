package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moodflix/moodflix/internal/controllers"
	"github.com/moodflix/moodflix/internal/models"
	"github.com/sirupsen/logrus"
)

// SessionHandler exposes the recommendation session: filter edits, asks,
// resets, and the accumulated result set
type SessionHandler struct {
	session *controllers.SessionController
	logger  *logrus.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(session *controllers.SessionController, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{session: session, logger: logger}
}

// HandleFilters replaces the current filter state
func (h *SessionHandler) HandleFilters(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut && r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var filters models.QueryFilters
	if err := json.NewDecoder(r.Body).Decode(&filters); err != nil {
		writeError(w, http.StatusBadRequest, "invalid filters payload")
		return
	}

	h.session.SetFilters(filters)
	writeJSON(w, http.StatusOK, h.session.State())
}

// HandleReset empties all filters
func (h *SessionHandler) HandleReset(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.session.Reset()
	writeJSON(w, http.StatusOK, h.session.State())
}

// askRequest is the /api/ask payload
type askRequest struct {
	Page int `json:"page"`
}

// HandleAsk issues a recommendation request. A failed request answers 502
// with the error message, the blocking-notification analog.
func (h *SessionHandler) HandleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var request askRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		writeError(w, http.StatusBadRequest, "invalid ask payload")
		return
	}
	if request.Page < 1 {
		request.Page = 1
	}

	if err := h.session.Ask(r.Context(), request.Page); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state":  h.session.State(),
		"movies": h.session.Movies(),
	})
}

// HandleRecommendations returns the accumulated result set
func (h *SessionHandler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"state":  h.session.State(),
		"movies": h.session.Movies(),
	})
}
