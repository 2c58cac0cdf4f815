package handlers

import (
	"net/http"
	"strconv"

	"github.com/moodflix/moodflix/internal/controllers"
	"github.com/sirupsen/logrus"
)

// HistoryHandler exposes paged recommendation history
type HistoryHandler struct {
	history *controllers.HistoryController
	logger  *logrus.Logger
}

// NewHistoryHandler creates a new history handler
func NewHistoryHandler(history *controllers.HistoryController, logger *logrus.Logger) *HistoryHandler {
	return &HistoryHandler{history: history, logger: logger}
}

// ServeHTTP handles the history endpoint. Pages are zero-based like the
// upstream service's.
func (h *HistoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	page := 0
	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "invalid page")
			return
		}
		page = parsed
	}

	writeJSON(w, http.StatusOK, h.history.Page(r.Context(), page))
}
