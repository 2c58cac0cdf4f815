package handlers

import (
	"net/http"

	"github.com/moodflix/moodflix/internal/controllers"
	"github.com/sirupsen/logrus"
)

// ThemeHandler exposes the persisted theme toggle
type ThemeHandler struct {
	theme  *controllers.ThemeController
	logger *logrus.Logger
}

// NewThemeHandler creates a new theme handler
func NewThemeHandler(theme *controllers.ThemeController, logger *logrus.Logger) *ThemeHandler {
	return &ThemeHandler{theme: theme, logger: logger}
}

// ServeHTTP handles read (GET) and toggle (POST)
func (h *ThemeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, map[string]string{"theme": string(h.theme.Get())})
	case http.MethodPost:
		writeJSON(w, http.StatusOK, map[string]string{"theme": string(h.theme.Toggle())})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
