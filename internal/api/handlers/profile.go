package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moodflix/moodflix/internal/controllers"
	"github.com/sirupsen/logrus"
)

// ProfileHandler exposes the display name stored on the recommendation service
type ProfileHandler struct {
	profile *controllers.ProfileController
	logger  *logrus.Logger
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profile *controllers.ProfileController, logger *logrus.Logger) *ProfileHandler {
	return &ProfileHandler{profile: profile, logger: logger}
}

// profileRequest is the save payload
type profileRequest struct {
	DisplayName string `json:"displayName"`
}

// ServeHTTP handles load (GET) and save (POST)
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.profile.Load(r.Context())
		writeJSON(w, http.StatusOK, map[string]string{"displayName": h.profile.DisplayName()})

	case http.MethodPost:
		var request profileRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			writeError(w, http.StatusBadRequest, "invalid profile payload")
			return
		}
		if request.DisplayName == "" {
			writeError(w, http.StatusBadRequest, "displayName is required")
			return
		}
		if err := h.profile.Save(r.Context(), request.DisplayName); err != nil {
			writeError(w, http.StatusBadGateway, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"displayName": h.profile.DisplayName()})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
