package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moodflix/moodflix/internal/controllers"
	"github.com/moodflix/moodflix/internal/models"
	"github.com/sirupsen/logrus"
)

// TrailerHandler exposes the trailer modal state
type TrailerHandler struct {
	trailer *controllers.TrailerController
	logger  *logrus.Logger
}

// NewTrailerHandler creates a new trailer handler
func NewTrailerHandler(trailer *controllers.TrailerController, logger *logrus.Logger) *TrailerHandler {
	return &TrailerHandler{trailer: trailer, logger: logger}
}

// trailerResponse is the modal state plus the URLs the rendering side needs
type trailerResponse struct {
	models.TrailerState
	EmbedURL  string `json:"embedUrl,omitempty"`
	SearchURL string `json:"searchUrl,omitempty"`
}

// ServeHTTP handles state (GET), open (POST with a recommendation body) and
// close (DELETE, also the escape-key route)
func (h *TrailerHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.respondState(w)

	case http.MethodPost:
		var movie models.Recommendation
		if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
			writeError(w, http.StatusBadRequest, "invalid recommendation payload")
			return
		}
		h.trailer.OpenFor(movie)
		h.respondState(w)

	case http.MethodDelete:
		h.trailer.Close()
		h.respondState(w)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *TrailerHandler) respondState(w http.ResponseWriter) {
	state := h.trailer.State()
	response := trailerResponse{TrailerState: state}
	if state.Open {
		if state.VideoID != "" {
			response.EmbedURL = h.trailer.EmbedURL()
		} else {
			response.SearchURL = h.trailer.SearchURL(state.Title + " trailer")
		}
	}
	writeJSON(w, http.StatusOK, response)
}
