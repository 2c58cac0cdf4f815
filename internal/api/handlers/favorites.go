package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/moodflix/moodflix/internal/controllers"
	"github.com/moodflix/moodflix/internal/models"
	"github.com/sirupsen/logrus"
)

// FavoritesHandler exposes the favorites collection
type FavoritesHandler struct {
	favorites *controllers.FavoritesController
	logger    *logrus.Logger
}

// NewFavoritesHandler creates a new favorites handler
func NewFavoritesHandler(favorites *controllers.FavoritesController, logger *logrus.Logger) *FavoritesHandler {
	return &FavoritesHandler{favorites: favorites, logger: logger}
}

// ServeHTTP handles list (GET), toggle (POST) and clear (DELETE)
func (h *FavoritesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.favorites.List())

	case http.MethodPost:
		var movie models.Recommendation
		if err := json.NewDecoder(r.Body).Decode(&movie); err != nil {
			writeError(w, http.StatusBadRequest, "invalid recommendation payload")
			return
		}
		if movie.Title == "" {
			writeError(w, http.StatusBadRequest, "title is required")
			return
		}
		h.favorites.Toggle(movie)
		writeJSON(w, http.StatusOK, h.favorites.List())

	case http.MethodDelete:
		h.favorites.Clear()
		writeJSON(w, http.StatusOK, []models.Recommendation{})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
