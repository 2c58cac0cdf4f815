package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/moodflix/moodflix/internal/models"
)

func newTestProfile(t *testing.T, baseURL string) *ProfileController {
	t.Helper()

	logger := newTestLogger()
	identity := NewIdentityController(newTestDatabase(t), logger)
	return NewProfileController(newTestClient(t, baseURL), identity, logger)
}

func TestProfileDefaultSurvivesLoadFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no such user", http.StatusNotFound)
	}))
	defer server.Close()

	profile := newTestProfile(t, server.URL)
	profile.Load(context.Background())

	if profile.DisplayName() != "Guest" {
		t.Errorf("Expected default name kept, got %q", profile.DisplayName())
	}
}

func TestProfileLoadAndSave(t *testing.T) {
	stored := "Morgan"
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(models.UserProfile{DisplayName: stored})
		case http.MethodPost:
			var p models.UserProfile
			json.NewDecoder(r.Body).Decode(&p)
			stored = p.DisplayName
		}
	}))
	defer server.Close()

	profile := newTestProfile(t, server.URL)

	profile.Load(context.Background())
	if profile.DisplayName() != "Morgan" {
		t.Errorf("Expected loaded name, got %q", profile.DisplayName())
	}

	if err := profile.Save(context.Background(), "Alex"); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if stored != "Alex" || profile.DisplayName() != "Alex" {
		t.Errorf("Expected name saved and adopted, got stored=%q local=%q", stored, profile.DisplayName())
	}
}
