package controllers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/moodflix/moodflix/internal/models"
)

// recommendationServer fakes the recommendation service, answering each ask
// with titles derived from the requested page
func recommendationServer(t *testing.T, requestCount *atomic.Int64) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount.Add(1)

		var request models.RecommendationRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			t.Errorf("Failed to decode request: %v", err)
		}

		movies := []models.Recommendation{
			{Title: fmt.Sprintf("Movie %d-A", request.Page), Year: "2001", Genre: "Drama"},
			{Title: fmt.Sprintf("Movie %d-B", request.Page), Year: "2002", Genre: "Drama"},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(movies)
	}))
}

func newTestSession(t *testing.T, baseURL string) *SessionController {
	t.Helper()

	logger := newTestLogger()
	identity := NewIdentityController(newTestDatabase(t), logger)
	return NewSessionController(newTestClient(t, baseURL), identity, logger)
}

func TestAskGateWithEmptyFilters(t *testing.T) {
	var requestCount atomic.Int64
	server := recommendationServer(t, &requestCount)
	defer server.Close()

	session := newTestSession(t, server.URL)

	if err := session.Ask(context.Background(), 1); err != nil {
		t.Fatalf("Ask with empty filters should be a no-op, got %v", err)
	}
	if requestCount.Load() != 0 {
		t.Errorf("Expected no network call, got %d", requestCount.Load())
	}
	if session.State().Phase != models.PhaseIdle {
		t.Errorf("Expected idle phase, got %s", session.State().Phase)
	}
}

func TestAskPagination(t *testing.T) {
	var requestCount atomic.Int64
	server := recommendationServer(t, &requestCount)
	defer server.Close()

	session := newTestSession(t, server.URL)
	session.SetFilters(models.QueryFilters{Genre: "Drama"})

	// Page 1 replaces
	if err := session.Ask(context.Background(), 1); err != nil {
		t.Fatalf("Ask page 1 failed: %v", err)
	}
	movies := session.Movies()
	if len(movies) != 2 {
		t.Fatalf("Expected 2 movies after page 1, got %d", len(movies))
	}

	// Page 2 appends, in response order
	if err := session.Ask(context.Background(), 2); err != nil {
		t.Fatalf("Ask page 2 failed: %v", err)
	}
	movies = session.Movies()
	if len(movies) != 4 {
		t.Fatalf("Expected 4 movies after page 2, got %d", len(movies))
	}
	if movies[0].Title != "Movie 1-A" || movies[2].Title != "Movie 2-A" {
		t.Errorf("Unexpected order: %q then %q", movies[0].Title, movies[2].Title)
	}
	if session.State().Page != 2 {
		t.Errorf("Expected page marker 2, got %d", session.State().Page)
	}

	// Asking page 1 again replaces the whole set, it does not merge
	if err := session.Ask(context.Background(), 1); err != nil {
		t.Fatalf("Ask page 1 refresh failed: %v", err)
	}
	movies = session.Movies()
	if len(movies) != 2 {
		t.Fatalf("Expected page 1 refresh to replace, got %d movies", len(movies))
	}
	if session.State().Page != 1 {
		t.Errorf("Expected page marker 1, got %d", session.State().Page)
	}
	if session.State().Phase != models.PhaseSettledOK {
		t.Errorf("Expected settled_ok, got %s", session.State().Phase)
	}
}

func TestAskErrorSurfacesAndPreservesMovies(t *testing.T) {
	calls := atomic.Int64{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			json.NewEncoder(w).Encode([]models.Recommendation{{Title: "Kept", Year: "1999", Genre: "Drama"}})
			return
		}
		http.Error(w, "model overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	session := newTestSession(t, server.URL)
	session.SetFilters(models.QueryFilters{Genre: "Drama"})

	if err := session.Ask(context.Background(), 1); err != nil {
		t.Fatalf("First ask failed: %v", err)
	}

	err := session.Ask(context.Background(), 2)
	if err == nil {
		t.Fatal("Expected an error from the failing upstream")
	}
	if !strings.Contains(err.Error(), "503") || !strings.Contains(err.Error(), "model overloaded") {
		t.Errorf("Expected status and body in error, got %q", err.Error())
	}

	movies := session.Movies()
	if len(movies) != 1 || movies[0].Title != "Kept" {
		t.Errorf("Result set should be untouched on failure, got %v", movies)
	}
	state := session.State()
	if state.Phase != models.PhaseSettledError {
		t.Errorf("Expected settled_error, got %s", state.Phase)
	}
	if state.LastError == "" {
		t.Error("Expected last error recorded")
	}
}

func TestAskClearsTextAndTyping(t *testing.T) {
	var requestCount atomic.Int64
	server := recommendationServer(t, &requestCount)
	defer server.Close()

	session := newTestSession(t, server.URL)
	session.typingDelay = 10 * time.Second // only the completion path may clear it here
	session.SetFilters(models.QueryFilters{Text: "cozy movie night"})

	if err := session.Ask(context.Background(), 1); err != nil {
		t.Fatalf("Ask failed: %v", err)
	}

	state := session.State()
	if state.Typing {
		t.Error("Typing should be cleared on completion")
	}
	if state.Filters.Text != "" {
		t.Errorf("Free text should be cleared on completion, got %q", state.Filters.Text)
	}
}

func TestAskTypingClearsOnTimer(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		json.NewEncoder(w).Encode([]models.Recommendation{})
	}))
	defer server.Close()
	defer close(release)

	session := newTestSession(t, server.URL)
	session.typingDelay = 20 * time.Millisecond
	session.SetFilters(models.QueryFilters{Genre: "Drama"})

	done := make(chan struct{})
	go func() {
		session.Ask(context.Background(), 1)
		close(done)
	}()

	// Wait for the request phase to be visible
	deadline := time.After(2 * time.Second)
	for session.State().Phase != models.PhaseRequesting {
		select {
		case <-deadline:
			t.Fatal("Session never entered requesting phase")
		case <-time.After(time.Millisecond):
		}
	}

	// The timer clears typing while the request is still outstanding
	time.Sleep(100 * time.Millisecond)
	state := session.State()
	if state.Typing {
		t.Error("Typing should clear after the fixed delay even mid-request")
	}
	if state.Phase != models.PhaseRequesting {
		t.Errorf("Request should still be outstanding, got %s", state.Phase)
	}

	release <- struct{}{}
	<-done
}

func TestAskDiscardsStaleResponse(t *testing.T) {
	var mu sync.Mutex
	block := true
	firstArrived := make(chan struct{})
	releaseFirst := make(chan struct{})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var request models.RecommendationRequest
		json.NewDecoder(r.Body).Decode(&request)

		mu.Lock()
		shouldBlock := block
		block = false
		mu.Unlock()

		title := "Fresh"
		if shouldBlock {
			close(firstArrived)
			<-releaseFirst
			title = "Stale"
		}

		json.NewEncoder(w).Encode([]models.Recommendation{{Title: title, Year: "2000", Genre: "Drama"}})
	}))
	defer server.Close()

	session := newTestSession(t, server.URL)
	session.SetFilters(models.QueryFilters{Genre: "Drama"})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		session.Ask(context.Background(), 1) // first ask, held by the server
	}()

	<-firstArrived

	// Second ask completes while the first is still outstanding
	if err := session.Ask(context.Background(), 1); err != nil {
		t.Fatalf("Second ask failed: %v", err)
	}

	// Release the first ask; its response is older and must be discarded
	close(releaseFirst)
	wg.Wait()

	movies := session.Movies()
	if len(movies) != 1 || movies[0].Title != "Fresh" {
		t.Errorf("Stale response should be discarded, got %v", movies)
	}
}
