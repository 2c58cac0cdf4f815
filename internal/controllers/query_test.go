package controllers

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/moodflix/moodflix/internal/models"
)

func intPtr(v int) *int {
	return &v
}

func TestCanAsk(t *testing.T) {
	cases := []struct {
		name    string
		filters models.QueryFilters
		want    bool
	}{
		{"empty", models.QueryFilters{}, false},
		{"whitespace only text", models.QueryFilters{Text: "   "}, false},
		{"free text", models.QueryFilters{Text: "something funny"}, true},
		{"genre only", models.QueryFilters{Genre: "Horror"}, true},
		{"mood only", models.QueryFilters{Mood: "cozy"}, true},
		{"year from only", models.QueryFilters{YearFrom: intPtr(1990)}, true},
		{"year to only", models.QueryFilters{YearTo: intPtr(2020)}, true},
	}

	for _, c := range cases {
		if got := CanAsk(c.filters); got != c.want {
			t.Errorf("%s: CanAsk = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestBuildRequestVerbatimText(t *testing.T) {
	filters := models.QueryFilters{Text: "  a funny heist movie  ", Genre: "Comedy"}
	request := BuildRequest(filters, "user-1", 1)

	if request.Message != "a funny heist movie" {
		t.Errorf("Expected trimmed verbatim text, got %q", request.Message)
	}
	if request.Genre != "Comedy" {
		t.Errorf("Expected genre forwarded, got %q", request.Genre)
	}
	if request.UserExternalID != "user-1" {
		t.Errorf("User id mismatch: %q", request.UserExternalID)
	}
}

func TestBuildRequestSynthesizedMessage(t *testing.T) {
	// Genre only, everything else unset
	filters := models.QueryFilters{Genre: "Horror"}
	request := BuildRequest(filters, "user-1", 1)

	want := "Find movies: genre=Horror mood=any years=any-any"
	if request.Message != want {
		t.Errorf("Message = %q, want %q", request.Message, want)
	}

	data, err := json.Marshal(request)
	if err != nil {
		t.Fatalf("Failed to marshal request: %v", err)
	}
	body := string(data)

	if !strings.Contains(body, `"genre":"Horror"`) {
		t.Errorf("Expected genre in body: %s", body)
	}
	for _, field := range []string{"mood", "yearFrom", "yearTo"} {
		if strings.Contains(body, field) {
			t.Errorf("Expected %s omitted from body: %s", field, body)
		}
	}
}

func TestBuildRequestYearRange(t *testing.T) {
	filters := models.QueryFilters{Genre: "Sci-Fi", Mood: "cozy", YearFrom: intPtr(1990), YearTo: intPtr(2005)}
	request := BuildRequest(filters, "user-1", 3)

	want := "Find movies: genre=Sci-Fi mood=cozy years=1990-2005"
	if request.Message != want {
		t.Errorf("Message = %q, want %q", request.Message, want)
	}
	if request.Page != 3 {
		t.Errorf("Page = %d, want 3", request.Page)
	}
	if request.YearFrom == nil || *request.YearFrom != 1990 {
		t.Errorf("YearFrom not forwarded: %v", request.YearFrom)
	}
	if request.YearTo == nil || *request.YearTo != 2005 {
		t.Errorf("YearTo not forwarded: %v", request.YearTo)
	}
}

func TestBuildRequestExplicitMoodWinsOverHeuristic(t *testing.T) {
	// Explicit mood is never overridden even when the text would infer one.
	// Text is whitespace only, so the message is synthesized.
	filters := models.QueryFilters{Text: "  ", Mood: "scary"}
	request := BuildRequest(filters, "user-1", 1)

	if !strings.Contains(request.Message, "mood=scary") {
		t.Errorf("Expected explicit mood in message, got %q", request.Message)
	}
}
