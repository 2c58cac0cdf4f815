package models

import "strings"

// Recommendation is a single movie suggestion produced by the recommendation
// service. The client treats it as immutable; identity for favoriting and
// dedup is the (Title, Year) pair since ID may be absent.
type Recommendation struct {
	ID         *int64   `json:"id,omitempty"`
	Title      string   `json:"title"`
	Year       string   `json:"year"`
	Genre      string   `json:"genre"`
	MoodTag    string   `json:"moodTag,omitempty"`
	PosterURL  string   `json:"posterUrl,omitempty"`
	PreviewURL string   `json:"previewUrl,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
}

// SameMovie reports whether two recommendations refer to the same movie
func (r Recommendation) SameMovie(other Recommendation) bool {
	return r.Title == other.Title && r.Year == other.Year
}

// QueryFilters is the transient filter state driving recommendation requests.
// Mutated only by direct user input, reset to the zero value on Reset.
type QueryFilters struct {
	Text     string `json:"text"`
	Genre    string `json:"genre"`
	Mood     string `json:"mood"`
	YearFrom *int   `json:"yearFrom,omitempty"`
	YearTo   *int   `json:"yearTo,omitempty"`
}

// TrimmedText returns the free-text input with surrounding whitespace removed
func (f QueryFilters) TrimmedText() string {
	return strings.TrimSpace(f.Text)
}

// RecommendationRequest is the wire shape sent to the recommendation service.
// Unset optional fields are omitted from the JSON body entirely.
type RecommendationRequest struct {
	UserExternalID string `json:"userExternalId"`
	Message        string `json:"message"`
	Genre          string `json:"genre,omitempty"`
	Mood           string `json:"mood,omitempty"`
	YearFrom       *int   `json:"yearFrom,omitempty"`
	YearTo         *int   `json:"yearTo,omitempty"`
	Page           int    `json:"page,omitempty"`
}

// HistoryPage is one page of previously served recommendations
type HistoryPage struct {
	Content    []Recommendation `json:"content"`
	TotalPages int              `json:"totalPages"`
}

// UserProfile holds the display name stored by the recommendation service
type UserProfile struct {
	ExternalID  string `json:"externalId"`
	DisplayName string `json:"displayName"`
}

// TrailerState is the trailer modal state for the currently inspected
// recommendation. The zero value is the closed state.
type TrailerState struct {
	Open    bool   `json:"open"`
	VideoID string `json:"videoId,omitempty"`
	Title   string `json:"title,omitempty"`
}
