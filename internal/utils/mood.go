package utils

import (
	"regexp"
	"strings"

	"github.com/moodflix/moodflix/internal/models"
)

// moodPattern pairs a mood label with the keyword group that triggers it
type moodPattern struct {
	mood    models.Mood
	pattern *regexp.Regexp
}

// Patterns are checked in order, first match wins. The groups are keyword
// stems, so "exciting" matches but "depressed" does not ("depress" requires a
// word boundary right after).
var moodPatterns = []moodPattern{
	{models.MoodUplifting, regexp.MustCompile(`\b(happy|joy|fun|excited|exciting|uplift|celebrate)\b`)},
	{models.MoodSad, regexp.MustCompile(`\b(sad|melancholy|cry|depress|tear)\b`)},
	{models.MoodCozy, regexp.MustCompile(`\b(cozy|relax|calm|chill|comfortable)\b`)},
	{models.MoodScary, regexp.MustCompile(`\b(scary|horror|terror|creepy)\b`)},
	{models.MoodRomantic, regexp.MustCompile(`\b(romance|date|love|lovely)\b`)},
}

// DetectMood infers a coarse mood label from free text using keyword
// matching. It returns "" when the text is empty or matches no group. This is
// a fallback heuristic only and never overrides an explicit mood selection.
func DetectMood(text string) string {
	t := strings.ToLower(text)
	if t == "" {
		return ""
	}

	for _, mp := range moodPatterns {
		if mp.pattern.MatchString(t) {
			return string(mp.mood)
		}
	}

	return ""
}
