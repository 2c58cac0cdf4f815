package controllers

import (
	"fmt"
	"strconv"

	"github.com/moodflix/moodflix/internal/models"
	"github.com/moodflix/moodflix/internal/utils"
)

// CanAsk reports whether the filters carry enough signal to permit a
// recommendation request: non-empty free text, a genre, a mood, or either
// year bound. Callers must check this before composing a request.
func CanAsk(f models.QueryFilters) bool {
	return f.TrimmedText() != "" || f.Genre != "" || f.Mood != "" || f.YearFrom != nil || f.YearTo != nil
}

// BuildRequest composes the wire request from the current filters. The
// message is the trimmed free text verbatim when present; otherwise it is
// synthesized from the remaining filters, with the mood heuristic as a
// fallback for an unset mood. Unset filters are omitted from the request.
func BuildRequest(f models.QueryFilters, userID string, page int) models.RecommendationRequest {
	message := f.TrimmedText()
	if message == "" {
		message = synthesizeMessage(f)
	}

	return models.RecommendationRequest{
		UserExternalID: userID,
		Message:        message,
		Genre:          f.Genre,
		Mood:           f.Mood,
		YearFrom:       f.YearFrom,
		YearTo:         f.YearTo,
		Page:           page,
	}
}

// synthesizeMessage builds the fixed-template description used when the user
// supplied no free text
func synthesizeMessage(f models.QueryFilters) string {
	mood := f.Mood
	if mood == "" {
		mood = utils.DetectMood(f.Text)
	}

	return fmt.Sprintf("Find movies: genre=%s mood=%s years=%s-%s",
		orAny(f.Genre), orAny(mood), yearOrAny(f.YearFrom), yearOrAny(f.YearTo))
}

func orAny(value string) string {
	if value == "" {
		return "any"
	}
	return value
}

func yearOrAny(year *int) string {
	if year == nil {
		return "any"
	}
	return strconv.Itoa(*year)
}
