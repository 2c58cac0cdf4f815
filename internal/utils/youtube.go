package utils

import (
	"net/url"
	"regexp"
	"strings"
)

// videoIDRegex is the lenient fallback for preview URLs that fail structured
// parsing: an 11-character video id token following "v=" or a path separator
var videoIDRegex = regexp.MustCompile(`(?:v=|/)([0-9A-Za-z_-]{11})(?:\b|&|$)`)

// ExtractVideoID extracts a YouTube video id from a preview URL. It returns
// "" when no id can be found and never fails: structured URL parsing is tried
// first, then a regex scan over the raw string for malformed inputs.
func ExtractVideoID(raw string) string {
	if raw == "" {
		return ""
	}

	u, err := url.Parse(raw)
	if err == nil && u.Host != "" {
		if strings.Contains(u.Host, "youtu.be") {
			return firstPathSegment(u.Path)
		}

		if strings.Contains(u.Host, "youtube") {
			if v := u.Query().Get("v"); v != "" {
				return v
			}
			// Shortened and embed-style paths keep the id as the last segment
			return lastPathSegment(u.Path)
		}

		// Some other host entirely, not a video link
		return ""
	}

	matches := videoIDRegex.FindStringSubmatch(raw)
	if matches != nil {
		return matches[1]
	}

	return ""
}

func firstPathSegment(path string) string {
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			return part
		}
	}
	return ""
}

func lastPathSegment(path string) string {
	parts := strings.Split(path, "/")
	for i := len(parts) - 1; i >= 0; i-- {
		if parts[i] != "" {
			return parts[i]
		}
	}
	return ""
}
