package models

// Mood is a coarse categorical label used to bias recommendation requests
type Mood string

const (
	MoodUplifting Mood = "uplifting"
	MoodSad       Mood = "sad"
	MoodCozy      Mood = "cozy"
	MoodScary     Mood = "scary"
	MoodRomantic  Mood = "romantic"
)

// Theme represents the UI color scheme
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Phase represents the lifecycle state of the recommendation session
type Phase string

const (
	PhaseIdle         Phase = "idle"
	PhaseRequesting   Phase = "requesting"
	PhaseSettledOK    Phase = "settled_ok"
	PhaseSettledError Phase = "settled_error"
)
