// Package daybook holds the day-keyed side records that accompany journal
// entries: calendar events, the daily photo, and voice notes. All three join
// against the rest of the data on the YYYY-MM-DD day key.
package daybook

import (
	"strconv"
	"strings"
	"time"
)

// CurrentSchema tags persisted daybook records.
const CurrentSchema = "murmur/v1"

// CalendarEvent is a small dated note on the calendar. A day can hold any
// number of events.
type CalendarEvent struct {
	Schema    string `json:"schema,omitempty"`
	ID        string `json:"id"`
	Date      string `json:"date"`
	Title     string `json:"title"`
	Note      string `json:"note,omitempty"`
	CreatedAt string `json:"createdAt"`
}

// NewEvent creates an event for the given day key.
func NewEvent(date, title, note string, now time.Time) *CalendarEvent {
	return &CalendarEvent{
		Schema:    CurrentSchema,
		ID:        strconv.FormatInt(now.UnixMilli(), 10),
		Date:      date,
		Title:     strings.TrimSpace(title),
		Note:      strings.TrimSpace(note),
		CreatedAt: now.UTC().Format(time.RFC3339),
	}
}

// PhotoEntry is the one photo attached to a day. Saving a photo for a day
// that already has one replaces it.
type PhotoEntry struct {
	Schema  string `json:"schema,omitempty"`
	Date    string `json:"date"`
	URI     string `json:"uri"`
	SavedAt string `json:"savedAt"`
}

// VoiceNote is a recorded note attached to a day. A day can hold any number
// of voice notes.
type VoiceNote struct {
	Schema     string `json:"schema,omitempty"`
	ID         string `json:"id"`
	Date       string `json:"date"`
	URI        string `json:"uri"`
	DurationMs int64  `json:"durationMs"`
	CreatedAt  string `json:"createdAt"`
}

// NewVoiceNote creates a voice note record for the given day key.
func NewVoiceNote(date, uri string, duration time.Duration, now time.Time) *VoiceNote {
	return &VoiceNote{
		Schema:     CurrentSchema,
		ID:         strconv.FormatInt(now.UnixMilli(), 10),
		Date:       date,
		URI:        uri,
		DurationMs: duration.Milliseconds(),
		CreatedAt:  now.UTC().Format(time.RFC3339),
	}
}

// Settings is the daily reminder configuration. Actual OS scheduling is the
// host platform's concern; this is only the persisted preference.
type Settings struct {
	Schema  string `json:"schema,omitempty"`
	Enabled bool   `json:"enabled"`
	Hour    int    `json:"hour"`
	Minute  int    `json:"minute"`
}

// DefaultSettings is the reminder preference before the user changes it:
// disabled, 9 PM.
func DefaultSettings() Settings {
	return Settings{
		Schema: CurrentSchema,
		Hour:   21,
	}
}

// Valid reports whether the reminder time is a real wall-clock time.
func (s Settings) Valid() bool {
	return s.Hour >= 0 && s.Hour < 24 && s.Minute >= 0 && s.Minute < 60
}
