// Package habit defines the habit catalog and the per-day habit log.
package habit

// Habit is one trackable daily habit.
type Habit struct {
	ID    string
	Label string
	Emoji string
}

// Catalog returns the canonical habit list in display order.
func Catalog() []Habit {
	return []Habit{
		{ID: "exercise", Label: "Exercise", Emoji: "🏃"},
		{ID: "reading", Label: "Reading", Emoji: "📖"},
		{ID: "diet", Label: "Diet", Emoji: "🥗"},
		{ID: "sleep", Label: "Slept well", Emoji: "😴"},
	}
}

// CatalogIDs returns the canonical ids in display order.
func CatalogIDs() []string {
	catalog := Catalog()
	ids := make([]string, len(catalog))
	for i, h := range catalog {
		ids[i] = h.ID
	}
	return ids
}

// ByID looks a habit up in the catalog.
func ByID(id string) (Habit, bool) {
	for _, h := range Catalog() {
		if h.ID == id {
			return h, true
		}
	}
	return Habit{}, false
}

// Entry is the confirmed habit snapshot for one day. At most one entry
// exists per day key; saving again replaces the whole snapshot.
type Entry struct {
	Schema  string   `json:"schema,omitempty"`
	Date    string   `json:"date"`
	Habits  []string `json:"habits"`
	SavedAt string   `json:"savedAt"`
}
