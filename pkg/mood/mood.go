// Package mood defines the emotion catalog and the per-day emotion log.
package mood

// Emotion is one selectable feeling. The order of Catalog is the canonical
// display order and the tie-break order for frequency views.
type Emotion struct {
	ID    string
	Label string
	Emoji string
}

// Catalog returns the canonical emotion list.
func Catalog() []Emotion {
	return []Emotion{
		{ID: "calm", Label: "Calm", Emoji: "🌿"},
		{ID: "grateful", Label: "Grateful", Emoji: "✨"},
		{ID: "anxious", Label: "Anxious", Emoji: "🌊"},
		{ID: "hopeful", Label: "Hopeful", Emoji: "🌤"},
		{ID: "tired", Label: "Tired", Emoji: "🌙"},
		{ID: "content", Label: "Content", Emoji: "☁️"},
		{ID: "frustrated", Label: "Frustrated", Emoji: "🔥"},
		{ID: "sad", Label: "Sad", Emoji: "🌧"},
		{ID: "energised", Label: "Energised", Emoji: "⚡️"},
		{ID: "unsettled", Label: "Unsettled", Emoji: "🍂"},
	}
}

// CatalogIDs returns the canonical ids in display order.
func CatalogIDs() []string {
	catalog := Catalog()
	ids := make([]string, len(catalog))
	for i, e := range catalog {
		ids[i] = e.ID
	}
	return ids
}

// ByID looks an emotion up in the catalog.
func ByID(id string) (Emotion, bool) {
	for _, e := range Catalog() {
		if e.ID == id {
			return e, true
		}
	}
	return Emotion{}, false
}

// Entry is the confirmed emotion snapshot for one day. At most one entry
// exists per day key; saving again replaces the whole snapshot.
type Entry struct {
	Schema   string   `json:"schema,omitempty"`
	Date     string   `json:"date"`
	Emotions []string `json:"emotions"`
	SavedAt  string   `json:"savedAt"`
}
