// Package theme defines the named color palettes. The active theme's accent
// is the value the renderer's {c:accent} token resolves against at display
// time — stored bodies never bake the accent in.
package theme

import (
	"fmt"
	"sort"
	"strings"
)

// Palette is the set of colors a theme supplies to display surfaces.
type Palette struct {
	Background string
	Surface    string
	Muted      string
	Text       string
	Accent     string
}

// Theme is a named palette.
type Theme struct {
	Key     string
	Label   string
	Palette Palette
}

// DefaultKey is the theme used before the user picks one.
const DefaultKey = "linen"

var themes = map[string]Theme{
	"linen": {
		Key:   "linen",
		Label: "Linen",
		Palette: Palette{
			Background: "#F2EFE9",
			Surface:    "#EAE6DE",
			Muted:      "#948E84",
			Text:       "#2C2820",
			Accent:     "#5E7A8A",
		},
	},
	"dusk": {
		Key:   "dusk",
		Label: "Dusk",
		Palette: Palette{
			Background: "#23212B",
			Surface:    "#2C2A36",
			Muted:      "#76727F",
			Text:       "#E8E5EF",
			Accent:     "#C4874A",
		},
	},
	"moss": {
		Key:   "moss",
		Label: "Moss",
		Palette: Palette{
			Background: "#EFF2EA",
			Surface:    "#E3E8DB",
			Muted:      "#8C9483",
			Text:       "#262C20",
			Accent:     "#68A86A",
		},
	},
}

// Default returns the built-in fallback theme.
func Default() Theme {
	return themes[DefaultKey]
}

// Lookup returns the theme for key, falling back to the default for unknown
// or empty keys. Unknown keys are not an error: a stale persisted key after
// a palette rename should degrade, not crash.
func Lookup(key string) Theme {
	if t, ok := themes[strings.ToLower(strings.TrimSpace(key))]; ok {
		return t
	}
	return Default()
}

// Parse validates a user-supplied theme key.
func Parse(raw string) (Theme, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	if t, ok := themes[key]; ok {
		return t, nil
	}
	return Theme{}, fmt.Errorf("theme: unknown theme %q (known: %s)", raw, strings.Join(Keys(), ", "))
}

// Keys returns the known theme keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(themes))
	for key := range themes {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
